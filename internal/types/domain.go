package types

// Severity is the support case severity code as reported by the Support API.
// Known values: low, normal, high, urgent, critical.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityNormal   Severity = "normal"
	SeverityHigh     Severity = "high"
	SeverityUrgent   Severity = "urgent"
	SeverityCritical Severity = "critical"
)

// CaseReference identifies a case as carried by a case-change event.
type CaseReference struct {
	CaseID    string
	DisplayID string
}

// SupportCase is the subset of a support case the notifier reads.
type SupportCase struct {
	CaseID       string
	DisplayID    string
	Subject      string
	SeverityCode Severity
	Status       string
	ServiceCode  string
}

// AttrIncidentDetails is the contact attribute the call flow reads the case
// subject from.
const AttrIncidentDetails = "SUPPORT_INCIDENT_DETAILS"

// NotificationTarget is the fixed destination of outbound calls, sourced from
// configuration once per process.
type NotificationTarget struct {
	DestinationPhone string
	SourcePhone      string
	ContactFlowID    string
	InstanceID       string
}

// VoiceContact is one outbound voice call request.
type VoiceContact struct {
	DestinationPhone string
	SourcePhone      string
	ContactFlowID    string
	InstanceID       string
	Attributes       map[string]string
}
