package types

// Telemetry metric names for CloudWatch.
const (
	MetricCaseEventProcessed = "CaseEventProcessed"
	MetricOutboundCallPlaced = "OutboundCallPlaced"
	MetricOutboundCallFailed = "OutboundCallFailed"

	DimSeverity = "Severity"

	// Default namespace when METRIC_NAMESPACE is not set.
	MetricNamespace = "SupportCaseNotifier"
)
