package voice

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/go-playground/validator/v10"

	"supportcall/internal/types"
)

// validate is shared; validator caches struct metadata and is safe for
// concurrent use.
var validate = validator.New()

// CaseEventDetail is the "detail" object of an AWS Support "Support Case
// Update" EventBridge event.
type CaseEventDetail struct {
	CaseID          string `json:"case-id" validate:"required"`
	DisplayID       string `json:"display-id" validate:"required"`
	EventName       string `json:"event-name"` // CreateCase, AddCommunicationToCase, ResolveCase, ReopenCase
	CommunicationID string `json:"communication-id"`
	Origin          string `json:"origin"`
}

// caseEnvelope is the part of the EventBridge event the notifier reads.
// Other envelope fields (time, resources, account) are ignored so their
// format never rejects a record.
type caseEnvelope struct {
	ID         string          `json:"id"`
	DetailType string          `json:"detail-type"`
	Detail     json.RawMessage `json:"detail"`
}

// CaseEvent is a case-change event after both envelopes are removed.
type CaseEvent struct {
	ID         string
	DetailType string
	Detail     CaseEventDetail
}

// Reference returns the case identifiers carried by the event.
func (e *CaseEvent) Reference() types.CaseReference {
	return types.CaseReference{
		CaseID:    e.Detail.CaseID,
		DisplayID: e.Detail.DisplayID,
	}
}

// ParseCaseEvent unwraps an SNS record whose message is a JSON-encoded
// EventBridge event and validates the case detail. Every shape problem is
// reported as a types.ErrMalformedEvent-kind error.
func ParseCaseEvent(record events.SNSEventRecord) (*CaseEvent, error) {
	if record.SNS.Message == "" {
		return nil, malformed("SNS record has no message", nil)
	}

	// 1. Parse the EventBridge event from the SNS message string.
	var ev caseEnvelope
	if err := json.Unmarshal([]byte(record.SNS.Message), &ev); err != nil {
		return nil, malformed("SNS message is not a valid event", err)
	}

	raw := bytes.TrimSpace(ev.Detail)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, malformed("event has no detail", nil)
	}

	// 2. Decode and validate the case detail.
	var detail CaseEventDetail
	if err := json.Unmarshal(raw, &detail); err != nil {
		return nil, malformed("event detail is not a case object", err)
	}
	if err := validate.Struct(detail); err != nil {
		return nil, malformed(fmt.Sprintf("event detail is missing case identifiers: %v", err), err)
	}

	return &CaseEvent{
		ID:         ev.ID,
		DetailType: ev.DetailType,
		Detail:     detail,
	}, nil
}

func malformed(message string, err error) *types.AppError {
	return types.NewAppError(types.ErrCodeMalformedEvent, message, err)
}
