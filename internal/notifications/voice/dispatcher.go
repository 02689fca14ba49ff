// Package voice turns AWS Support case-change events into Amazon Connect
// outbound voice calls.
//
// Each SNS record carries one EventBridge "Support Case Update" event. For
// every record the dispatcher looks the case up, and when its severity is
// urgent or critical places a call whose SUPPORT_INCIDENT_DETAILS attribute
// is the case subject. Records are handled strictly in order; the first
// failure aborts the batch and fails the Lambda invocation.
package voice

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-lambda-go/events"

	"supportcall/internal/types"
)

// Outcome is the terminal state of one processed record.
type Outcome string

const (
	OutcomeCallPlaced Outcome = "call_placed"
	OutcomeSkipped    Outcome = "skipped"
)

// DispatcherConfig holds the collaborators of a Dispatcher.
type DispatcherConfig struct {
	Cases   types.CaseLookup
	Voice   types.VoiceDispatcher
	Target  types.NotificationTarget
	Metrics Metrics // optional; defaults to NoopMetrics
	Logger  types.Logger
}

// Dispatcher is stateless apart from its injected, immutable collaborators
// and may be reused across invocations.
type Dispatcher struct {
	cases   types.CaseLookup
	voice   types.VoiceDispatcher
	target  types.NotificationTarget
	metrics Metrics
	logger  types.Logger
}

// NewDispatcher validates cfg and builds a Dispatcher.
func NewDispatcher(cfg DispatcherConfig) (*Dispatcher, error) {
	switch {
	case cfg.Cases == nil:
		return nil, errors.New("voice: case lookup is required")
	case cfg.Voice == nil:
		return nil, errors.New("voice: voice dispatcher is required")
	case cfg.Logger == nil:
		return nil, errors.New("voice: logger is required")
	case cfg.Target.DestinationPhone == "", cfg.Target.SourcePhone == "",
		cfg.Target.ContactFlowID == "", cfg.Target.InstanceID == "":
		return nil, errors.New("voice: notification target is incomplete")
	}

	metrics := cfg.Metrics
	if metrics == nil {
		metrics = NoopMetrics{}
	}

	return &Dispatcher{
		cases:   cfg.Cases,
		voice:   cfg.Voice,
		target:  cfg.Target,
		metrics: metrics,
		logger:  cfg.Logger,
	}, nil
}

// Handle processes an SNS batch record by record. An empty batch is a no-op.
// There is no per-record isolation: the first error stops the loop and is
// returned so Lambda reports the invocation as failed.
func (d *Dispatcher) Handle(ctx context.Context, event events.SNSEvent) error {
	logger := d.logger
	if reqID := types.GetRequestID(ctx); reqID != "" {
		logger = logger.With("request_id", reqID)
	}

	if len(event.Records) == 0 {
		logger.Info("no records in event")
		return nil
	}

	for i, record := range event.Records {
		recLogger := logger.With("record_index", i, "sns_message_id", record.SNS.MessageID)
		if _, err := d.process(types.WithLogger(ctx, recLogger), record, recLogger); err != nil {
			recLogger.Error("record processing failed", "error", err.Error())
			return fmt.Errorf("record %d (sns message %s): %w", i, record.SNS.MessageID, err)
		}
	}

	logger.Info("event processed", "records", len(event.Records))
	return nil
}

// Process handles one SNS record and reports whether a call was placed.
func (d *Dispatcher) Process(ctx context.Context, record events.SNSEventRecord) (Outcome, error) {
	logger := types.LoggerFromContext(ctx)
	if logger == nil {
		logger = d.logger
	}
	return d.process(ctx, record, logger)
}

func (d *Dispatcher) process(ctx context.Context, record events.SNSEventRecord, logger types.Logger) (Outcome, error) {
	logger.Debug("sns message received", "message", record.SNS.Message)

	// Step 1: Unwrap SNS -> EventBridge -> case detail.
	ev, err := ParseCaseEvent(record)
	if err != nil {
		return "", err
	}

	ref := ev.Reference()
	logger = logger.With("case_display_id", ref.DisplayID)
	logger.Info("case event received",
		"event_name", ev.Detail.EventName,
		"event_id", ev.ID,
		"detail_type", ev.DetailType,
	)

	// Step 2: Fresh severity lookup.
	supportCase, err := d.cases.DescribeCase(ctx, ref.CaseID)
	if err != nil {
		return "", fmt.Errorf("describe case %s: %w", ref.DisplayID, err)
	}

	logger.Info("case severity", "severity", string(supportCase.SeverityCode))
	d.metrics.RecordCaseEvent(ctx, supportCase.SeverityCode)

	// Step 3: Decide.
	if !ShouldNotify(supportCase.SeverityCode) {
		return OutcomeSkipped, nil
	}

	// Step 4: Place the call with the case subject as context.
	contactID, err := d.voice.StartOutboundVoiceContact(ctx, d.contactFor(supportCase))
	if err != nil {
		d.metrics.RecordCall(ctx, false)
		return "", fmt.Errorf("start outbound call for case %s: %w", ref.DisplayID, err)
	}
	d.metrics.RecordCall(ctx, true)

	logger.Info("outbound call initiated",
		"destination_phone", d.target.DestinationPhone,
		"contact_id", contactID,
	)
	return OutcomeCallPlaced, nil
}

func (d *Dispatcher) contactFor(c *types.SupportCase) types.VoiceContact {
	return types.VoiceContact{
		DestinationPhone: d.target.DestinationPhone,
		SourcePhone:      d.target.SourcePhone,
		ContactFlowID:    d.target.ContactFlowID,
		InstanceID:       d.target.InstanceID,
		Attributes: map[string]string{
			types.AttrIncidentDetails: c.Subject,
		},
	}
}
