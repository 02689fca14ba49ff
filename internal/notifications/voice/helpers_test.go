package voice

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/aws/aws-lambda-go/events"

	"supportcall/internal/types"
)

// testLogger records log messages.
type testLogger struct {
	mu       *sync.Mutex
	messages *[]string
}

func newTestLogger() *testLogger {
	return &testLogger{mu: &sync.Mutex{}, messages: &[]string{}}
}

func (l *testLogger) record(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.messages = append(*l.messages, level+":"+msg)
}

func (l *testLogger) Debug(msg string, _ ...any) { l.record("debug", msg) }
func (l *testLogger) Info(msg string, _ ...any)  { l.record("info", msg) }
func (l *testLogger) Error(msg string, _ ...any) { l.record("error", msg) }
func (l *testLogger) Warn(msg string, _ ...any)  { l.record("warn", msg) }
func (l *testLogger) With(_ ...any) types.Logger { return l }

func (l *testLogger) Messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), *l.messages...)
}

// fakeCaseLookup serves cases from a map keyed by case ID.
type fakeCaseLookup struct {
	cases map[string]*types.SupportCase
	err   error
	calls []string
}

func (f *fakeCaseLookup) DescribeCase(_ context.Context, caseID string) (*types.SupportCase, error) {
	f.calls = append(f.calls, caseID)
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.cases[caseID]
	if !ok {
		return nil, types.NewAppError(types.ErrCodeNotFoundCase, "no case "+caseID, nil)
	}
	return c, nil
}

// fakeVoice records every contact it is asked to place.
type fakeVoice struct {
	contacts []types.VoiceContact
	err      error
}

func (f *fakeVoice) StartOutboundVoiceContact(_ context.Context, contact types.VoiceContact) (string, error) {
	f.contacts = append(f.contacts, contact)
	if f.err != nil {
		return "", f.err
	}
	return fmt.Sprintf("contact-%d", len(f.contacts)), nil
}

// fakeMetrics counts metric calls.
type fakeMetrics struct {
	severities []types.Severity
	placed     int
	failed     int
}

func (m *fakeMetrics) RecordCaseEvent(_ context.Context, severity types.Severity) {
	m.severities = append(m.severities, severity)
}

func (m *fakeMetrics) RecordCall(_ context.Context, placed bool) {
	if placed {
		m.placed++
	} else {
		m.failed++
	}
}

var testTarget = types.NotificationTarget{
	DestinationPhone: "+15555550100",
	SourcePhone:      "+15555550199",
	ContactFlowID:    "flow-1",
	InstanceID:       "instance-1",
}

// caseMessage builds the EventBridge event JSON that SNS carries.
func caseMessage(caseID, displayID string) string {
	ev := map[string]any{
		"version":     "0",
		"id":          "evt-" + displayID,
		"detail-type": "Support Case Update",
		"source":      "aws.support",
		"account":     "123456789012",
		"time":        "2024-05-01T12:00:00Z",
		"region":      "us-east-1",
		"resources":   []string{},
		"detail": map[string]string{
			"case-id":          caseID,
			"display-id":       displayID,
			"communication-id": "",
			"event-name":       "CreateCase",
			"origin":           "",
		},
	}
	b, err := json.Marshal(ev)
	if err != nil {
		panic(err)
	}
	return string(b)
}

func snsRecord(messageID, message string) events.SNSEventRecord {
	return events.SNSEventRecord{
		EventSource: "aws:sns",
		SNS: events.SNSEntity{
			MessageID: messageID,
			Message:   message,
		},
	}
}

func caseRecord(caseID, displayID string) events.SNSEventRecord {
	return snsRecord("msg-"+displayID, caseMessage(caseID, displayID))
}
