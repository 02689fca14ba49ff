package voice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supportcall/internal/types"
)

func TestParseCaseEvent_Valid(t *testing.T) {
	ev, err := ParseCaseEvent(caseRecord("case-123", "9876543210"))
	require.NoError(t, err)

	assert.Equal(t, "case-123", ev.Detail.CaseID)
	assert.Equal(t, "9876543210", ev.Detail.DisplayID)
	assert.Equal(t, "CreateCase", ev.Detail.EventName)
	assert.Equal(t, "evt-9876543210", ev.ID)
	assert.Equal(t, "Support Case Update", ev.DetailType)
	assert.Equal(t, types.CaseReference{CaseID: "case-123", DisplayID: "9876543210"}, ev.Reference())
}

func TestParseCaseEvent_MinimalDetail(t *testing.T) {
	msg := `{"detail":{"case-id":"case-1","display-id":"111"}}`

	ev, err := ParseCaseEvent(snsRecord("m1", msg))
	require.NoError(t, err)
	assert.Equal(t, "case-1", ev.Detail.CaseID)
	assert.Equal(t, "111", ev.Detail.DisplayID)
}

func TestParseCaseEvent_IgnoresUnusedEnvelopeFields(t *testing.T) {
	tests := []struct {
		name    string
		message string
	}{
		{"non-RFC3339 time", `{"time":"yesterday","detail":{"case-id":"case-1","display-id":"111"}}`},
		{"string resources", `{"resources":"arn:aws:support::123456789012:case/1","detail":{"case-id":"case-1","display-id":"111"}}`},
		{"numeric account", `{"account":123456789012,"detail":{"case-id":"case-1","display-id":"111"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := ParseCaseEvent(snsRecord("m1", tt.message))
			require.NoError(t, err)
			assert.Equal(t, "case-1", ev.Detail.CaseID)
			assert.Equal(t, "111", ev.Detail.DisplayID)
		})
	}
}

func TestParseCaseEvent_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		message string
	}{
		{"empty message", ""},
		{"invalid JSON", `{"detail": {`},
		{"JSON string instead of object", `"hello"`},
		{"no detail", `{"source":"aws.support"}`},
		{"null detail", `{"detail":null}`},
		{"detail not an object", `{"detail":"case-1"}`},
		{"missing case-id", `{"detail":{"display-id":"111"}}`},
		{"missing display-id", `{"detail":{"case-id":"case-1"}}`},
		{"empty identifiers", `{"detail":{"case-id":"","display-id":""}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCaseEvent(snsRecord("m1", tt.message))
			require.Error(t, err)
			assert.ErrorIs(t, err, types.ErrMalformedEvent)
			assert.Equal(t, types.ErrCodeMalformedEvent, types.CodeOf(err))
		})
	}
}
