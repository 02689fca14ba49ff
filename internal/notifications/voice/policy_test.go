package voice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"supportcall/internal/types"
)

func TestShouldNotify(t *testing.T) {
	tests := []struct {
		severity types.Severity
		want     bool
	}{
		{types.SeverityCritical, true},
		{types.SeverityUrgent, true},
		{types.SeverityHigh, false},
		{types.SeverityNormal, false},
		{types.SeverityLow, false},
		{"Urgent", false},
		{"CRITICAL", false},
		{" critical", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldNotify(tt.severity))
		})
	}
}
