package external

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"supportcall/internal/types"
)

// StubVoiceDispatcher implements VoiceDispatcher by logging the call it would
// have placed. Used when CONNECT_DRY_RUN is set, so local runs against real
// Support data never dial anyone.
type StubVoiceDispatcher struct {
	logger *slog.Logger
}

// NewStubVoiceDispatcher creates a new StubVoiceDispatcher.
func NewStubVoiceDispatcher(logger *slog.Logger) *StubVoiceDispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &StubVoiceDispatcher{logger: logger}
}

func (s *StubVoiceDispatcher) StartOutboundVoiceContact(ctx context.Context, contact types.VoiceContact) (string, error) {
	contactID := "stub-" + uuid.NewString()
	s.logger.InfoContext(ctx, "stub: StartOutboundVoiceContact called",
		"destination_phone", contact.DestinationPhone,
		"contact_flow_id", contact.ContactFlowID,
		"instance_id", contact.InstanceID,
		"attributes", contact.Attributes,
		"contact_id", contactID,
	)
	return contactID, nil
}

var _ types.VoiceDispatcher = (*StubVoiceDispatcher)(nil)
