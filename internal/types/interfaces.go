package types

import "context"

// Logger is the structured logging contract used across the notifier.
// *slog.Logger satisfies everything except With, so entrypoints wrap it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Warn(msg string, args ...any)
	With(args ...any) Logger
}

// CaseLookup reads a single support case by its case ID.
type CaseLookup interface {
	DescribeCase(ctx context.Context, caseID string) (*SupportCase, error)
}

// VoiceDispatcher places an automated outbound voice call.
// It returns the provider's contact reference.
type VoiceDispatcher interface {
	StartOutboundVoiceContact(ctx context.Context, contact VoiceContact) (string, error)
}
