package types

import (
	"errors"
	"fmt"
)

// ErrorCode is a typed string for categorizing application errors.
type ErrorCode string

// Error code constants. Callers MUST use these instead of hardcoded strings.
const (
	// Inbound event shape
	ErrCodeMalformedEvent ErrorCode = "malformed_event"

	// Case lookup
	ErrCodeNotFoundCase ErrorCode = "not_found_case"

	// Upstream (Support, Connect)
	ErrCodeUpstreamUnavailable ErrorCode = "upstream_unavailable"
	ErrCodeUpstreamRateLimited ErrorCode = "upstream_rate_limited"
	ErrCodeUpstreamRejected    ErrorCode = "upstream_rejected"
	ErrCodeUpstreamAccess      ErrorCode = "upstream_access_denied"
)

// AppError is the standard application error type. Every fault raised by the
// notifier is expressed as an AppError so the Lambda failure record carries a
// stable code alongside the message.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/errors.As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an AppError with the same code. This lets
// sentinel values such as ErrMalformedEvent match any error of that kind.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// NewAppError creates a new AppError with the given code, message, and optional
// underlying error.
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ErrMalformedEvent is the sentinel for inbound records whose envelope or
// payload does not have the expected shape. Use errors.Is to test for it.
var ErrMalformedEvent = &AppError{Code: ErrCodeMalformedEvent, Message: "malformed case event"}

// ErrCaseNotFound is the sentinel for case lookups that returned no case.
var ErrCaseNotFound = &AppError{Code: ErrCodeNotFoundCase, Message: "support case not found"}

// CodeOf extracts the ErrorCode from err, or "" when err carries no AppError.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
