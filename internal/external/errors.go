// Package external is the anti-corruption layer between the notifier and the
// AWS APIs it consumes. SDK clients sit behind narrow API interfaces and
// every SDK failure is translated into a types.AppError.
package external

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"

	"supportcall/internal/types"
)

// awsErrorCodes maps AWS API error codes to domain error codes. Codes not
// listed fall back to ErrCodeUpstreamUnavailable.
var awsErrorCodes = map[string]types.ErrorCode{
	"Throttling":               types.ErrCodeUpstreamRateLimited,
	"ThrottlingException":      types.ErrCodeUpstreamRateLimited,
	"TooManyRequestsException": types.ErrCodeUpstreamRateLimited,
	"LimitExceededException":   types.ErrCodeUpstreamRateLimited,

	"CaseIdNotFound":            types.ErrCodeNotFoundCase,
	"ResourceNotFoundException": types.ErrCodeUpstreamRejected,

	"AccessDeniedException":         types.ErrCodeUpstreamAccess,
	"SubscriptionRequiredException": types.ErrCodeUpstreamAccess,
	"UnrecognizedClientException":   types.ErrCodeUpstreamAccess,

	"InvalidParameterException":            types.ErrCodeUpstreamRejected,
	"InvalidRequestException":              types.ErrCodeUpstreamRejected,
	"ValidationException":                  types.ErrCodeUpstreamRejected,
	"DestinationNotAllowedException":       types.ErrCodeUpstreamRejected,
	"OutboundContactNotPermittedException": types.ErrCodeUpstreamRejected,
}

// mapAWSError translates an SDK error from the named operation into an
// AppError. The SDK error stays in the chain for errors.As.
func mapAWSError(operation string, err error) error {
	if err == nil {
		return nil
	}

	code := types.ErrCodeUpstreamUnavailable
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		if mapped, ok := awsErrorCodes[apiErr.ErrorCode()]; ok {
			code = mapped
		}
	}

	return types.NewAppError(code, fmt.Sprintf("%s failed", operation), err)
}
