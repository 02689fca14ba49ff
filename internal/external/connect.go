package external

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/connect"
	"github.com/sony/gobreaker/v2"

	"supportcall/internal/types"
)

// ConnectAPI defines the subset of the Amazon Connect client used by ConnectClient.
type ConnectAPI interface {
	StartOutboundVoiceContact(ctx context.Context, params *connect.StartOutboundVoiceContactInput, optFns ...func(*connect.Options)) (*connect.StartOutboundVoiceContactOutput, error)
}

// ConnectClient implements types.VoiceDispatcher on Amazon Connect.
//
// Calls go through a circuit breaker that lives as long as the Lambda
// container: after repeated upstream outages further calls fail immediately
// with ErrCodeUpstreamUnavailable instead of waiting on the SDK retryer. A
// rejected request (bad phone number, flow not permitted) does not count as a
// breaker failure. The breaker never retries.
type ConnectClient struct {
	api     ConnectAPI
	breaker *gobreaker.CircuitBreaker[string]
	logger  *slog.Logger
}

// NewConnectClient creates a ConnectClient bound to the Connect instance's region.
func NewConnectClient(awsCfg aws.Config, region string, logger *slog.Logger) *ConnectClient {
	api := connect.NewFromConfig(awsCfg, func(o *connect.Options) {
		if region != "" {
			o.Region = region
		}
	})
	return NewConnectClientWithAPI(api, logger)
}

// NewConnectClientWithAPI creates a ConnectClient over a pre-configured API.
func NewConnectClientWithAPI(api ConnectAPI, logger *slog.Logger) *ConnectClient {
	if logger == nil {
		logger = slog.Default()
	}

	cb := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        "connect-outbound",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			return types.CodeOf(err) != types.ErrCodeUpstreamUnavailable
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				"breaker", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	})

	return &ConnectClient{api: api, breaker: cb, logger: logger}
}

// StartOutboundVoiceContact places the call and returns the Connect contact ID.
func (c *ConnectClient) StartOutboundVoiceContact(ctx context.Context, contact types.VoiceContact) (string, error) {
	contactID, err := c.breaker.Execute(func() (string, error) {
		out, err := c.api.StartOutboundVoiceContact(ctx, &connect.StartOutboundVoiceContactInput{
			DestinationPhoneNumber: aws.String(contact.DestinationPhone),
			ContactFlowId:          aws.String(contact.ContactFlowID),
			InstanceId:             aws.String(contact.InstanceID),
			SourcePhoneNumber:      aws.String(contact.SourcePhone),
			Attributes:             contact.Attributes,
		})
		if err != nil {
			return "", mapAWSError("connect:StartOutboundVoiceContact", err)
		}
		return aws.ToString(out.ContactId), nil
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "", types.NewAppError(
			types.ErrCodeUpstreamUnavailable,
			"circuit breaker is open; Amazon Connect unavailable",
			err,
		)
	}

	return contactID, err
}

// Compile-time assertion that ConnectClient satisfies VoiceDispatcher.
var _ types.VoiceDispatcher = (*ConnectClient)(nil)
