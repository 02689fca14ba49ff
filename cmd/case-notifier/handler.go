package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"

	"supportcall/internal/types"
)

// batchHandler is the part of voice.Dispatcher the Lambda handler drives.
type batchHandler interface {
	Handle(ctx context.Context, event events.SNSEvent) error
}

// handler adapts the dispatcher to the Lambda runtime: it tags the context
// with the invocation's request ID before dispatching.
type handler struct {
	dispatcher batchHandler
	logger     types.Logger
}

// Handle is registered with lambda.Start. A non-nil error marks the
// invocation failed so SNS/Lambda retry and DLQ policy apply.
func (h *handler) Handle(ctx context.Context, event events.SNSEvent) error {
	ctx = types.WithRequestID(ctx, requestID(ctx))
	h.logger.Info("invocation received",
		"request_id", types.GetRequestID(ctx),
		"records", len(event.Records),
	)
	return h.dispatcher.Handle(ctx, event)
}

// requestID returns the Lambda request ID, or a fresh UUID outside Lambda.
func requestID(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	return uuid.NewString()
}
