package voice

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"

	"supportcall/internal/types"
)

// Metrics records dispatcher telemetry. Implementations must not fail the
// invocation: errors are logged and dropped.
type Metrics interface {
	RecordCaseEvent(ctx context.Context, severity types.Severity)
	RecordCall(ctx context.Context, placed bool)
}

// CloudWatchClient abstracts the CloudWatch PutMetricData operation for testability.
type CloudWatchClient interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// CloudWatchMetrics publishes:
//   - CaseEventProcessed: Dims {Severity} -- per case whose severity was read
//   - OutboundCallPlaced: no dims -- per successful StartOutboundVoiceContact
//   - OutboundCallFailed: no dims -- per failed StartOutboundVoiceContact
type CloudWatchMetrics struct {
	client    CloudWatchClient
	namespace string
	logger    types.Logger
}

// NewCloudWatchMetrics creates CloudWatchMetrics for the given namespace.
// An empty namespace falls back to types.MetricNamespace.
func NewCloudWatchMetrics(client CloudWatchClient, namespace string, logger types.Logger) *CloudWatchMetrics {
	if namespace == "" {
		namespace = types.MetricNamespace
	}
	return &CloudWatchMetrics{client: client, namespace: namespace, logger: logger}
}

// unknownSeverity replaces an empty severity code; CloudWatch rejects empty
// dimension values.
const unknownSeverity = "unknown"

func (m *CloudWatchMetrics) RecordCaseEvent(ctx context.Context, severity types.Severity) {
	value := string(severity)
	if value == "" {
		value = unknownSeverity
	}
	m.put(ctx, cwtypes.MetricDatum{
		MetricName: aws.String(types.MetricCaseEventProcessed),
		Value:      aws.Float64(1),
		Unit:       cwtypes.StandardUnitCount,
		Dimensions: []cwtypes.Dimension{
			{
				Name:  aws.String(types.DimSeverity),
				Value: aws.String(value),
			},
		},
	})
}

func (m *CloudWatchMetrics) RecordCall(ctx context.Context, placed bool) {
	name := types.MetricOutboundCallPlaced
	if !placed {
		name = types.MetricOutboundCallFailed
	}
	m.put(ctx, cwtypes.MetricDatum{
		MetricName: aws.String(name),
		Value:      aws.Float64(1),
		Unit:       cwtypes.StandardUnitCount,
	})
}

func (m *CloudWatchMetrics) put(ctx context.Context, datum cwtypes.MetricDatum) {
	input := &cloudwatch.PutMetricDataInput{
		Namespace:  aws.String(m.namespace),
		MetricData: []cwtypes.MetricDatum{datum},
	}
	if _, err := m.client.PutMetricData(ctx, input); err != nil {
		m.logger.Error("failed to publish metric",
			"metric", aws.ToString(datum.MetricName),
			"error", err.Error(),
		)
	}
}

// NoopMetrics discards all telemetry.
type NoopMetrics struct{}

func (NoopMetrics) RecordCaseEvent(context.Context, types.Severity) {}
func (NoopMetrics) RecordCall(context.Context, bool)                {}

var (
	_ Metrics = (*CloudWatchMetrics)(nil)
	_ Metrics = NoopMetrics{}
)
