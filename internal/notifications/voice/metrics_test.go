package voice

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCloudWatchClient captures PutMetricData calls.
type mockCloudWatchClient struct {
	inputs []*cloudwatch.PutMetricDataInput
	err    error
}

func (m *mockCloudWatchClient) PutMetricData(_ context.Context, params *cloudwatch.PutMetricDataInput, _ ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error) {
	m.inputs = append(m.inputs, params)
	if m.err != nil {
		return nil, m.err
	}
	return &cloudwatch.PutMetricDataOutput{}, nil
}

func TestCloudWatchMetrics_RecordCaseEvent(t *testing.T) {
	client := &mockCloudWatchClient{}
	m := NewCloudWatchMetrics(client, "TestNamespace", newTestLogger())

	m.RecordCaseEvent(context.Background(), "critical")

	require.Len(t, client.inputs, 1)
	input := client.inputs[0]
	assert.Equal(t, "TestNamespace", aws.ToString(input.Namespace))
	require.Len(t, input.MetricData, 1)

	datum := input.MetricData[0]
	assert.Equal(t, "CaseEventProcessed", aws.ToString(datum.MetricName))
	assert.Equal(t, 1.0, aws.ToFloat64(datum.Value))
	assert.Equal(t, cwtypes.StandardUnitCount, datum.Unit)
	require.Len(t, datum.Dimensions, 1)
	assert.Equal(t, "Severity", aws.ToString(datum.Dimensions[0].Name))
	assert.Equal(t, "critical", aws.ToString(datum.Dimensions[0].Value))
}

func TestCloudWatchMetrics_RecordCaseEventEmptySeverity(t *testing.T) {
	client := &mockCloudWatchClient{}
	m := NewCloudWatchMetrics(client, "TestNamespace", newTestLogger())

	m.RecordCaseEvent(context.Background(), "")

	require.Len(t, client.inputs, 1)
	dims := client.inputs[0].MetricData[0].Dimensions
	require.Len(t, dims, 1)
	assert.Equal(t, "unknown", aws.ToString(dims[0].Value))
}

func TestCloudWatchMetrics_RecordCall(t *testing.T) {
	client := &mockCloudWatchClient{}
	m := NewCloudWatchMetrics(client, "", newTestLogger())

	m.RecordCall(context.Background(), true)
	m.RecordCall(context.Background(), false)

	require.Len(t, client.inputs, 2)
	assert.Equal(t, "SupportCaseNotifier", aws.ToString(client.inputs[0].Namespace))
	assert.Equal(t, "OutboundCallPlaced", aws.ToString(client.inputs[0].MetricData[0].MetricName))
	assert.Equal(t, "OutboundCallFailed", aws.ToString(client.inputs[1].MetricData[0].MetricName))
}

func TestCloudWatchMetrics_ErrorIsLogged(t *testing.T) {
	client := &mockCloudWatchClient{err: errors.New("AccessDenied")}
	logger := newTestLogger()
	m := NewCloudWatchMetrics(client, "TestNamespace", logger)

	m.RecordCall(context.Background(), true)

	assert.Equal(t, []string{"error:failed to publish metric"}, logger.Messages())
}
