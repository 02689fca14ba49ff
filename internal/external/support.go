package external

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/support"

	"supportcall/internal/types"
)

// SupportAPI defines the subset of the AWS Support client used by SupportClient.
type SupportAPI interface {
	DescribeCases(ctx context.Context, params *support.DescribeCasesInput, optFns ...func(*support.Options)) (*support.DescribeCasesOutput, error)
}

// SupportClient implements types.CaseLookup on the AWS Support API.
// Authentication comes from the execution role; the SDK's own retryer is the
// only retry layer.
type SupportClient struct {
	api    SupportAPI
	logger *slog.Logger
}

// NewSupportClient creates a SupportClient from an AWS config. The Support
// API has a single endpoint, so region overrides the config's region.
func NewSupportClient(awsCfg aws.Config, region string, logger *slog.Logger) *SupportClient {
	api := support.NewFromConfig(awsCfg, func(o *support.Options) {
		if region != "" {
			o.Region = region
		}
	})
	return NewSupportClientWithAPI(api, logger)
}

// NewSupportClientWithAPI creates a SupportClient over a pre-configured API.
func NewSupportClientWithAPI(api SupportAPI, logger *slog.Logger) *SupportClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &SupportClient{api: api, logger: logger}
}

// DescribeCase fetches one case by its case ID. Resolved cases are left out
// (the API default), so an event for an already resolved case finds nothing
// and is reported as types.ErrCaseNotFound.
func (c *SupportClient) DescribeCase(ctx context.Context, caseID string) (*types.SupportCase, error) {
	out, err := c.api.DescribeCases(ctx, &support.DescribeCasesInput{
		CaseIdList:            []string{caseID},
		IncludeCommunications: aws.Bool(false),
	})
	if err != nil {
		return nil, mapAWSError("support:DescribeCases", err)
	}

	if len(out.Cases) == 0 {
		return nil, types.NewAppError(
			types.ErrCodeNotFoundCase,
			fmt.Sprintf("DescribeCases returned no case for %s", caseID),
			nil,
		)
	}

	if len(out.Cases) > 1 {
		c.logger.WarnContext(ctx, "DescribeCases returned more than one case, using the first",
			"case_id", caseID,
			"count", len(out.Cases),
		)
	}

	details := out.Cases[0]
	return &types.SupportCase{
		CaseID:       aws.ToString(details.CaseId),
		DisplayID:    aws.ToString(details.DisplayId),
		Subject:      aws.ToString(details.Subject),
		SeverityCode: types.Severity(aws.ToString(details.SeverityCode)),
		Status:       aws.ToString(details.Status),
		ServiceCode:  aws.ToString(details.ServiceCode),
	}, nil
}

// Compile-time assertion that SupportClient satisfies CaseLookup.
var _ types.CaseLookup = (*SupportClient)(nil)
