package config

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// ssmMaxBatchSize is the GetParameters per-request limit.
const ssmMaxBatchSize = 10

// SSMAPI is the subset of the SSM client used by SSMProvider.
type SSMAPI interface {
	GetParameters(ctx context.Context, params *ssm.GetParametersInput, optFns ...func(*ssm.Options)) (*ssm.GetParametersOutput, error)
}

// SSMProvider implements SecretProvider on AWS Systems Manager Parameter
// Store. Parameters are fetched with decryption so SecureString values (for
// example a phone number kept out of the function definition) resolve to
// plaintext.
type SSMProvider struct {
	api SSMAPI
}

// NewSSMProvider creates an SSMProvider backed by the given client.
func NewSSMProvider(api SSMAPI) *SSMProvider {
	return &SSMProvider{api: api}
}

// NewSSMProviderFromConfig creates an SSMProvider from an AWS config.
func NewSSMProviderFromConfig(awsCfg aws.Config) *SSMProvider {
	return NewSSMProvider(ssm.NewFromConfig(awsCfg))
}

// GetParametersBatch resolves keys in chunks of ssmMaxBatchSize. Any path SSM
// reports as invalid fails the whole call.
func (p *SSMProvider) GetParametersBatch(ctx context.Context, keys []string) (map[string]string, error) {
	result := make(map[string]string, len(keys))

	for start := 0; start < len(keys); start += ssmMaxBatchSize {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("ssm: resolution cancelled: %w", err)
		}

		end := min(start+ssmMaxBatchSize, len(keys))
		out, err := p.api.GetParameters(ctx, &ssm.GetParametersInput{
			Names:          keys[start:end],
			WithDecryption: aws.Bool(true),
		})
		if err != nil {
			return nil, fmt.Errorf("ssm: GetParameters (keys %d-%d of %d): %w", start, end-1, len(keys), err)
		}
		if len(out.InvalidParameters) > 0 {
			return nil, fmt.Errorf("ssm: parameters not found: %v", out.InvalidParameters)
		}

		for _, param := range out.Parameters {
			if param.Name != nil && param.Value != nil {
				result[*param.Name] = *param.Value
			}
		}
	}

	return result, nil
}
