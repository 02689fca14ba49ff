package config

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
)

// SecretProvider resolves parameter store paths to plaintext values.
// Implementations return only the keys they could resolve.
type SecretProvider interface {
	GetParametersBatch(ctx context.Context, keys []string) (map[string]string, error)
}

// NewSecretProvider picks the provider for *_SSM_PARAM pointers. Local runs
// resolve pointers against other environment variables; every other
// environment reads SSM Parameter Store.
func NewSecretProvider(appEnv string, awsCfg aws.Config) SecretProvider {
	if appEnv == localEnv {
		return NewEnvVarProvider()
	}
	return NewSSMProviderFromConfig(awsCfg)
}
