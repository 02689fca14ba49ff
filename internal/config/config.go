// Package config defines the process-wide configuration of the support case
// notifier. Configuration is loaded once during Lambda cold start and is
// immutable thereafter; the dispatcher receives it by value.
//
// Values are resolved via a priority chain:
//
//	OS Environment (Highest) -> Dotenv File -> AWS SSM Parameter Store (Lowest)
//
// A missing required value or invalid format fails the cold start.
package config

import "supportcall/internal/types"

// Config is the top-level configuration struct.
type Config struct {
	Environment string `envconfig:"APP_ENV" default:"prod" validate:"required,oneof=local dev staging prod"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	Connect       ConnectConfig
	Support       SupportConfig
	Observability ObservabilityConfig

	// Injected via ldflags, not env.
	Build BuildInfo
}

// ConnectConfig holds the outbound call target and the Amazon Connect
// instance that places it.
type ConnectConfig struct {
	DestinationPhone string `envconfig:"PHONE_NUMBER_TO_NOTIFY" validate:"required,e164"`
	InstanceID       string `envconfig:"CONNECT_OUTBOUND_INSTANCE_ID" validate:"required"`
	SourcePhone      string `envconfig:"CONNECT_OUTBOUND_SOURCE_PHONE" validate:"required,e164"`
	ContactFlowID    string `envconfig:"CONNECT_OUTBOUND_CONTACT_FLOW_ID" validate:"required"`
	Region           string `envconfig:"CONNECT_REGION" validate:"required"`

	// DryRun logs the call instead of placing it.
	DryRun bool `envconfig:"CONNECT_DRY_RUN" default:"false"`
}

// Target returns the notification target described by this config.
func (c ConnectConfig) Target() types.NotificationTarget {
	return types.NotificationTarget{
		DestinationPhone: c.DestinationPhone,
		SourcePhone:      c.SourcePhone,
		ContactFlowID:    c.ContactFlowID,
		InstanceID:       c.InstanceID,
	}
}

// SupportConfig holds AWS Support API settings. The Support API is served
// from a single global endpoint region.
type SupportConfig struct {
	Region string `envconfig:"SUPPORT_REGION" default:"us-east-1" validate:"required"`
}

// ObservabilityConfig holds telemetry settings.
type ObservabilityConfig struct {
	MetricNamespace string `envconfig:"METRIC_NAMESPACE" default:"SupportCaseNotifier"`
	EnableMetrics   bool   `envconfig:"ENABLE_METRICS" default:"true"`
}

// BuildInfo holds build-time metadata injected via ldflags.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildTime string
}

// ConfigErrorType categorizes configuration loading failures.
type ConfigErrorType string

const (
	// ErrMissingEnv indicates one or more required environment variables were not set.
	ErrMissingEnv ConfigErrorType = "MISSING_ENV"
	// ErrSSMResolution indicates a failure when fetching values from AWS SSM.
	ErrSSMResolution ConfigErrorType = "SSM_FAILURE"
	// ErrValidation indicates a value is present but does not satisfy its rule.
	ErrValidation ConfigErrorType = "VALIDATION_FAILED"
	// ErrParsing indicates an environment value could not be parsed into its field type.
	ErrParsing ConfigErrorType = "PARSING_FAILED"
)
