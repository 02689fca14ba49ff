// Package main is the entrypoint for the Case Notifier Lambda function.
//
// The function is subscribed to the SNS topic that an EventBridge rule on
// "aws.support" / "Support Case Update" publishes to. Each invocation receives
// a batch of SNS records; see internal/notifications/voice for the per-record
// flow.
//
// Cold Start (main):
//  1. Initialize structured logger.
//  2. Load AWS SDK configuration.
//  3. Load and validate Config (env, .env, *_SSM_PARAM pointers resolved
//     from SSM, or from other env variables when APP_ENV=local).
//  4. Initialize Support, Connect and CloudWatch clients.
//  5. Build the Dispatcher and call lambda.Start.
package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/joho/godotenv"

	"supportcall/internal/config"
	"supportcall/internal/external"
	"supportcall/internal/notifications/voice"
	"supportcall/internal/types"
)

// slogAdapter wraps *slog.Logger to implement types.Logger; slog's With
// returns *slog.Logger rather than the interface.
type slogAdapter struct {
	logger *slog.Logger
}

func (a *slogAdapter) Debug(msg string, args ...any) { a.logger.Debug(msg, args...) }
func (a *slogAdapter) Info(msg string, args ...any)  { a.logger.Info(msg, args...) }
func (a *slogAdapter) Error(msg string, args ...any) { a.logger.Error(msg, args...) }
func (a *slogAdapter) Warn(msg string, args ...any)  { a.logger.Warn(msg, args...) }
func (a *slogAdapter) With(args ...any) types.Logger {
	return &slogAdapter{logger: a.logger.With(args...)}
}

var _ types.Logger = (*slogAdapter)(nil)

func main() {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	logger.Info("Case Notifier Lambda initializing (cold start)")

	ctx := context.Background()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		logger.Error("Failed to load AWS SDK config", "error", err)
		os.Exit(1)
	}

	// LoadConfig reads .env too; loading it here lets APP_ENV from .env pick
	// the secret provider.
	_ = godotenv.Load()
	appEnv, _ := os.LookupEnv("APP_ENV")
	cfg, err := config.LoadConfig(config.NewSecretProvider(appEnv, awsCfg))
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logger.Warn("Invalid LOG_LEVEL, keeping info", "log_level", cfg.LogLevel)
	}

	typedLogger := &slogAdapter{logger: logger}

	cases := external.NewSupportClient(awsCfg, cfg.Support.Region, logger)

	var calls types.VoiceDispatcher
	if cfg.Connect.DryRun {
		logger.Warn("CONNECT_DRY_RUN set, outbound calls will only be logged")
		calls = external.NewStubVoiceDispatcher(logger)
	} else {
		calls = external.NewConnectClient(awsCfg, cfg.Connect.Region, logger)
	}

	var metrics voice.Metrics = voice.NoopMetrics{}
	if cfg.Observability.EnableMetrics {
		metrics = voice.NewCloudWatchMetrics(cloudwatch.NewFromConfig(awsCfg), cfg.Observability.MetricNamespace, typedLogger)
	}

	dispatcher, err := voice.NewDispatcher(voice.DispatcherConfig{
		Cases:   cases,
		Voice:   calls,
		Target:  cfg.Connect.Target(),
		Metrics: metrics,
		Logger:  typedLogger,
	})
	if err != nil {
		logger.Error("Failed to build dispatcher", "error", err)
		os.Exit(1)
	}

	h := &handler{dispatcher: dispatcher, logger: typedLogger}

	logger.Info("Case Notifier Lambda initialized",
		"environment", cfg.Environment,
		"connect_region", cfg.Connect.Region,
		"support_region", cfg.Support.Region,
		"dry_run", cfg.Connect.DryRun,
		"version", cfg.Build.Version,
		"commit", cfg.Build.Commit,
	)

	// Local mode: read one SNS event from stdin instead of starting the
	// Lambda runtime.
	// Usage: cat event.json | APP_ENV=local CONNECT_DRY_RUN=true go run ./cmd/case-notifier
	if cfg.Environment == "local" {
		if err := runLocal(ctx, h, os.Stdin); err != nil {
			logger.Error("Local invocation failed", "error", err)
			os.Exit(1)
		}
		logger.Info("Local invocation completed")
		return
	}

	lambda.Start(h.Handle)
}

// runLocal decodes an SNS event from r and runs a single invocation.
func runLocal(ctx context.Context, h *handler, r io.Reader) error {
	payload, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	var event events.SNSEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return err
	}
	return h.Handle(ctx, event)
}
