package logger

import (
	"os"
	"time"

	"github.com/TheZeroSlave/zapsentry"
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"previewfm/blueprint"
)

// NewLogger returns a new zap logger
func NewLogger() *zap.Logger {
	logger, _ := zap.NewProduction()
	return logger
}

// NewZapSentryLogger returns a new zap logger with sentry integration. When
// SENTRY_DSN is not configured it falls back to the plain production logger.
func NewZapSentryLogger(opts *blueprint.LoggerOptions) *zap.Logger {
	log := NewLogger()

	dsn := os.Getenv("SENTRY_DSN")
	if dsn == "" {
		return log
	}

	if opts == nil {
		opts = &blueprint.LoggerOptions{RequestID: "not_set"}
	}
	if opts.RequestID == "" {
		opts.RequestID = "not_set"
	}

	cfg := zapsentry.Configuration{
		Level:             zapcore.WarnLevel,
		BreadcrumbLevel:   zapcore.WarnLevel,
		EnableBreadcrumbs: true,
		DisableStacktrace: !opts.AddTrace,
		Tags: map[string]string{
			"component":  "system",
			"when":       time.Now().String(),
			"request_id": opts.RequestID,
		},
	}

	core, zErr := zapsentry.NewCore(cfg, zapsentry.NewSentryClientFromDSN(dsn))
	if zErr != nil {
		log.Warn("error creating zap sentry core", zap.Error(zErr))
		return log
	}

	log = zapsentry.AttachCoreToLogger(core, log)
	sentryScope := sentry.NewScope()
	sentryScope.AddBreadcrumb(&sentry.Breadcrumb{
		Category:  "Request ID",
		Data:      map[string]interface{}{"request_id": opts.RequestID},
		Timestamp: time.Time{},
	}, 1)

	return log.With(zapsentry.NewScopeFromScope(sentryScope))
}

// NewLoggerWithConfig builds a logger from a custom zap config.
func NewLoggerWithConfig(config zap.Config) *zap.Logger {
	logger, _ := config.Build()
	return logger
}
