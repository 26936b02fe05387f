package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig configures the optional Sentry destination.
type SentryConfig struct {
	DSN         string
	Environment string
	// MinLevel determines which log levels to send to Sentry.
	MinLevel slog.Level
}

// NewWithSentry creates a logger that writes to both stdout and Sentry.
// An empty DSN or a failed Sentry init degrades to stdout-only logging,
// so callers never need to branch on configuration.
func NewWithSentry(cfg SentryConfig, extractors ...ContextExtractor) *slog.Logger {
	stdoutHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	if cfg.DSN == "" {
		return slog.New(NewContextHandler(stdoutHandler, extractors...))
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(stdoutHandler).Error("sentry init failed", slog.String("error", err.Error()))
		return slog.New(NewContextHandler(stdoutHandler, extractors...))
	}

	eventLevel := []slog.Level{slog.LevelError}
	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.MinLevel == slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	sentryHandler := sentryslog.Option{
		EventLevel: eventLevel,
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	combined := &teeHandler{handlers: []slog.Handler{stdoutHandler, sentryHandler}}
	return slog.New(NewContextHandler(combined, extractors...))
}
