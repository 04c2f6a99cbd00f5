// Package logger builds the process-wide slog logger from config.
package logger

import (
	"log/slog"
	"os"

	"github.com/jwebster45206/echoes-of-ruin/internal/config"
)

const serviceName = "echoes-of-ruin"

// Setup returns the root logger and installs it as slog's default.
// Production gets JSON for log shippers; everything else gets text.
// Every record carries the service name and the active environment so
// multi-service log streams stay attributable.
func Setup(cfg *config.Config) *slog.Logger {
	logger := slog.New(newHandler(cfg)).With(
		"service", serviceName,
		"environment", cfg.Environment,
	)
	slog.SetDefault(logger)
	return logger
}

func newHandler(cfg *config.Config) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	if cfg.Environment == "production" {
		return slog.NewJSONHandler(os.Stdout, opts)
	}
	return slog.NewTextHandler(os.Stdout, opts)
}
