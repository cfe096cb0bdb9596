package util

import (
	"log/slog"
	"os"
)

// NewLogger returns the process-wide logger. Development and test
// environments get human-readable debug output; everything else emits
// JSON for log aggregation.
func NewLogger(env string) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	switch env {
	case "development", "test":
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	default:
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler).With(slog.String("service", "authd"))
}
