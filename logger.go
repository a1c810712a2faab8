package chartjs

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with interaction-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithMode adds a mode field to the logger.
func (l *Logger) WithMode(mode string) *Logger {
	return &Logger{
		Logger: l.Logger.With("mode", mode),
	}
}

// WithDatasetCount adds a dataset count field to the logger.
func (l *Logger) WithDatasetCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("datasets", count),
	}
}

// LogResolve logs a resolve operation.
func (l *Logger) LogResolve(ctx context.Context, mode string, hits int) {
	l.DebugContext(ctx, "resolve completed",
		"mode", mode,
		"hits", hits,
	)
}

// LogBatchResolve logs a batch resolve operation.
func (l *Logger) LogBatchResolve(ctx context.Context, mode string, events int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "batch resolve failed",
			"mode", mode,
			"events", events,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "batch resolve completed",
			"mode", mode,
			"events", events,
		)
	}
}
