package kernelbase

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with kernelbase-specific context.
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
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithRunID adds a run_id field to the logger.
func (l *Logger) WithRunID(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("run_id", id),
	}
}

// WithKernel adds a kernel field to the logger.
func (l *Logger) WithKernel(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("kernel", name),
	}
}

// LogAllocation logs a vector allocation.
func (l *Logger) LogAllocation(ctx context.Context, name string, elements uint64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "allocation failed",
			"vector", name,
			"elements", elements,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "allocation completed",
			"vector", name,
			"elements", elements,
		)
	}
}

// LogSaxpy logs a completed SAXPY run.
func (l *Logger) LogSaxpy(ctx context.Context, vectorSize uint64, mismatches int, duration time.Duration) {
	if mismatches > 0 {
		l.WarnContext(ctx, "saxpy verification found mismatches",
			"vector_size", vectorSize,
			"mismatches", mismatches,
			"duration", duration,
		)
	} else {
		l.InfoContext(ctx, "saxpy completed",
			"vector_size", vectorSize,
			"duration", duration,
		)
	}
}

// LogEstimate logs a Monte Carlo π estimation.
func (l *Logger) LogEstimate(ctx context.Context, iterations, samples, hits uint64, estimate float64, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "pi estimation failed",
			"iterations", iterations,
			"samples", samples,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "pi estimation completed",
			"iterations", iterations,
			"samples", samples,
			"hits", hits,
			"estimate", estimate,
			"duration", duration,
		)
	}
}
