package clusterviz

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with clusterviz-specific context.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithRunID tags every record with a run identifier.
func (l *Logger) WithRunID(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("run_id", id),
	}
}

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogCluster logs a clustering run.
func (l *Logger) LogCluster(ctx context.Context, k, points, iterations int, converged bool, err error) {
	switch {
	case err != nil:
		l.ErrorContext(ctx, "cluster failed",
			"k", k,
			"points", points,
			"error", err,
		)
	case !converged:
		l.WarnContext(ctx, "cluster stopped without converging",
			"k", k,
			"points", points,
			"iterations", iterations,
		)
	default:
		l.InfoContext(ctx, "cluster converged",
			"k", k,
			"points", points,
			"iterations", iterations,
		)
	}
}

// LogNearest logs a nearest-neighbor query.
func (l *Logger) LogNearest(ctx context.Context, points, index int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "nearest failed",
			"points", points,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "nearest completed",
			"points", points,
			"index", index,
		)
	}
}
