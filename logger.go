package hepvec

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/hupe1980/hepvec/vtype"
)

// Logger wraps slog.Logger with hepvec-specific context.
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
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithOp adds an operation name to the logger.
func (l *Logger) WithOp(op string) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", op),
	}
}

// WithType adds a vector type field to the logger.
func (l *Logger) WithType(d vtype.Descriptor) *Logger {
	return &Logger{
		Logger: l.Logger.With("type", d.String()),
	}
}

// WithBehavior adds a ragged behavior class to the logger.
func (l *Logger) WithBehavior(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("behavior", name),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogArray logs the construction of an array.
func (l *Logger) LogArray(ctx context.Context, op string, d vtype.Descriptor, n int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "array construction failed",
			"op", op,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "array built",
			"op", op,
			"type", d.String(),
			"len", n,
		)
	}
}

// LogEncode logs a block write.
func (l *Logger) LogEncode(ctx context.Context, n int, written int64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "array write failed",
			"len", n,
			"bytes", written,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "array written",
			"len", n,
			"bytes", written,
		)
	}
}

// LogDecode logs a block read.
func (l *Logger) LogDecode(ctx context.Context, n int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "array read failed",
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "array read",
			"len", n,
		)
	}
}

// LogBehaviors logs the loading of a behavior file.
func (l *Logger) LogBehaviors(ctx context.Context, path string, classes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "behavior load failed",
			"path", path,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "behaviors loaded",
			"path", path,
			"classes", classes,
		)
	}
}
