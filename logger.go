package femtotables

import (
	"log/slog"
	"os"

	"github.com/femtodream/femtotables/table"
)

// Logger wraps slog.Logger with femtotables-specific context.
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

// WithTable adds a table tag field to the logger.
func (l *Logger) WithTable(tag table.Tag) *Logger {
	return &Logger{
		Logger: l.Logger.With("table", tag.String()),
	}
}

// LogAppend logs an append operation.
func (l *Logger) LogAppend(tag table.Tag, row table.Index, err error) {
	if err != nil {
		l.Error("append rejected",
			"table", tag.String(),
			"error", err,
		)
	} else {
		l.Debug("row appended",
			"table", tag.String(),
			"row", int32(row),
		)
	}
}

// LogValidate logs a dataset validation pass.
func (l *Logger) LogValidate(tables int, err error) {
	if err != nil {
		l.Error("dataset validation failed",
			"tables", tables,
			"error", err,
		)
	} else {
		l.Info("dataset validation completed",
			"tables", tables,
		)
	}
}
