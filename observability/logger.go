// Package observability provides the structured logger used by the
// law-checking tooling.
package observability

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"
)

type contextKey string

const (
	runIDKey contextKey = "run_id"
	suiteKey contextKey = "suite"
)

// Logger wraps zerolog for structured JSON logging
type Logger struct {
	zl zerolog.Logger
}

// NewLoggerWithWriter creates a logger writing JSON lines to w. An unknown
// level falls back to info.
func NewLoggerWithWriter(w io.Writer, level string) *Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	zl := zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	return &Logger{zl: zl}
}

// WithContext returns a logger carrying the run and suite stored in ctx.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	zl := l.zl.With().Logger()

	if runID, ok := ctx.Value(runIDKey).(string); ok && runID != "" {
		zl = zl.With().Str("run_id", runID).Logger()
	}
	if suite, ok := ctx.Value(suiteKey).(string); ok && suite != "" {
		zl = zl.With().Str("suite", suite).Logger()
	}

	return &Logger{zl: zl}
}

// WithComponent returns a logger with component name
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		zl: l.zl.With().Str("component", component).Logger(),
	}
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{
		zl: l.zl.With().Interface(key, value).Logger(),
	}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) {
	l.zl.Debug().Msg(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string) {
	l.zl.Info().Msg(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string) {
	l.zl.Warn().Msg(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, err error) {
	l.zl.Error().Err(err).Msg(msg)
}

// WithRunID stores the identifier of a law-check run in ctx.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

// WithSuite stores the name of the running law suite in ctx.
func WithSuite(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, suiteKey, name)
}

// GetRunID retrieves the run identifier from ctx.
func GetRunID(ctx context.Context) string {
	if id, ok := ctx.Value(runIDKey).(string); ok {
		return id
	}
	return ""
}

// GetSuite retrieves the suite name from ctx.
func GetSuite(ctx context.Context) string {
	if name, ok := ctx.Value(suiteKey).(string); ok {
		return name
	}
	return ""
}
