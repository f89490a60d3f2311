// Package logger provides the structured logger used at FitForge's edges
// (CLI, HTTP server, vocabulary loading, stats flushing).
package logger

import (
	"sort"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

// Fields is a set of structured key/value pairs attached to a log entry
type Fields map[string]interface{}

// Logger is the minimal logging interface used across FitForge
type Logger interface {
	Debug(msg string, fields Fields)
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, fields Fields)
	With(fields Fields) Logger
	WithError(err error) Logger
	Sync() error
}

// ParseLevel maps a level name to a zap level. Unknown names mean info.
func ParseLevel(levelStr string) zapcore.Level {
	switch levelStr {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// NewZap builds a zap logger. format "json" selects the production encoder,
// anything else the human-readable development encoder.
func NewZap(levelStr, format string) (*zap.Logger, error) {
	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(ParseLevel(levelStr))
	// stdout carries command output, keep logs on stderr
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// New creates a Logger backed by zap
func New(levelStr, format string) (Logger, error) {
	l, err := NewZap(levelStr, format)
	if err != nil {
		return nil, err
	}
	return &zapLogger{l: l}, nil
}

// FromZap wraps an existing *zap.Logger
func FromZap(l *zap.Logger) Logger {
	return &zapLogger{l: l}
}

// NewTest creates a Logger that writes through testing.TB
func NewTest(t testing.TB) Logger {
	return &zapLogger{l: zaptest.NewLogger(t)}
}

// NewNop creates a Logger that discards everything
func NewNop() Logger {
	return &zapLogger{l: zap.NewNop()}
}

type zapLogger struct {
	l *zap.Logger
}

func (z *zapLogger) Debug(msg string, fields Fields) {
	z.l.Debug(msg, toZapFields(fields)...)
}

func (z *zapLogger) Info(msg string, fields Fields) {
	z.l.Info(msg, toZapFields(fields)...)
}

func (z *zapLogger) Warn(msg string, fields Fields) {
	z.l.Warn(msg, toZapFields(fields)...)
}

func (z *zapLogger) Error(msg string, fields Fields) {
	z.l.Error(msg, toZapFields(fields)...)
}

func (z *zapLogger) With(fields Fields) Logger {
	return &zapLogger{l: z.l.With(toZapFields(fields)...)}
}

func (z *zapLogger) WithError(err error) Logger {
	return &zapLogger{l: z.l.With(zap.Error(err))}
}

func (z *zapLogger) Sync() error {
	return z.l.Sync()
}

// toZapFields converts fields in key order so output is stable
func toZapFields(fields Fields) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]zap.Field, 0, len(fields))
	for _, k := range keys {
		out = append(out, zap.Any(k, fields[k]))
	}
	return out
}
