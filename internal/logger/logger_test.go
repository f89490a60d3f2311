package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"verbose", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestNew(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		t.Run(format, func(t *testing.T) {
			l, err := New("debug", format)
			require.NoError(t, err)
			require.NotNil(t, l)
			l.Info("hello", Fields{"k": "v"})
		})
	}
}

func TestFromZap_FieldsAndErrors(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core))

	l.With(Fields{"component": "vocabulary"}).
		WithError(errors.New("boom")).
		Warn("degraded", Fields{"path": "skills.json", "count": 0})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "degraded", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)

	ctx := entries[0].ContextMap()
	assert.Equal(t, "vocabulary", ctx["component"])
	assert.Equal(t, "skills.json", ctx["path"])
	assert.Equal(t, "boom", ctx["error"])
}

func TestFromZap_LevelFiltering(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	l := FromZap(zap.New(core))

	l.Debug("skip", nil)
	l.Info("skip", nil)
	l.Error("keep", nil)

	assert.Equal(t, 1, logs.Len())
}

func TestNewNopAndTest(t *testing.T) {
	NewNop().Error("nothing", Fields{"a": 1})
	NewTest(t).Debug("visible with -v", nil)
}
