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
	assert.Equal(t, zapcore.DebugLevel, parseLevel(Debug))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(Info))
	assert.Equal(t, zapcore.WarnLevel, parseLevel(Warning))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel(Error))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
}

func TestNewLoggerClient(t *testing.T) {
	l, err := NewLoggerClient(Config{Level: Debug, ServiceName: "test"})
	require.NoError(t, err)
	require.NotNil(t, l.Zap)
	assert.True(t, l.Zap.Core().Enabled(zapcore.DebugLevel))
}

func TestFieldsAndErrorAreRecorded(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core))

	l.Warn("nested type not resolved", nil, map[string]interface{}{"route": "a"}, map[string]interface{}{"route": "b", "type": "Point"})
	l.Error("encode failed", errors.New("boom"), nil)
	l.Debug("debug", nil)
	l.Info("info", nil)

	require.Equal(t, 4, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	ctx := entry.ContextMap()
	assert.Equal(t, "b", ctx["route"])
	assert.Equal(t, "Point", ctx["type"])

	assert.Equal(t, "boom", logs.All()[1].ContextMap()["error"])
}

func TestNop(t *testing.T) {
	var l Logger = NewNop()
	l.Info("discarded", nil)
}
