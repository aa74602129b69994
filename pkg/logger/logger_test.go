package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitDefaultsToInfoLevel(t *testing.T) {
	require.NoError(t, Init(LogConfig{}))
	assert.NotNil(t, L())
	Info("logger initialized")
}

func TestInitParsesLevel(t *testing.T) {
	require.NoError(t, Init(LogConfig{Level: "debug"}))
	assert.True(t, L().Core().Enabled(zapcore.DebugLevel))
}

func TestInitRejectsBadLevel(t *testing.T) {
	err := Init(LogConfig{Level: "chatty"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chatty")
}
