package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/ajroetker/go-sortkit/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		cfg   config.LogConfig
		level zapcore.Level
	}{
		{config.LogConfig{Level: "info", Format: "console"}, zapcore.InfoLevel},
		{config.LogConfig{Level: "debug", Format: "json"}, zapcore.DebugLevel},
		{config.LogConfig{Level: "error", Format: "json"}, zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		logger, err := New(tt.cfg)
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(tt.level), "%+v", tt.cfg)
		assert.False(t, logger.Core().Enabled(tt.level-1), "%+v", tt.cfg)
	}
}

func TestNewErrors(t *testing.T) {
	_, err := New(config.LogConfig{Level: "loud", Format: "json"})
	assert.ErrorContains(t, err, "log level")

	_, err = New(config.LogConfig{Level: "info", Format: "xml"})
	assert.ErrorContains(t, err, "unknown log format")
}
