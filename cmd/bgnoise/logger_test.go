package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_Console(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(loggerConfig{Level: "info", Format: "json"}, zapcore.AddSync(&buf))

	logger.Debug("hidden")
	logger.Info("shown", zap.Int("samples", 48000))
	require.NoError(t, logger.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"samples":48000`)
	assert.Contains(t, out, `"logger":"bgnoise"`)
}

func TestNewLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(loggerConfig{Level: "chatty", Format: "json"}, zapcore.AddSync(&buf))

	logger.Debug("hidden")
	logger.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLogger_File(t *testing.T) {
	var console bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "bgnoise.log")
	logger := newLogger(loggerConfig{
		Level:      "debug",
		Format:     "console",
		File:       path,
		MaxSize:    1,
		MaxBackups: 1,
	}, zapcore.AddSync(&console))

	logger.Debug("to both sinks", zap.String("scenario", "sea state 3"))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"to both sinks"`)
	assert.Contains(t, console.String(), "to both sinks")
}
