package main

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/cubemaze/internal/game"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func TestSetupLoggingWritesDebugFile(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Debug = true
	cfg.LogFile = filepath.Join(t.TempDir(), "logs", "cubemaze.log")

	logger, closeLog := setupLogging(cfg)
	logger.Info("hello", "level", 1)
	closeLog()

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg"="hello"`)
}

func TestSetupLoggingReportsDirectoryError(t *testing.T) {
	buf := captureLog(t)

	// A regular file where the log directory should be.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	cfg := game.DefaultConfig()
	cfg.Debug = true
	cfg.LogFile = filepath.Join(blocker, "logs", "cubemaze.log")

	logger, closeLog := setupLogging(cfg)
	defer closeLog()
	logger.Info("dropped")

	assert.Contains(t, buf.String(), "Unable to create log directory")
	assert.Contains(t, buf.String(), "Unable to open log file")
}

func TestSetupLoggingOffByDefault(t *testing.T) {
	buf := captureLog(t)
	logger, closeLog := setupLogging(game.DefaultConfig())
	defer closeLog()
	logger.Info("quiet")
	assert.Empty(t, buf.String())
}
