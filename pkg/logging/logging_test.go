package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)

			SetupLogger(tt.verbosity, WithConsole(&bytes.Buffer{}))

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(tempDir, "settingsguard", "settingsguard.log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should be created at %s", logPath)
		})
	}
}

func TestSetupLoggerWithoutFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tempDir)

	var console bytes.Buffer
	SetupLogger(1, WithConsole(&console), WithoutFile())

	log.Info().Msg("hello console")

	assert.Contains(t, console.String(), "hello console")
	_, err := os.Stat(filepath.Join(tempDir, "settingsguard", "settingsguard.log"))
	assert.True(t, os.IsNotExist(err), "no log file expected")
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger := GetLogger("rules.loader")
	logger.Info().Msg("loaded")

	assert.Contains(t, buf.String(), `"component":"rules.loader"`)
	assert.Contains(t, buf.String(), "loaded")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(&buf)

	done := LogOperationStart(logger, "validate")
	done()

	out := buf.String()
	assert.Contains(t, out, "Operation started")
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, `"operation":"validate"`)
}

func TestLogDuration(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	LogDuration(time.Now().Add(-5*time.Second), "load-rules")

	out := buf.String()
	require.Contains(t, out, "load-rules")
	assert.Contains(t, out, "duration")
}
