//go:build unit
// +build unit

package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/pawga/crypto/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLoggerSingleton() {
	loggerInstance = nil
	loggerErr = nil
	loggerOnce = sync.Once{}
}

func consoleSettings(level string) *config.LoggerSettings {
	return &config.LoggerSettings{LogLevel: level, LogType: config.LogTypeConsole}
}

func fileSettings(t *testing.T) *config.LoggerSettings {
	t.Helper()
	return &config.LoggerSettings{
		LogLevel:   config.LogLevelInfo,
		LogType:    config.LogTypeFile,
		FilePath:   filepath.Join(t.TempDir(), "signer.log"),
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("Console", func(t *testing.T) {
		logger, err := NewLogger(consoleSettings(config.LogLevelDebug))
		require.NoError(t, err)
		assert.IsType(t, &slogLogger{}, logger)
	})

	t.Run("FileRecordsCarryComponent", func(t *testing.T) {
		settings := fileSettings(t)
		logger, err := NewLogger(settings)
		require.NoError(t, err)

		logger.With("component", "aes-signer").Warn("AES stream decryption failed after ", 32, " bytes")

		content, err := os.ReadFile(settings.FilePath)
		require.NoError(t, err)

		var record map[string]interface{}
		require.NoError(t, json.Unmarshal(bytes.TrimSpace(content), &record))
		assert.Equal(t, "WARN", record["level"])
		assert.Equal(t, "aes-signer", record["component"])
		assert.Equal(t, "AES stream decryption failed after 32 bytes", record["msg"])
	})

	t.Run("Rejected", func(t *testing.T) {
		tests := []struct {
			name     string
			settings *config.LoggerSettings
			errText  string
		}{
			{"nil settings", nil, "logger settings are nil"},
			{"unknown level", consoleSettings("verbose"), "invalid logger settings"},
			{"unknown type", &config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: "syslog"}, "invalid logger settings"},
			{"file without rotation", &config.LoggerSettings{
				LogLevel: config.LogLevelInfo,
				LogType:  config.LogTypeFile,
				FilePath: "/tmp/signer.log",
			}, "max_size"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				logger, err := NewLogger(tt.settings)
				require.Error(t, err)
				assert.Nil(t, logger)
				assert.Contains(t, err.Error(), tt.errText)
			})
		}
	})
}

func TestInitLogger(t *testing.T) {
	t.Run("FirstCallWins", func(t *testing.T) {
		t.Cleanup(resetLoggerSingleton)

		require.NoError(t, InitLogger(consoleSettings(config.LogLevelInfo)))
		first, err := GetLogger()
		require.NoError(t, err)

		require.NoError(t, InitLogger(fileSettings(t)))
		second, err := GetLogger()
		require.NoError(t, err)

		assert.Same(t, first, second)
	})

	t.Run("FailureIsSticky", func(t *testing.T) {
		t.Cleanup(resetLoggerSingleton)

		assert.Error(t, InitLogger(consoleSettings("verbose")))
		assert.Error(t, InitLogger(consoleSettings(config.LogLevelInfo)))

		logger, err := GetLogger()
		assert.Error(t, err)
		assert.Nil(t, logger)
	})

	t.Run("ComponentLoggersShareInstance", func(t *testing.T) {
		t.Cleanup(resetLoggerSingleton)

		settings := fileSettings(t)
		require.NoError(t, InitLogger(settings))
		root, err := GetLogger()
		require.NoError(t, err)

		root.With("component", "rsa-signer").Info("Generated RSA key pair")
		root.Info("server started")

		content, err := os.ReadFile(settings.FilePath)
		require.NoError(t, err)
		lines := bytes.Split(bytes.TrimSpace(content), []byte("\n"))
		require.Len(t, lines, 2)
		assert.Contains(t, string(lines[0]), `"component":"rsa-signer"`)
		assert.NotContains(t, string(lines[1]), "component")
	})
}

func TestGetLogger_BeforeInit(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	logger, err := GetLogger()
	assert.Nil(t, logger)
	assert.ErrorContains(t, err, "not initialized")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel(config.LogLevelDebug))
	assert.Equal(t, slog.LevelWarn, parseLevel(config.LogLevelWarning))
	assert.Equal(t, slog.LevelError, parseLevel(config.LogLevelCritical))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))

	for name := range levels {
		assert.Contains(t, []string{
			config.LogLevelDebug, config.LogLevelInfo, config.LogLevelWarning,
			config.LogLevelError, config.LogLevelCritical,
		}, name)
	}
}

func TestFormatArgs(t *testing.T) {
	assert.Empty(t, formatArgs())
	assert.Equal(t, "read 32 bytes", formatArgs("read ", 32, " bytes"))
}
