//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fileLoggerSettings(modify func(*LoggerSettings)) *LoggerSettings {
	s := &LoggerSettings{
		LogLevel:   LogLevelInfo,
		LogType:    LogTypeFile,
		FilePath:   "/var/log/crypto-signer.log",
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
	if modify != nil {
		modify(s)
	}
	return s
}

func TestLoggerSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *LoggerSettings
		expectedError bool
	}{
		{"valid console logger", &LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeConsole}, false},
		{"valid critical console logger", &LoggerSettings{LogLevel: LogLevelCritical, LogType: LogTypeConsole}, false},
		{"valid file logger with rotation", fileLoggerSettings(nil), false},
		{"missing log level", &LoggerSettings{LogType: LogTypeConsole}, true},
		{"missing log type", &LoggerSettings{LogLevel: LogLevelInfo}, true},
		{"invalid log type", &LoggerSettings{LogLevel: LogLevelInfo, LogType: "syslog"}, true},
		{"invalid log level", &LoggerSettings{LogLevel: "verbose", LogType: LogTypeConsole}, true},
		{"file logger missing file path", fileLoggerSettings(func(s *LoggerSettings) { s.FilePath = "" }), true},
		{"file logger missing rotation settings", fileLoggerSettings(func(s *LoggerSettings) {
			s.MaxSize, s.MaxBackups, s.MaxAge = 0, 0, 0
		}), true},
		{"file logger max size too large", fileLoggerSettings(func(s *LoggerSettings) { s.MaxSize = 101 }), true},
		{"file logger max backups too large", fileLoggerSettings(func(s *LoggerSettings) { s.MaxBackups = 11 }), true},
		{"file logger max age too large", fileLoggerSettings(func(s *LoggerSettings) { s.MaxAge = 366 }), true},
		{"console logger ignores rotation settings", &LoggerSettings{
			LogLevel: LogLevelInfo, LogType: LogTypeConsole, MaxSize: 1000, MaxBackups: -1,
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.expectedError {
				assert.Error(t, err, "expected an error")
			} else {
				assert.NoError(t, err, "expected no error")
			}
		})
	}
}

func TestLoggerSettingsValidation_RotationMessage(t *testing.T) {
	err := fileLoggerSettings(func(s *LoggerSettings) { s.MaxAge = 0 }).Validate()
	assert.EqualError(t, err, "logger max_age must be between 1 and 365 for file logging, got 0")
}
