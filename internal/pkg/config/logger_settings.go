package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Log level constants
const (
	LogLevelInfo     = "info"
	LogLevelDebug    = "debug"
	LogLevelError    = "error"
	LogLevelWarning  = "warning"
	LogLevelCritical = "critical"
)

// Log type constants
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// LoggerSettings selects the log level and sink. File sinks are rotated by size (MB),
// backup count and age (days).
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=info debug error warning critical"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console file"`
	FilePath   string `mapstructure:"file_path" validate:"required_if=LogType file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

type rotationLimit struct {
	name     string
	value    int
	min, max int
}

// Validate checks the level and sink and, for file sinks, the rotation limits
func (s *LoggerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}

	if s.LogType != LogTypeFile {
		return nil
	}

	for _, limit := range []rotationLimit{
		{name: "max_size", value: s.MaxSize, min: 1, max: 100},
		{name: "max_backups", value: s.MaxBackups, min: 1, max: 10},
		{name: "max_age", value: s.MaxAge, min: 1, max: 365},
	} {
		if limit.value < limit.min || limit.value > limit.max {
			return fmt.Errorf("logger %s must be between %d and %d for file logging, got %d",
				limit.name, limit.min, limit.max, limit.value)
		}
	}
	return nil
}
