package logger

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/pawga/crypto/internal/pkg/config"
)

var (
	loggerInstance Logger
	loggerErr      error
	loggerOnce     sync.Once
)

// constructors builds a Logger for each supported log_type.
var constructors = map[string]func(*config.LoggerSettings) Logger{
	config.LogTypeConsole: func(s *config.LoggerSettings) Logger {
		return NewConsoleLogger(s.LogLevel)
	},
	config.LogTypeFile: func(s *config.LoggerSettings) Logger {
		return NewFileLogger(s.LogLevel, s.FilePath, s.MaxSize, s.MaxBackups, s.MaxAge)
	},
}

// levels maps configured level names onto slog levels. critical has no slog
// counterpart and is logged as error.
var levels = map[string]slog.Level{
	config.LogLevelDebug:    slog.LevelDebug,
	config.LogLevelInfo:     slog.LevelInfo,
	config.LogLevelWarning:  slog.LevelWarn,
	config.LogLevelError:    slog.LevelError,
	config.LogLevelCritical: slog.LevelError,
}

// InitLogger builds the process-wide logger from settings. Later calls return
// the outcome of the first one and never replace the instance.
func InitLogger(settings *config.LoggerSettings) error {
	loggerOnce.Do(func() {
		loggerInstance, loggerErr = NewLogger(settings)
	})
	return loggerErr
}

// GetLogger returns the logger created by InitLogger.
func GetLogger() (Logger, error) {
	if loggerInstance == nil {
		return nil, fmt.Errorf("logger not initialized: call InitLogger first")
	}
	return loggerInstance, nil
}

// NewLogger validates settings and builds a logger without touching the process-wide instance.
func NewLogger(settings *config.LoggerSettings) (Logger, error) {
	if settings == nil {
		return nil, fmt.Errorf("logger settings are nil")
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger settings: %w", err)
	}

	construct, ok := constructors[settings.LogType]
	if !ok {
		return nil, fmt.Errorf("unsupported log type: %s", settings.LogType)
	}
	return construct(settings), nil
}

func parseLevel(level string) slog.Level {
	if l, ok := levels[level]; ok {
		return l
	}
	return slog.LevelInfo
}

func formatArgs(args ...interface{}) string {
	if len(args) == 0 {
		return ""
	}
	return fmt.Sprint(args...)
}
