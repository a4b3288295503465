package logger

import (
	"fmt"

	"trivia-api/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

// Initialize builds the global logger: JSON on stdout in production, a colored console everywhere else.
// An empty level means info.
func Initialize(loggerCfg config.LoggerConfig) error {
	levelText := loggerCfg.Level
	if levelText == "" {
		levelText = "info"
	}
	level, err := zap.ParseAtomicLevel(levelText)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", loggerCfg.Level, err)
	}

	var zapCfg zap.Config
	if loggerCfg.Env == "production" {
		zapCfg = zap.NewProductionConfig()
		zapCfg.Sampling = nil
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.Development = false
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zapCfg.Level = level
	zapCfg.OutputPaths = []string{"stdout"}
	zapCfg.EncoderConfig.TimeKey = "timestamp"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	built, err := zapCfg.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	log = built
	return nil
}

// Get returns the global logger instance. Before Initialize it is a no-op logger.
func Get() *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}

// Sync flushes any buffered log entries
func Sync() error {
	if log == nil {
		return nil
	}
	return log.Sync()
}
