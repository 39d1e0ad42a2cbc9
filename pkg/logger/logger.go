// pkg/logger/logger.go

package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log  *zap.Logger
	once sync.Once
)

// DefaultConsoleEncoderConfig returns the console encoder settings used for
// interactive runs.
func DefaultConsoleEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "T"
	cfg.LevelKey = "L"
	cfg.NameKey = "N"
	cfg.CallerKey = "C"
	cfg.MessageKey = "M"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return cfg
}

// ParseLogLevel maps a LOG_LEVEL value to a zap level, defaulting to Warn so
// interactive prompts stay readable.
func ParseLogLevel(s string) zapcore.Level {
	// zap parses "" as Info; an unset LOG_LEVEL should stay quiet.
	if s == "" {
		return zapcore.WarnLevel
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return zapcore.WarnLevel
	}
	return level
}

// NewConsoleLogger builds a stderr console logger. Stdout is reserved for
// the report output.
func NewConsoleLogger() *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(DefaultConsoleEncoderConfig()),
		zapcore.Lock(os.Stderr),
		ParseLogLevel(os.Getenv("LOG_LEVEL")),
	)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}

// Initialize sets up the global logger. Safe to call more than once.
func Initialize() {
	once.Do(func() {
		log = NewConsoleLogger()
		zap.ReplaceGlobals(log)
	})
}

// L returns the global logger, initializing it on first use.
func L() *zap.Logger {
	if log == nil {
		Initialize()
	}
	return log
}

// Sync flushes buffered log entries. Sync on a terminal returns an ENOTTY
// class error which callers may ignore.
func Sync() error {
	if log == nil {
		return nil
	}
	return log.Sync()
}
