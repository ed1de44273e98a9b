// Package logger builds the zap loggers used across dbcodegen.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
)

// New returns a console logger named name writing to w at the given level.
// Unknown levels fall back to info.
func New(name, level string, w zapcore.WriteSyncer) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), w, zap.NewAtomicLevelAt(lvl))
	return zap.New(core).Named(name)
}

// Cleanup flushes buffered log entries. Sync errors on terminals are
// ignored.
func Cleanup(log *zap.Logger) {
	_ = log.Sync()
}
