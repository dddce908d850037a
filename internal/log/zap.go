package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide logger. It discards everything until one of
// the Init functions runs.
var Logger = zap.NewNop()

// InitConsoleLogger writes human-readable logs at level to stderr.
func InitConsoleLogger(level string) error {
	cfg := zap.NewDevelopmentConfig()
	return build(cfg, level)
}

// InitFileLogger writes JSON logs to path. The live view owns the terminal,
// so it logs here instead of stderr.
func InitFileLogger(path, level string) error {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return build(cfg, level)
}

func build(cfg zap.Config, level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	l, err := cfg.Build()
	if err != nil {
		return err
	}
	Logger = l
	return nil
}

// Sync flushes buffered entries; errors from syncing a terminal are ignored.
func Sync() {
	_ = Logger.Sync()
}
