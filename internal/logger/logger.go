// Package logger provides the shared zap sugared logger. Output goes to
// a file so the terminal stays free for the TUI.
package logger

import (
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger  *zap.SugaredLogger
	once    sync.Once
	initErr error
)

// Init configures the shared logger to write to filePath at the given
// level. Safe to call more than once; only the first call takes effect.
func Init(filePath, level string) error {
	once.Do(func() {
		var lvl zapcore.Level
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			lvl = zapcore.InfoLevel
		}

		if dir := filepath.Dir(filePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				initErr = err
				return
			}
		}

		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(lvl)
		cfg.OutputPaths = []string{filePath}
		cfg.ErrorOutputPaths = []string{filePath}

		zapLogger, err := cfg.Build()
		if err != nil {
			initErr = err
			return
		}
		logger = zapLogger.Sugar()
	})
	return initErr
}

// Get returns the shared logger. Before Init succeeds it returns a
// no-op logger, which keeps tests quiet.
func Get() *zap.SugaredLogger {
	if logger == nil {
		return zap.NewNop().Sugar()
	}
	return logger
}

// Close flushes any buffered log entries
func Close() {
	if logger != nil {
		_ = logger.Sync()
	}
}
