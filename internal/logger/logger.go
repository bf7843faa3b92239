package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	base  = zap.NewNop()
	sugar = base.Sugar()
)

// DefaultPath is where the log goes when no file is configured.
func DefaultPath() string {
	return filepath.Join(os.TempDir(), "calc-wizard.log")
}

// Init initializes the logger to append JSON lines to path at the given level.
// An empty path means DefaultPath. The TUI owns the terminal, so nothing is
// ever written to stdout or stderr.
func Init(path, level string) (string, error) {
	if path == "" {
		path = DefaultPath()
	}

	lvl := zapcore.InfoLevel
	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return "", fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		return "", fmt.Errorf("failed to open log file: %w", err)
	}

	base = l
	sugar = l.Sugar()
	sugar.Info("--- Logger initialized ---")
	return path, nil
}

// Close flushes and detaches the log file.
func Close() {
	sugar.Info("--- Logger closing ---")
	_ = base.Sync()
	base = zap.NewNop()
	sugar = base.Sugar()
}

// L returns the structured logger.
func L() *zap.Logger {
	return base
}

// Info logs an informational message.
func Info(format string, v ...interface{}) {
	sugar.Infof(format, v...)
}

// Error logs an error message.
func Error(format string, v ...interface{}) {
	sugar.Errorf(format, v...)
}

// Debug logs a debug message.
func Debug(format string, v ...interface{}) {
	sugar.Debugf(format, v...)
}
