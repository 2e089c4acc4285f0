package utils

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

// InitLogger builds the console logger used by the CLI. Output goes to
// stderr so rendered JSON on stdout stays clean.
func InitLogger(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	SetLogger(zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr),
		lvl,
	)))
	return nil
}

// SetLogger replaces the shared logger.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// L returns the shared logger.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Log writes one entry tagged with the module and operation that produced it.
func Log(level zapcore.Level, module, operation, details string) {
	L().Log(level, details, zap.String("module", module), zap.String("operation", operation))
}

// Info logs an informational message.
func Info(module, operation, details string) {
	Log(zapcore.InfoLevel, module, operation, details)
}

// Warn logs a warning message.
func Warn(module, operation, details string) {
	Log(zapcore.WarnLevel, module, operation, details)
}

// Error logs an error message.
func Error(module, operation, details string) {
	Log(zapcore.ErrorLevel, module, operation, details)
}
