package logger

import (
	"sync"

	"github.com/philipp01105/logtargets/core"
	"github.com/philipp01105/logtargets/target"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	defaultLogger = NewBuilder("default").
		WithTargets(Targets{target.Console(): core.InfoLevel}).
		Build()
}

// Default returns the default logger, which starts with the console at InfoLevel
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Debug logs a debug message using the default logger
func Debug(msg string, errs ...error) error {
	return Default().Debug(msg, errs...)
}

// Info logs an info message using the default logger
func Info(msg string, errs ...error) error {
	return Default().Info(msg, errs...)
}

// Warn logs a warning message using the default logger
func Warn(msg string, errs ...error) error {
	return Default().Warn(msg, errs...)
}

// Error logs an error message using the default logger
func Error(msg string, errs ...error) error {
	return Default().Error(msg, errs...)
}
