// Package logger wires the process-wide structured logger. Diagnostics go
// to stderr so report output on stdout stays pipeable.
package logger

import (
	"log/slog"
	"os"
	"sync"
)

var (
	defaultLogger *slog.Logger
	level         = new(slog.LevelVar)
	once          sync.Once
)

// Initialize sets up the structured logger. Subsequent calls are no-ops.
func Initialize() {
	once.Do(func() {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		defaultLogger = slog.New(handler)
	})
}

// Get returns the default structured logger.
func Get() *slog.Logger {
	Initialize()
	return defaultLogger
}

// SetLevel adjusts the minimum emitted level at runtime.
func SetLevel(l slog.Level) { level.Set(l) }

// Debug logs a debug level message.
func Debug(msg string, args ...any) { Get().Debug(msg, args...) }

// Info logs an info level message.
func Info(msg string, args ...any) { Get().Info(msg, args...) }

// Warn logs a warning level message.
func Warn(msg string, args ...any) { Get().Warn(msg, args...) }

// Error logs an error level message.
func Error(msg string, args ...any) { Get().Error(msg, args...) }
