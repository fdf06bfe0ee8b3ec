// Package logging provides structured debug logging using slog.
// Logging is off (io.Discard) until Init is called with debug enabled.
package logging

import (
	"io"
	"log/slog"
	"sync"
)

var (
	defaultLogger *slog.Logger
	mu            sync.RWMutex
)

// Init routes log records to w. When debug is false, records are discarded.
func Init(w io.Writer, debug bool) {
	mu.Lock()
	defer mu.Unlock()

	if !debug || w == nil {
		defaultLogger = nil
		return
	}
	defaultLogger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// Logger returns the default logger, or a discarding logger if Init has not
// enabled one.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()

	if defaultLogger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return defaultLogger
}

// Debug logs at debug level.
func Debug(msg string, args ...any) {
	Logger().Debug(msg, args...)
}

// Warn logs at warning level.
func Warn(msg string, args ...any) {
	Logger().Warn(msg, args...)
}

// With returns a logger with the given attributes.
func With(args ...any) *slog.Logger {
	return Logger().With(args...)
}
