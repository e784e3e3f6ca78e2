// Package logger provides a simple wrapper around slog for structured logging.
// TUI output owns stdout, so all logging goes to stderr.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

var level = new(slog.LevelVar)

// Logger is the global logger instance.
var Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

// SetLevel adjusts the global log level. Accepts "debug", "info", "warn",
// "error"; anything else keeps the current level.
func SetLevel(name string) {
	switch strings.ToLower(name) {
	case "debug":
		level.Set(slog.LevelDebug)
	case "info":
		level.Set(slog.LevelInfo)
	case "warn":
		level.Set(slog.LevelWarn)
	case "error":
		level.Set(slog.LevelError)
	}
}

// Error logs an error message.
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}
