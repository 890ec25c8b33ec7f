package logger

import (
	"log/slog"
	"os"
	"strings"
)

var log *slog.Logger

func init() {
	log = newLogger(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
}

func newLogger(level, format string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}

// Debug logs a debug message with key/value pairs
func Debug(msg string, args ...any) {
	log.Debug(msg, args...)
}

// Info logs an info message with key/value pairs
func Info(msg string, args ...any) {
	log.Info(msg, args...)
}

// Warn logs a warning message with key/value pairs
func Warn(msg string, args ...any) {
	log.Warn(msg, args...)
}

// Error logs an error message with key/value pairs
func Error(msg string, args ...any) {
	log.Error(msg, args...)
}
