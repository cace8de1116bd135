package env

import (
	"log/slog"
	"os"
	"strings"
)

// LogLevel reads LOG_LEVEL (debug, info, warn, error). Anything else is info.
func LogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL"))) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetupLogging applies LogLevel to the default slog logger.
func SetupLogging() slog.Level {
	level := LogLevel()
	slog.SetLogLoggerLevel(level)
	return level
}
