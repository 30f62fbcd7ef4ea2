package observability

import (
	"log/slog"
	"os"
	"strings"
)

// LoggerConfig is the slice of service configuration the logger needs.
type LoggerConfig interface {
	LoggerLevel() string
	LoggerFormat() string
}

// NewLogger builds the service logger from configured level and format.
// Unrecognized values fall back to info-level JSON.
func NewLogger(cfg LoggerConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.LoggerLevel()) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(cfg.LoggerFormat()) == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
