package logger

import (
	"io"
	"log/slog"
	"os"
)

// Config controls log level and output format.
type Config struct {
	Level  string // "debug", "info", "warn", "error"
	Format string // "json" or "text"
}

func DefaultConfig() Config {
	return Config{Level: "info", Format: "text"}
}

// New builds a slog.Logger writing to stdout.
func New(config Config) *slog.Logger {
	return NewWithOutput(config, os.Stdout)
}

func NewWithOutput(config Config, output io.Writer) *slog.Logger {
	var level slog.Level
	switch config.Level {
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
	if config.Format == "json" {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}

	return slog.New(handler)
}
