package main

import (
	"io"
	"log/slog"
	"strings"
)

// SetupLogger builds a text logger on w at the given level and makes it the
// default. Unknown levels fall back to warn.
func SetupLogger(level string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	known := true
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
		known = false
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)

	if !known {
		logger.Warn("invalid log level configured, using default level",
			"configured_level", level,
			"default_level", "warn")
	}
	return logger
}
