package config

import (
	"io"
	"log/slog"
	"strings"
)

// NewLogger builds the process-wide JSON logger. Unknown levels fall back to info.
func NewLogger(level string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
}
