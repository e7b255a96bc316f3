package cmd

import (
	"io"
	"log/slog"
)

// NewLogger returns a JSON logger in prod and a text logger otherwise.
// An unknown level falls back to info.
func NewLogger(w io.Writer, appEnv, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	if appEnv == "prod" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
