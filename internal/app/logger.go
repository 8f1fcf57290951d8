package app

import (
	"io"
	"log/slog"
)

// newLogger builds the session logger writing to w. Unknown level names fall
// back to warn so that a normal run keeps stderr quiet.
func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		level = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: level}

	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
