// Package logging constructs the slog logger used across one run.
package logging

import (
	"io"
	"log/slog"
)

// New builds a text logger writing to w. Verbose lowers the level to
// debug; quiet raises it to warn. Verbose wins when both are set.
func New(w io.Writer, verbose, quiet bool) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case verbose:
		level = slog.LevelDebug
	case quiet:
		level = slog.LevelWarn
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
