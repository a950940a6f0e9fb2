package logging

import (
	"io"
	"log/slog"
	"os"
)

// DebugEnv enables debug logging when set to a non-empty value.
const DebugEnv = "PERSWAY_DEBUG"

// New creates a configured application logger.
// It writes to Stderr and standardizes the "error" key to "err".
func New(level slog.Level) *slog.Logger {
	return NewWriter(os.Stderr, level)
}

// NewWriter is New with an explicit destination.
func NewWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// FromEnv returns an info-level logger, or a debug-level one when DebugEnv is set.
func FromEnv() *slog.Logger {
	if os.Getenv(DebugEnv) != "" {
		return New(slog.LevelDebug)
	}
	return New(slog.LevelInfo)
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
