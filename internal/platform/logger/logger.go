package logger

import (
	"io"
	"log/slog"
)

// LevelCritical sits above slog.LevelError and is used for failures that need
// an operator, such as lost storage connectivity.
const LevelCritical = slog.Level(12)

// New returns a JSON logger writing to w. Debug output is enabled outside production.
func New(w io.Writer, isProduction bool) *slog.Logger {
	level := slog.LevelDebug
	if isProduction {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceLevel,
	}))
}

func replaceLevel(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	if lvl, ok := a.Value.Any().(slog.Level); ok && lvl >= LevelCritical {
		a.Value = slog.StringValue("CRITICAL")
	}
	return a
}
