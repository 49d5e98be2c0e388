package pathtree

import (
	"io"
	"log/slog"
)

const logTimeFormat = "2006-01-02 15:04:05"

func InitLogger(w io.Writer, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				// Convert time to custom format
				t := a.Value.Time()
				a.Value = slog.StringValue(t.Format(logTimeFormat))
			}
			return a
		},
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// DisableLogging temporarily disables slog output
// Usage:
//
// originalLogger := DisableLogging()
// defer RestoreLogging(originalLogger)
func DisableLogging() *slog.Logger {
	originalLogger := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return originalLogger
}

// RestoreLogging restores the original logger
func RestoreLogging(originalLogger *slog.Logger) {
	slog.SetDefault(originalLogger)
}
