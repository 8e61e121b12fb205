package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// New creates a JSON logger writing to `w` at `level`.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// ParseLevel parses a level name (`debug`, `info`, `warn`, `error`).
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return level, fmt.Errorf("parsing log level: %w", err)
	}
	return level, nil
}

// Set returns a copy of `ctx` carrying `l`.
func Set(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// With returns a copy of `ctx` whose logger carries the additional `args`.
func With(ctx context.Context, args ...any) context.Context {
	return Set(ctx, Get(ctx).With(args...))
}

// Get returns the logger carried by `ctx`, or `slog.Default()` if there is
// none.
func Get(ctx context.Context) (l *slog.Logger) {
	if v := ctx.Value(loggerKey); v != nil {
		if l = v.(*slog.Logger); l != nil {
			return
		}
	}
	l = slog.Default()
	return
}

type loggerKeyType string

const loggerKey loggerKeyType = "loggerKey"
