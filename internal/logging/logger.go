// Package logging defines the structured-logging interface used across
// clubcard. SlogLogger and ZapLogger are the two implementations; New picks
// one from configuration.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "issued card", "row", 12, "member_id", id)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

// Options selects the backend and verbosity of a Logger built by New.
type Options struct {
	Backend string // "slog" (default) or "zap"
	Level   string // debug, info, warn, error
	Format  string // json (default) or text; slog only
}

// New builds a Logger writing to w.
func New(w io.Writer, opts Options) (Logger, error) {
	if strings.EqualFold(opts.Backend, "zap") {
		return NewZapLoggerTo(w, opts.Level)
	}
	return NewSlogLoggerTo(w, opts.Level, opts.Format), nil
}

// Nop discards everything. Handy as a default in tests.
func Nop() Logger {
	return NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
