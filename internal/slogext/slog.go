// Package slogext provides slog helpers for tracing library loading.
package slogext

import (
	"context"
	"io"
	"log/slog"

	"github.com/kortschak/goroutine"
)

// GoID is a slog.Handler that adds the calling goroutine's goid, so that
// concurrent first loads of a library can be told apart.
type GoID struct {
	slog.Handler
}

func (h GoID) Handle(ctx context.Context, r slog.Record) error {
	r.AddAttrs(slog.Int64("goid", goroutine.ID()))
	return h.Handler.Handle(ctx, r)
}

func (h GoID) WithAttrs(attrs []slog.Attr) slog.Handler {
	return GoID{h.Handler.WithAttrs(attrs)}
}

func (h GoID) WithGroup(name string) slog.Handler {
	return GoID{h.Handler.WithGroup(name)}
}

// NewLogger returns a text logger writing to w at the given level, tagging
// records with the goroutine id. If lines is true, source locations are
// included.
func NewLogger(w io.Writer, level slog.Leveler, lines bool) *slog.Logger {
	return slog.New(GoID{Handler: slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: lines,
	})})
}
