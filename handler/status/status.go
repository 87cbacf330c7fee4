package status

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

// New returns a handler that prints the confirmation line for a saved header
// to stdout. Warnings and errors are passed on to h; every other record is dropped.
func New(h slog.Handler) slog.Handler {
	return NewWithWriter(h, colorable.NewColorableStdout())
}

func NewWithWriter(h slog.Handler, w io.Writer) slog.Handler {
	return &statusHandler{
		handler: h,
		stdout:  w,
	}
}

type statusHandler struct {
	handler slog.Handler
	stdout  io.Writer
	attrs   []slog.Attr
}

func (h *statusHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *statusHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelWarn {
		return h.handler.Handle(ctx, r)
	}
	if r.Message != "header saved" {
		return nil
	}
	var p string
	for _, attr := range h.attrs {
		if attr.Key == "path" {
			p = attr.Value.String()
		}
	}
	r.Attrs(func(attr slog.Attr) bool {
		if attr.Key == "path" {
			p = attr.Value.String()
			return false
		}
		return true
	})
	_, err := fmt.Fprintf(h.stdout, "%s %s\n", green("Header saved to"), bold(p))
	return err
}

func (h *statusHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &statusHandler{
		handler: h.handler.WithAttrs(attrs),
		stdout:  h.stdout,
		attrs:   append(slices.Clip(h.attrs), attrs...),
	}
}

// WithGroup keeps the attributes bound so far.
func (h *statusHandler) WithGroup(name string) slog.Handler {
	return &statusHandler{handler: h.handler.WithGroup(name), stdout: h.stdout, attrs: h.attrs}
}
