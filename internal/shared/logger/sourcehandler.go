package logger

import (
	"context"
	"log/slog"
	"runtime"
)

type levelSourceHandler struct {
	handler slog.Handler
	levels  map[slog.Level]bool
}

// NewLevelSourceHandler wraps a handler so that source location is attached
// only to records at the given levels. The wrapped handler must be built with
// AddSource disabled; this wrapper injects the source attribute itself.
func NewLevelSourceHandler(handler slog.Handler, levels ...slog.Level) slog.Handler {
	m := make(map[slog.Level]bool, len(levels))
	for _, l := range levels {
		m[l] = true
	}
	return &levelSourceHandler{handler: handler, levels: m}
}

func (h *levelSourceHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.levels[r.Level] {
		// Skip this frame plus the slog front-end frames.
		var pcs [1]uintptr
		runtime.Callers(3, pcs[:])
		fs := runtime.CallersFrames(pcs[:])
		f, _ := fs.Next()

		r.AddAttrs(slog.Attr{
			Key: slog.SourceKey,
			Value: slog.AnyValue(&slog.Source{
				Function: f.Function,
				File:     f.File,
				Line:     f.Line,
			}),
		})
	}
	return h.handler.Handle(ctx, r)
}

func (h *levelSourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelSourceHandler{handler: h.handler.WithAttrs(attrs), levels: h.levels}
}

func (h *levelSourceHandler) WithGroup(name string) slog.Handler {
	return &levelSourceHandler{handler: h.handler.WithGroup(name), levels: h.levels}
}

func (h *levelSourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}
