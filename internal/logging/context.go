// Package logging carries correlation values through context: the
// surface a log line concerns and the stream position of the message
// being processed. Entry points (CLI, MCP server) set them once; code
// below just logs with InfoContext and the handler injects the
// attributes.
package logging

import (
	"context"
	"log/slog"
)

type ctxKey int

const (
	surfaceIDKey ctxKey = iota
	messageIndexKey
)

// WithSurfaceID returns a context with the surface ID set.
func WithSurfaceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, surfaceIDKey, id)
}

// WithMessageIndex returns a context with the stream position set.
func WithMessageIndex(ctx context.Context, index int) context.Context {
	return context.WithValue(ctx, messageIndexKey, index)
}

// WithMessage sets both correlation values at once.
func WithMessage(ctx context.Context, surfaceID string, index int) context.Context {
	return WithMessageIndex(WithSurfaceID(ctx, surfaceID), index)
}

// SurfaceID extracts the surface ID from the context, or "" if absent.
func SurfaceID(ctx context.Context) string {
	v, _ := ctx.Value(surfaceIDKey).(string)
	return v
}

// MessageIndex extracts the stream position from the context. ok is
// false if absent.
func MessageIndex(ctx context.Context) (int, bool) {
	v, ok := ctx.Value(messageIndexKey).(int)
	return v, ok
}

// LogWith returns a logger enriched with correlation values from the
// context. Only present values are added as attributes.
func LogWith(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if id := SurfaceID(ctx); id != "" {
		logger = logger.With(slog.String("surface_id", id))
	}
	if idx, ok := MessageIndex(ctx); ok {
		logger = logger.With(slog.Int("message_index", idx))
	}
	return logger
}

// CorrelationHandler wraps an slog.Handler, automatically injecting
// correlation values from the context into every log record. Use with
// slog.New(NewCorrelationHandler(inner)) so callers can use
// logger.InfoContext(ctx, ...) and the values appear automatically.
type CorrelationHandler struct {
	inner slog.Handler
}

// NewCorrelationHandler wraps the given handler with automatic
// correlation injection.
func NewCorrelationHandler(inner slog.Handler) *CorrelationHandler {
	return &CorrelationHandler{inner: inner}
}

func (h *CorrelationHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *CorrelationHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := SurfaceID(ctx); id != "" {
		r.AddAttrs(slog.String("surface_id", id))
	}
	if idx, ok := MessageIndex(ctx); ok {
		r.AddAttrs(slog.Int("message_index", idx))
	}
	return h.inner.Handle(ctx, r)
}

func (h *CorrelationHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &CorrelationHandler{inner: h.inner.WithAttrs(attrs)}
}

func (h *CorrelationHandler) WithGroup(name string) slog.Handler {
	return &CorrelationHandler{inner: h.inner.WithGroup(name)}
}
