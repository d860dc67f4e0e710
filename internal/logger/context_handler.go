package logger

import (
	"context"
	"log/slog"

	"github.com/garyellow/askuenr-go/internal/ctxutil"
)

// ContextHandler is a slog.Handler that extracts tracing values from the
// context and adds them as attributes to log records.
//
// Context values extracted:
//   - request_id: per-HTTP-request correlation ID
//   - session_id: conversation session the question belongs to
//   - client_ip: caller address as seen by the router
type ContextHandler struct {
	handler slog.Handler
}

// NewContextHandler creates a new ContextHandler that wraps the provided handler.
func NewContextHandler(handler slog.Handler) *ContextHandler {
	return &ContextHandler{handler: handler}
}

// Enabled reports whether the handler handles records at the given level.
func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle enriches the record with context values before delegating.
func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if requestID, ok := ctxutil.GetRequestID(ctx); ok && requestID != "" {
		r.AddAttrs(slog.String("request_id", requestID))
	}
	if sessionID := ctxutil.GetSessionID(ctx); sessionID != "" {
		r.AddAttrs(slog.String("session_id", sessionID))
	}
	if ip := ctxutil.GetClientIP(ctx); ip != "" {
		r.AddAttrs(slog.String("client_ip", ip))
	}
	return h.handler.Handle(ctx, r)
}

// WithAttrs returns a new ContextHandler whose attributes consist of
// both the receiver's attributes and the arguments.
func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{handler: h.handler.WithAttrs(attrs)}
}

// WithGroup returns a new ContextHandler with the given group name prepended
// to the current group name.
func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{handler: h.handler.WithGroup(name)}
}
