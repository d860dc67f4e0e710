// Package ctxutil provides type-safe context value management.
// Uses private key types to prevent collisions.
package ctxutil

import (
	"context"
)

type contextKey string

const (
	sessionIDKey contextKey = "ctxutil.sessionID"
	requestIDKey contextKey = "ctxutil.requestID"
	clientIPKey  contextKey = "ctxutil.clientIP"
)

// WithSessionID adds a conversation session ID to the context.
// The session ID scopes conversation turns and is attached to every log record.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// GetSessionID retrieves the session ID from the context.
// Returns the session ID if found, empty string otherwise.
func GetSessionID(ctx context.Context) string {
	if v := ctx.Value(sessionIDKey); v != nil {
		if sessionID, ok := v.(string); ok && sessionID != "" {
			return sessionID
		}
	}
	return ""
}

// WithRequestID adds a request ID to the context for tracing.
// Request ID is generated per HTTP request for log correlation.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID retrieves the request ID from the context.
// Returns the request ID and true if found, empty string and false otherwise.
func GetRequestID(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(requestIDKey).(string)
	return requestID, ok
}

// WithClientIP adds the caller's IP address to the context.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}

// GetClientIP retrieves the caller's IP address from the context.
func GetClientIP(ctx context.Context) string {
	if ip, ok := ctx.Value(clientIPKey).(string); ok {
		return ip
	}
	return ""
}

// PreserveTracing creates a detached context that preserves tracing values.
// The new context is independent of the parent's cancellation and deadlines.
//
// Use for work that must finish even when the client goes away, such as
// persisting a conversation turn after the answer has been computed.
func PreserveTracing(ctx context.Context) context.Context {
	newCtx := context.Background()

	if sessionID := GetSessionID(ctx); sessionID != "" {
		newCtx = WithSessionID(newCtx, sessionID)
	}
	if requestID, ok := GetRequestID(ctx); ok && requestID != "" {
		newCtx = WithRequestID(newCtx, requestID)
	}
	if ip := GetClientIP(ctx); ip != "" {
		newCtx = WithClientIP(newCtx, ip)
	}

	return newCtx
}
