// Package sentry initializes error reporting for unexpected failures.
package sentry

import (
	"context"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// Config holds Sentry configuration.
type Config struct {
	// DSN is the project DSN. Empty disables reporting.
	DSN string

	// Environment identifies the deployment environment (e.g., "production", "staging").
	Environment string

	// Release identifies the application release version.
	Release string

	// SampleRate controls error sampling (0.0-1.0, 0 means 1.0).
	SampleRate float64
}

// Initialize sets up the Sentry SDK. It reports whether reporting is enabled.
func Initialize(cfg Config) (bool, error) {
	if cfg.DSN == "" {
		return false, nil
	}

	if _, err := sentry.NewDsn(cfg.DSN); err != nil {
		return false, fmt.Errorf("invalid sentry DSN: %w", err)
	}

	sampleRate := cfg.SampleRate
	if sampleRate <= 0 {
		sampleRate = 1.0
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      cfg.Environment,
		Release:          cfg.Release,
		SampleRate:       sampleRate,
		AttachStacktrace: true,
	}); err != nil {
		return false, fmt.Errorf("sentry init: %w", err)
	}
	return true, nil
}

// Flush waits for buffered events to be sent to the server.
// Returns true if all events were sent within the timeout.
func Flush(timeout time.Duration) bool {
	return sentry.Flush(timeout)
}

// CaptureError reports err on the hub bound to ctx (set by the HTTP
// middleware) with the given tags. It is a no-op when reporting is disabled.
func CaptureError(ctx context.Context, err error, tags map[string]string) {
	if err == nil {
		return
	}
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	if hub.Client() == nil {
		return
	}
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		hub.CaptureException(err)
	})
}
