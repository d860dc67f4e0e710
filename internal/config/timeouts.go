// Package config provides centralized timeout constants for the application.
//
// The /ask handler is synchronous: the caller waits for classification,
// local retrieval and, on a miss, one generative fallback call. HTTP write
// timeouts therefore have to cover FallbackRequest plus storage work.
package config

import "time"

// HTTP server timeouts
const (
	// HTTPRead bounds reading the request; /ask bodies are at most ~1KB of JSON.
	HTTPRead = 10 * time.Second

	// HTTPWrite must exceed FallbackRequest plus conversation log writes.
	HTTPWrite = 45 * time.Second

	// HTTPIdle is the keep-alive idle timeout.
	HTTPIdle = 120 * time.Second
)

// Generative fallback timeouts
const (
	// FallbackRequest is the default hard timeout for the single fallback attempt.
	// Gemini flash models usually answer in 2-8s.
	FallbackRequest = 30 * time.Second
)

// Storage and knowledge timeouts
const (
	// DatabaseBusyTimeout is SQLite busy_timeout pragma value.
	DatabaseBusyTimeout = 5 * time.Second

	// DatabaseConnMaxLifetime is the maximum lifetime of database connections.
	DatabaseConnMaxLifetime = time.Hour

	// TurnPersist bounds appending a conversation turn on a detached context.
	TurnPersist = 5 * time.Second

	// KnowledgeLoad bounds loading all knowledge documents at startup.
	KnowledgeLoad = 30 * time.Second
)

// Background job intervals
const (
	// RateLimiterCleanupInterval is how often idle per-client limiters are dropped.
	RateLimiterCleanupInterval = 5 * time.Minute

	// ReadinessCheckTimeout bounds the /readyz dependency checks.
	ReadinessCheckTimeout = 3 * time.Second
)

// Graceful shutdown
const (
	// GracefulShutdown is the default timeout for graceful server shutdown.
	GracefulShutdown = 30 * time.Second
)
