// Package storage persists the append-only conversation log in SQLite.
package storage

import (
	"context"
)

// ConversationRepository appends and reads session turns. Turns are never
// updated or deleted.
type ConversationRepository interface {
	// AppendTurn stores t and fills in its ID. A zero CreatedAt is set to now.
	AppendTurn(ctx context.Context, t *Turn) error

	// ListTurns returns the turns of a session in creation order.
	// Returns an empty slice for an unknown session.
	ListTurns(ctx context.Context, sessionID string) ([]Turn, error)

	// CountTurns returns the number of logged turns across all sessions.
	CountTurns(ctx context.Context) (int, error)
}

// HealthRepository defines the interface for health check operations.
type HealthRepository interface {
	// Ping verifies database connection is alive.
	Ping(ctx context.Context) error

	// Ready checks if database is ready to serve queries.
	// Performs more thorough checks than Ping.
	Ready(ctx context.Context) error
}

// Repository combines every interface the DB type serves.
type Repository interface {
	ConversationRepository
	HealthRepository
	Close() error
}

var (
	_ ConversationRepository = (*DB)(nil)
	_ HealthRepository       = (*DB)(nil)
	_ Repository             = (*DB)(nil)
)
