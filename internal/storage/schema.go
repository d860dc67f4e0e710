package storage

import (
	"context"
	"database/sql"
	"fmt"
)

const conversationsTable = "conversations"

// InitSchema creates all necessary tables and indexes.
func InitSchema(ctx context.Context, db *sql.DB) error {
	return createConversationsTable(ctx, db)
}

func createConversationsTable(ctx context.Context, db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS conversations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		question TEXT NOT NULL,
		answer TEXT NOT NULL,
		source TEXT CHECK(source IN ('JSON', 'Gemini', 'Fallback')) NOT NULL,
		origin TEXT NOT NULL DEFAULT '',
		is_ai_augmented INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_conversations_session ON conversations(session_id, created_at);
	CREATE INDEX IF NOT EXISTS idx_conversations_created_at ON conversations(created_at);
	`

	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create conversations table: %w", err)
	}

	return nil
}
