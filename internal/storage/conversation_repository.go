package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
)

var turnColumns = []string{
	"id", "session_id", "question", "answer", "source", "origin", "is_ai_augmented", "created_at",
}

// AppendTurn inserts a turn into the conversation log.
func (db *DB) AppendTurn(ctx context.Context, t *Turn) error {
	if t.CreatedAt == 0 {
		t.CreatedAt = time.Now().UnixMilli()
	}

	query, args, err := squirrel.Insert(conversationsTable).
		Columns("session_id", "question", "answer", "source", "origin", "is_ai_augmented", "created_at").
		Values(t.SessionID, t.Question, t.Answer, t.Source, t.Origin, t.IsAIAugmented, t.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	res, err := db.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to append turn: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read turn id: %w", err)
	}
	t.ID = id
	return nil
}

// ListTurns returns a session's turns ordered by creation time. Turns
// created within the same millisecond keep their insertion order.
func (db *DB) ListTurns(ctx context.Context, sessionID string) ([]Turn, error) {
	query, args, err := squirrel.Select(turnColumns...).
		From(conversationsTable).
		Where(squirrel.Eq{"session_id": sessionID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list turns: %w", err)
	}
	defer func() { _ = rows.Close() }()

	turns := make([]Turn, 0)
	for rows.Next() {
		var t Turn
		if err := rows.Scan(
			&t.ID, &t.SessionID, &t.Question, &t.Answer, &t.Source, &t.Origin, &t.IsAIAugmented, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan turn: %w", err)
		}
		turns = append(turns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate turns: %w", err)
	}
	return turns, nil
}

// CountTurns returns the total number of logged turns.
func (db *DB) CountTurns(ctx context.Context) (int, error) {
	query, args, err := squirrel.Select("COUNT(*)").From(conversationsTable).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var count int
	if err := db.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count turns: %w", err)
	}
	return count, nil
}
