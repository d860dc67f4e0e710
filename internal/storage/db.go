package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/garyellow/askuenr-go/internal/config"
	_ "modernc.org/sqlite" // SQLite driver for database/sql
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// DB wraps the SQLite connection holding the conversation log.
type DB struct {
	conn *sql.DB
	path string
}

// New opens the database at dbPath, applies connection pragmas and creates
// the schema if needed.
func New(ctx context.Context, dbPath string) (*DB, error) {
	if dbPath != MemoryPath {
		dir := filepath.Dir(dbPath)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if dbPath == MemoryPath {
		// Every pooled connection would otherwise get its own empty database.
		conn.SetMaxOpenConns(1)
	} else {
		conn.SetMaxOpenConns(10)
		conn.SetMaxIdleConns(5)
	}
	conn.SetConnMaxLifetime(config.DatabaseConnMaxLifetime)

	pragmas := []struct {
		stmt string
		desc string
	}{
		{"PRAGMA journal_mode=WAL", "enable WAL mode"},
		{fmt.Sprintf("PRAGMA busy_timeout=%d", config.DatabaseBusyTimeout.Milliseconds()), "set busy timeout"},
		{"PRAGMA foreign_keys=ON", "enable foreign keys"},
		{"PRAGMA synchronous=NORMAL", "set synchronous mode"},
	}
	for _, p := range pragmas {
		if _, err := conn.ExecContext(ctx, p.stmt); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("failed to %s: %w", p.desc, err)
		}
	}

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := InitSchema(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &DB{conn: conn, path: dbPath}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

// Path returns the database file path
func (db *DB) Path() string {
	return db.path
}

// Ping verifies the connection is alive.
func (db *DB) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

// Ready checks that the conversation log can be queried.
func (db *DB) Ready(ctx context.Context) error {
	if err := db.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	var name string
	err := db.conn.QueryRowContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, conversationsTable,
	).Scan(&name)
	if err != nil {
		return fmt.Errorf("conversations table: %w", err)
	}
	return nil
}
