package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(context.Background(), MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestNew_FileSystemDatabase(t *testing.T) {
	t.Parallel()
	dbPath := filepath.Join(t.TempDir(), "sub1", "sub2", "askuenr.db")

	ctx := context.Background()
	db, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	_, err = os.Stat(dbPath)
	require.NoError(t, err, "database file should exist")
	assert.Equal(t, dbPath, db.Path())

	require.NoError(t, db.AppendTurn(ctx, &Turn{SessionID: "s1", Question: "q", Answer: "a", Source: SourceJSON}))

	// Data survives reopening the same file.
	require.NoError(t, db.Close())
	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	count, err := reopened.CountTurns(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNew_InMemory(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)

	ctx := context.Background()
	require.NoError(t, db.Ping(ctx))
	require.NoError(t, db.Ready(ctx))
}

func TestReady_ClosedDatabase(t *testing.T) {
	t.Parallel()
	db, err := New(context.Background(), MemoryPath)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	assert.Error(t, db.Ready(context.Background()))
}

func TestInitSchema_Idempotent(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)

	require.NoError(t, InitSchema(context.Background(), db.conn))
	require.NoError(t, InitSchema(context.Background(), db.conn))
}
