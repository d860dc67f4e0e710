package sentry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_EmptyDSN(t *testing.T) {
	t.Parallel()

	enabled, err := Initialize(Config{})
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestInitialize_InvalidDSN(t *testing.T) {
	t.Parallel()

	enabled, err := Initialize(Config{DSN: "not a dsn"})
	require.Error(t, err)
	assert.False(t, enabled)
}

func TestInitialize_ValidConfig(t *testing.T) {
	// Cannot use t.Parallel() as Sentry uses global state

	enabled, err := Initialize(Config{
		DSN:         "https://public@o0.ingest.sentry.io/1",
		Environment: "test",
	})
	require.NoError(t, err)
	assert.True(t, enabled)

	CaptureError(context.Background(), nil, nil)

	Flush(100 * time.Millisecond)
}
