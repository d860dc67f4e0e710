package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"invalid", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.level))
		})
	}
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLoggerRenamesKeys(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.Warn("disk almost full")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "warning", entry["level"])
	assert.Equal(t, "disk almost full", entry["message"])
	assert.Contains(t, entry, "timestamp")
}

func TestLoggerFieldChaining(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("debug", &buf)

	log.WithModule("ask").
		WithField("source", "JSON").
		WithError(errors.New("boom")).
		WithFields(map[string]any{"attempt": 1}).
		Debug("chained")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "ask", entry["module"])
	assert.Equal(t, "JSON", entry["source"])
	assert.Equal(t, "boom", entry["error"])
	assert.EqualValues(t, 1, entry["attempt"])
	assert.Equal(t, slog.LevelDebug, log.WithModule("x").Level())
}

func TestLoggerLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("error", &buf)

	log.Info("ignored")
	assert.Zero(t, buf.Len())
}

func TestShutdownWithoutRemoteSink(t *testing.T) {
	log := New("info")
	assert.NoError(t, log.Shutdown(context.Background()))

	var nilLogger *Logger
	assert.NoError(t, nilLogger.Shutdown(context.Background()))
}

type countingHandler struct {
	slog.Handler
	count chan struct{}
}

func (h *countingHandler) Handle(_ context.Context, _ slog.Record) error {
	h.count <- struct{}{}
	return nil
}

func TestAsyncHandlerFlushesOnShutdown(t *testing.T) {
	inner := &countingHandler{
		Handler: slog.NewJSONHandler(&bytes.Buffer{}, nil),
		count:   make(chan struct{}, 8),
	}
	h := newAsyncHandler(inner, AsyncOptions{BufferSize: 8, FlushTimeout: time.Second})
	log := slog.New(newMultiHandler(h))

	log.Info("one")
	log.Info("two")

	require.NoError(t, h.Shutdown(context.Background()))
	assert.Len(t, inner.count, 2)
	assert.Zero(t, h.Dropped())

	log.Info("after shutdown")
	assert.Len(t, inner.count, 2)
}

type blockingHandler struct {
	slog.Handler
	release chan struct{}
}

func (h *blockingHandler) Handle(_ context.Context, _ slog.Record) error {
	<-h.release
	return nil
}

func TestShutdownReportsDroppedRecords(t *testing.T) {
	inner := &blockingHandler{
		Handler: slog.NewJSONHandler(&bytes.Buffer{}, nil),
		release: make(chan struct{}),
	}
	h := newAsyncHandler(inner, AsyncOptions{BufferSize: 1, FlushTimeout: time.Second})
	log := &Logger{Logger: slog.New(h), async: h}

	// The worker holds at most one record and the queue one more.
	for range 5 {
		log.Info("burst")
	}
	close(inner.release)

	err := log.Shutdown(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "remote log queue dropped")
	assert.GreaterOrEqual(t, h.Dropped(), uint64(3))
}
