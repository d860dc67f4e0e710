package logger

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

const (
	defaultAsyncBufferSize   = 1024
	defaultAsyncFlushTimeout = 5 * time.Second
)

// AsyncOptions configures the async log pipeline.
type AsyncOptions struct {
	BufferSize   int
	FlushTimeout time.Duration
}

// multiHandler fans a record out to every enabled handler.
type multiHandler struct {
	handlers []slog.Handler
}

func newMultiHandler(handlers ...slog.Handler) *multiHandler {
	filtered := make([]slog.Handler, 0, len(handlers))
	for _, h := range handlers {
		if h != nil {
			filtered = append(filtered, h)
		}
	}
	return &multiHandler{handlers: filtered}
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, r.Level) {
			continue
		}
		if err := handler.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := make([]slog.Handler, 0, len(h.handlers))
	for _, handler := range h.handlers {
		next = append(next, handler.WithAttrs(attrs))
	}
	return &multiHandler{handlers: next}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	next := make([]slog.Handler, 0, len(h.handlers))
	for _, handler := range h.handlers {
		next = append(next, handler.WithGroup(name))
	}
	return &multiHandler{handlers: next}
}

type asyncRecord struct {
	ctx     context.Context
	record  slog.Record
	handler slog.Handler
}

// asyncWorker drains queued records on a single goroutine.
// Records are dropped (and counted) when the queue is full.
type asyncWorker struct {
	ch           chan asyncRecord
	flushTimeout time.Duration
	closed       atomic.Bool
	wg           sync.WaitGroup
	dropped      atomic.Uint64
}

func newAsyncWorker(opts AsyncOptions) *asyncWorker {
	bufferSize := opts.BufferSize
	if bufferSize <= 0 {
		bufferSize = defaultAsyncBufferSize
	}
	flushTimeout := opts.FlushTimeout
	if flushTimeout <= 0 {
		flushTimeout = defaultAsyncFlushTimeout
	}

	w := &asyncWorker{
		ch:           make(chan asyncRecord, bufferSize),
		flushTimeout: flushTimeout,
	}
	w.wg.Go(func() {
		for rec := range w.ch {
			_ = rec.handler.Handle(rec.ctx, rec.record)
		}
	})
	return w
}

func (w *asyncWorker) enqueue(ctx context.Context, record slog.Record, handler slog.Handler) {
	if w.closed.Load() {
		return
	}
	select {
	case w.ch <- asyncRecord{ctx: context.WithoutCancel(ctx), record: record, handler: handler}:
	default:
		w.dropped.Add(1)
	}
}

func (w *asyncWorker) shutdown(ctx context.Context) error {
	if w.closed.Swap(true) {
		return nil
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.flushTimeout)
		defer cancel()
	}
	close(w.ch)

	finished := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// asyncHandler keeps remote log shipping off the request path.
type asyncHandler struct {
	worker  *asyncWorker
	handler slog.Handler
}

func newAsyncHandler(handler slog.Handler, opts AsyncOptions) *asyncHandler {
	return &asyncHandler{
		worker:  newAsyncWorker(opts),
		handler: handler,
	}
}

func (h *asyncHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *asyncHandler) Handle(ctx context.Context, r slog.Record) error {
	if !h.handler.Enabled(ctx, r.Level) {
		return nil
	}
	h.worker.enqueue(ctx, r.Clone(), h.handler)
	return nil
}

func (h *asyncHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &asyncHandler{worker: h.worker, handler: h.handler.WithAttrs(attrs)}
}

func (h *asyncHandler) WithGroup(name string) slog.Handler {
	return &asyncHandler{worker: h.worker, handler: h.handler.WithGroup(name)}
}

// Shutdown flushes pending records up to the configured timeout.
func (h *asyncHandler) Shutdown(ctx context.Context) error {
	if h == nil || h.worker == nil {
		return nil
	}
	return h.worker.shutdown(ctx)
}

// Dropped reports how many records were discarded because the queue was full.
func (h *asyncHandler) Dropped() uint64 {
	if h == nil || h.worker == nil {
		return 0
	}
	return h.worker.dropped.Load()
}
