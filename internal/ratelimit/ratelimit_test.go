package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/garyellow/askuenr-go/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestLimiter_AllowUntilEmpty(t *testing.T) {
	t.Parallel()
	clock := newFakeClock()
	l := newWithClock(3, 1, clock.Now)

	for i := range 3 {
		assert.True(t, l.Allow(), "request %d", i+1)
	}
	assert.False(t, l.Allow())
	assert.Equal(t, time.Second, l.RetryAfter())
}

func TestLimiter_Refill(t *testing.T) {
	t.Parallel()
	clock := newFakeClock()
	l := newWithClock(2, 0.5, clock.Now)

	l.Allow()
	l.Allow()
	assert.False(t, l.Allow())

	clock.Advance(1500 * time.Millisecond)
	assert.False(t, l.Allow(), "0.75 tokens is not enough")
	assert.Equal(t, 500*time.Millisecond, l.RetryAfter())

	clock.Advance(500 * time.Millisecond)
	assert.True(t, l.Allow())

	clock.Advance(time.Hour)
	assert.InDelta(t, 2, l.tokens(), 0.0001, "refill is capped")
	assert.True(t, l.IsFull())
}

func TestLimiter_NoRefill(t *testing.T) {
	t.Parallel()
	l := New(1, 0)
	assert.True(t, l.Allow())
	assert.False(t, l.Allow())
	assert.Zero(t, l.RetryAfter())
}

func TestLimiter_Concurrent(t *testing.T) {
	t.Parallel()
	l := New(100, 0)

	var mu sync.Mutex
	allowed := 0
	var wg sync.WaitGroup
	for range 200 {
		wg.Go(func() {
			if l.Allow() {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		})
	}
	wg.Wait()
	assert.Equal(t, 100, allowed)
}

func TestPerKeyLimiter_KeysAreIndependent(t *testing.T) {
	t.Parallel()
	m := metrics.New(prometheus.NewRegistry())
	pkl := NewPerKeyLimiter(PerKeyConfig{MaxTokens: 2, RefillRate: 0.001, LimiterType: "client"}, m)
	defer pkl.Stop()

	assert.True(t, pkl.Allow("10.0.0.1"))
	assert.True(t, pkl.Allow("10.0.0.1"))
	assert.False(t, pkl.Allow("10.0.0.1"))
	assert.True(t, pkl.Allow("10.0.0.2"))

	assert.Equal(t, 2, pkl.activeCount())
	assert.Positive(t, pkl.RetryAfter("10.0.0.1"))
	assert.Zero(t, pkl.RetryAfter("10.0.0.9"))
	assert.InDelta(t, 1, testutil.ToFloat64(m.RateLimiterDropped.WithLabelValues("client")), 0)
}

func TestPerKeyLimiter_EmptyKeyNeverLimited(t *testing.T) {
	t.Parallel()
	pkl := NewPerKeyLimiter(PerKeyConfig{MaxTokens: 1, RefillRate: 0}, nil)
	defer pkl.Stop()

	for range 5 {
		assert.True(t, pkl.Allow(""))
	}
	assert.Zero(t, pkl.activeCount())
}

func TestPerKeyLimiter_PruneDropsIdleKeys(t *testing.T) {
	t.Parallel()
	clock := newFakeClock()
	pkl := NewPerKeyLimiter(PerKeyConfig{MaxTokens: 2, RefillRate: 1}, nil)
	pkl.newClock = clock.Now
	defer pkl.Stop()

	pkl.Allow("busy")
	pkl.Allow("busy")
	pkl.Allow("idle")

	clock.Advance(1500 * time.Millisecond)
	pkl.prune()

	// "idle" refilled to 2 tokens, "busy" only to 1.5.
	assert.Equal(t, 1, pkl.activeCount())

	clock.Advance(time.Second)
	pkl.prune()
	assert.Zero(t, pkl.activeCount())
}

func TestPerKeyLimiter_StopTwice(t *testing.T) {
	t.Parallel()
	pkl := NewPerKeyLimiter(PerKeyConfig{MaxTokens: 1, RefillRate: 1, CleanupPeriod: time.Millisecond}, nil)
	pkl.Stop()
	pkl.Stop()
}
