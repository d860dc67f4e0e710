package ratelimit

import (
	"sync"
	"time"

	"github.com/garyellow/askuenr-go/internal/metrics"
)

// PerKeyConfig configures a PerKeyLimiter.
type PerKeyConfig struct {
	MaxTokens     float64       // burst per key
	RefillRate    float64       // tokens per second per key
	CleanupPeriod time.Duration // how often idle buckets are dropped
	LimiterType   string        // metrics label, e.g. "client"
}

// PerKeyLimiter keeps one bucket per key (such as a client IP). Buckets that
// have refilled completely are dropped periodically.
type PerKeyLimiter struct {
	mu       sync.Mutex
	limiters map[string]*Limiter
	cfg      PerKeyConfig
	metrics  *metrics.Metrics
	newClock func() time.Time

	stopOnce sync.Once
	stopCh   chan struct{}
}

// NewPerKeyLimiter starts a limiter and its cleanup goroutine. Call Stop when done.
func NewPerKeyLimiter(cfg PerKeyConfig, m *metrics.Metrics) *PerKeyLimiter {
	pkl := &PerKeyLimiter{
		limiters: make(map[string]*Limiter),
		cfg:      cfg,
		metrics:  m,
		newClock: time.Now,
		stopCh:   make(chan struct{}),
	}
	if cfg.CleanupPeriod > 0 {
		go pkl.cleanupLoop()
	}
	return pkl
}

func (pkl *PerKeyLimiter) limiter(key string) *Limiter {
	pkl.mu.Lock()
	defer pkl.mu.Unlock()

	l, ok := pkl.limiters[key]
	if !ok {
		l = newWithClock(pkl.cfg.MaxTokens, pkl.cfg.RefillRate, pkl.newClock)
		pkl.limiters[key] = l
	}
	return l
}

// Allow spends a token from key's bucket. An empty key is never limited.
func (pkl *PerKeyLimiter) Allow(key string) bool {
	if key == "" {
		return true
	}
	if pkl.limiter(key).Allow() {
		return true
	}
	pkl.metrics.RecordRateLimiterDrop(pkl.cfg.LimiterType)
	return false
}

// RetryAfter returns how long key must wait for its next token.
func (pkl *PerKeyLimiter) RetryAfter(key string) time.Duration {
	pkl.mu.Lock()
	l, ok := pkl.limiters[key]
	pkl.mu.Unlock()
	if !ok {
		return 0
	}
	return l.RetryAfter()
}

// activeCount returns the number of tracked keys.
func (pkl *PerKeyLimiter) activeCount() int {
	pkl.mu.Lock()
	defer pkl.mu.Unlock()
	return len(pkl.limiters)
}

// prune drops buckets that have refilled completely.
func (pkl *PerKeyLimiter) prune() {
	pkl.mu.Lock()
	defer pkl.mu.Unlock()
	for key, l := range pkl.limiters {
		if l.IsFull() {
			delete(pkl.limiters, key)
		}
	}
}

func (pkl *PerKeyLimiter) cleanupLoop() {
	ticker := time.NewTicker(pkl.cfg.CleanupPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-pkl.stopCh:
			return
		case <-ticker.C:
			pkl.prune()
		}
	}
}

// Stop ends the cleanup goroutine. Safe to call multiple times.
func (pkl *PerKeyLimiter) Stop() {
	pkl.stopOnce.Do(func() { close(pkl.stopCh) })
}
