// Package ratelimit provides token bucket rate limiting, globally or per key.
package ratelimit

import (
	"time"

	"golang.org/x/time/rate"
)

// Limiter is a token bucket backed by rate.Limiter. It is safe for concurrent use.
//
// Tokens accrue at refillRate per second up to maxTokens; each allowed
// request spends one. A zero refillRate allows maxTokens requests in total.
type Limiter struct {
	lim       *rate.Limiter
	maxTokens float64
	now       func() time.Time
}

// New creates a full bucket holding maxTokens, refilled at refillRate tokens per second.
func New(maxTokens, refillRate float64) *Limiter {
	return newWithClock(maxTokens, refillRate, time.Now)
}

func newWithClock(maxTokens, refillRate float64, now func() time.Time) *Limiter {
	return &Limiter{
		lim:       rate.NewLimiter(rate.Limit(max(refillRate, 0)), int(maxTokens)),
		maxTokens: float64(int(maxTokens)),
		now:       now,
	}
}

// tokens returns the bucket level at the limiter's current time.
func (l *Limiter) tokens() float64 {
	if l.lim.Limit() == 0 {
		// rate.Limiter spends burst directly when it never refills.
		return float64(l.lim.Burst())
	}
	return l.lim.TokensAt(l.now())
}

// Allow spends a token if one is available.
func (l *Limiter) Allow() bool {
	return l.lim.AllowN(l.now(), 1)
}

// IsFull reports whether the bucket has refilled completely, meaning the
// limiter carries no state worth keeping.
func (l *Limiter) IsFull() bool {
	return l.tokens() >= l.maxTokens
}

// RetryAfter returns how long until the next token is available.
func (l *Limiter) RetryAfter() time.Duration {
	limit := float64(l.lim.Limit())
	tokens := l.tokens()
	if tokens >= 1 || limit <= 0 {
		return 0
	}
	return time.Duration((1 - tokens) / limit * float64(time.Second))
}
