package genai

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	domerrors "github.com/garyellow/askuenr-go/internal/errors"
	"github.com/garyellow/askuenr-go/internal/logger"
	"github.com/garyellow/askuenr-go/internal/metrics"
)

// Bounds on accepted generated text, in runes.
const (
	MinAnswerLength = 50
	MaxAnswerLength = 1500
)

// Fallback status values reported to metrics, besides the error kinds.
const (
	statusSuccess  = "success"
	statusRejected = "rejected"
)

// Fallback asks a Generator once and validates what comes back.
// It never returns an error: every failure becomes "no answer".
type Fallback struct {
	gen     Generator
	timeout time.Duration
	log     *logger.Logger
	metrics *metrics.Metrics
}

// NewFallback wraps gen. A nil gen yields a Fallback that never answers.
func NewFallback(gen Generator, timeout time.Duration, log *logger.Logger, m *metrics.Metrics) *Fallback {
	return &Fallback{
		gen:     gen,
		timeout: timeout,
		log:     log.WithModule("genai"),
		metrics: m,
	}
}

// Enabled reports whether a generator is configured.
func (f *Fallback) Enabled() bool {
	return f != nil && f.gen != nil
}

// Provider returns the configured provider, or "" when disabled.
func (f *Fallback) Provider() Provider {
	if !f.Enabled() {
		return ""
	}
	return f.gen.Provider()
}

// Answer makes a single attempt bounded by the configured timeout. The first
// text of at least MinAnswerLength runes is accepted and cut to MaxAnswerLength.
func (f *Fallback) Answer(ctx context.Context, question string, history []Exchange) (string, bool) {
	if !f.Enabled() {
		f.log.DebugContext(ctx, "No fallback provider configured")
		return "", false
	}

	provider := f.gen.Provider().String()
	prompt := BuildPrompt(question, history)

	callCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	start := time.Now()
	texts, err := f.gen.Generate(callCtx, prompt)
	duration := time.Since(start)

	log := f.log.WithFields(map[string]any{
		"provider":      provider,
		"history_turns": len(history),
		"duration_ms":   duration.Milliseconds(),
	})

	if err != nil {
		kind := ClassifyError(err)
		log.WithError(err).WarnContext(ctx, "Fallback generation failed", "error_kind", kind)
		f.metrics.RecordFallback(provider, kind, duration.Seconds())
		return "", false
	}

	answer, err := acceptText(texts)
	if err != nil {
		log.WithError(err).WarnContext(ctx, "Fallback returned no usable text", "candidates", len(texts))
		f.metrics.RecordFallback(provider, statusRejected, duration.Seconds())
		return "", false
	}

	log.DebugContext(ctx, "Fallback answered", "answer_length", utf8.RuneCountInString(answer))
	f.metrics.RecordFallback(provider, statusSuccess, duration.Seconds())
	return answer, true
}

// acceptText returns the first trimmed text long enough to keep, truncated,
// or ErrNoAnswer.
func acceptText(texts []string) (string, error) {
	for _, text := range texts {
		text = strings.TrimSpace(text)
		if utf8.RuneCountInString(text) < MinAnswerLength {
			continue
		}
		return truncateRunes(text, MaxAnswerLength), nil
	}
	return "", fmt.Errorf("%w: %d candidates under %d runes", domerrors.ErrNoAnswer, len(texts), MinAnswerLength)
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}

// Close releases the underlying generator.
func (f *Fallback) Close() error {
	if !f.Enabled() {
		return nil
	}
	return f.gen.Close()
}
