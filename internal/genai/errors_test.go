package genai

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil error", nil, ""},
		{"context canceled", context.Canceled, KindCanceled},
		{"deadline exceeded", context.DeadlineExceeded, KindTimeout},
		{"wrapped deadline", fmt.Errorf("generate content failed: %w", context.DeadlineExceeded), KindTimeout},
		{"quota message", errors.New("Quota exceeded for project"), KindQuota},
		{"rate limit message", errors.New("RESOURCE_EXHAUSTED: too many requests"), KindRateLimit},
		{"timeout message", errors.New("i/o timeout"), KindTimeout},
		{"network", errors.New("dial tcp: connection refused"), KindNetwork},
		{"auth", errors.New("invalid API key supplied"), KindAuth},
		{"unknown", errors.New("something odd"), KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ClassifyError(tt.err))
		})
	}
}

func TestProvider(t *testing.T) {
	t.Parallel()
	assert.False(t, ProviderGemini.IsOpenAICompatible())
	assert.True(t, ProviderGroq.IsOpenAICompatible())
	assert.True(t, ProviderCerebras.IsOpenAICompatible())
	assert.Equal(t, "groq", ProviderGroq.String())
}
