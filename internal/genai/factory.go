package genai

import (
	"context"
	"fmt"

	"github.com/garyellow/askuenr-go/internal/config"
)

// NewGenerator creates the generator for the configured provider.
// Returns nil without error when the provider has no API key.
func NewGenerator(ctx context.Context, cfg config.LLMConfig) (Generator, error) {
	provider := Provider(cfg.Provider)
	switch {
	case provider == ProviderGemini:
		gen, err := newGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL)
		if err != nil || gen == nil {
			return nil, err
		}
		return gen, nil
	case provider.IsOpenAICompatible():
		gen, err := newOpenAIGenerator(provider, cfg.APIKey(), cfg.Model(), "")
		if err != nil || gen == nil {
			return nil, err
		}
		return gen, nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %q", cfg.Provider)
	}
}
