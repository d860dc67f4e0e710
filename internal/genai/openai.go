package genai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// openaiGenerator calls an OpenAI-compatible chat completion endpoint
// (Groq, Cerebras) via a custom base URL.
type openaiGenerator struct {
	client   openai.Client
	model    string
	provider Provider
}

// newOpenAIGenerator creates an OpenAI-compatible generator. An empty
// endpoint selects the provider's public endpoint.
// Returns nil if apiKey is empty (fallback disabled).
func newOpenAIGenerator(provider Provider, apiKey, model, endpoint string) (*openaiGenerator, error) {
	if apiKey == "" {
		return nil, nil //nolint:nilnil // Intentional: feature disabled when no API key
	}

	if endpoint == "" {
		var ok bool
		if endpoint, ok = ProviderEndpoint[provider]; !ok {
			return nil, fmt.Errorf("unsupported OpenAI-compatible provider: %s", provider)
		}
	}
	if model == "" {
		model = DefaultModels[provider]
	}

	client := openai.NewClient(
		option.WithBaseURL(endpoint),
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	)

	return &openaiGenerator{
		client:   client,
		model:    model,
		provider: provider,
	}, nil
}

// Generate implements Generator. top_k has no OpenAI equivalent and is not sent.
func (g *openaiGenerator) Generate(ctx context.Context, prompt string) ([]string, error) {
	params := openai.ChatCompletionNewParams{
		Model: g.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(temperature),
		TopP:        openai.Float(topP),
		MaxTokens:   openai.Int(maxOutputTokens),
	}

	resp, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}

	var texts []string
	for _, choice := range resp.Choices {
		if choice.Message.Content != "" {
			texts = append(texts, choice.Message.Content)
		}
	}
	return texts, nil
}

// Provider returns the provider type for this generator.
func (g *openaiGenerator) Provider() Provider {
	return g.provider
}

// Close releases resources.
func (g *openaiGenerator) Close() error {
	// openai-go client doesn't require cleanup
	return nil
}
