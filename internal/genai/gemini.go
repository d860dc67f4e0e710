package genai

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// geminiGenerator calls the Gemini generateContent endpoint.
type geminiGenerator struct {
	client *genai.Client
	model  string
}

// newGeminiGenerator creates a Gemini generator. baseURL overrides the API
// host when non-empty. Returns nil if apiKey is empty (fallback disabled).
func newGeminiGenerator(ctx context.Context, apiKey, model, baseURL string) (*geminiGenerator, error) {
	if apiKey == "" {
		return nil, nil //nolint:nilnil // Intentional: feature disabled when no API key
	}
	if model == "" {
		model = DefaultModels[ProviderGemini]
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &geminiGenerator{client: client, model: model}, nil
}

// Generate implements Generator.
func (g *geminiGenerator) Generate(ctx context.Context, prompt string) ([]string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](temperature),
		MaxOutputTokens: maxOutputTokens,
		TopP:            genai.Ptr[float32](topP),
		TopK:            genai.Ptr[float32](topK),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), config)
	if err != nil {
		return nil, fmt.Errorf("generate content failed: %w", err)
	}
	if resp == nil {
		return nil, nil
	}

	var texts []string
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part != nil && part.Text != "" {
				texts = append(texts, part.Text)
			}
		}
	}
	return texts, nil
}

// Provider returns the provider type for this generator.
func (g *geminiGenerator) Provider() Provider {
	return ProviderGemini
}

// Close releases resources.
// Safe to call on nil receiver.
func (g *geminiGenerator) Close() error {
	// genai.Client does not require explicit cleanup
	return nil
}
