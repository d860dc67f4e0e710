// Package genai provides the external text-generation fallback used when no
// knowledge document can answer a question.
//
// Architecture:
//   - Gemini: google.golang.org/genai (official SDK)
//   - Groq/Cerebras: github.com/openai/openai-go/v3 (OpenAI-compatible API)
package genai

import (
	"context"
)

// Provider represents an LLM provider.
type Provider string

const (
	// ProviderGemini represents Google's Gemini API (non-OpenAI-compatible).
	ProviderGemini Provider = "gemini"
	// ProviderGroq represents Groq's API (OpenAI-compatible).
	ProviderGroq Provider = "groq"
	// ProviderCerebras represents Cerebras's API (OpenAI-compatible).
	ProviderCerebras Provider = "cerebras"
)

// ProviderEndpoint defines the base URL for OpenAI-compatible providers.
// Gemini is not included as it uses a different SDK.
var ProviderEndpoint = map[Provider]string{
	ProviderGroq:     "https://api.groq.com/openai/v1/",
	ProviderCerebras: "https://api.cerebras.ai/v1/",
}

// Default models per provider, used when configuration leaves the model empty.
var DefaultModels = map[Provider]string{
	ProviderGemini:   "gemini-2.0-flash",
	ProviderGroq:     "llama-3.3-70b-versatile",
	ProviderCerebras: "llama-3.3-70b",
}

// Generation parameters sent with every request.
const (
	temperature     = 0.4
	maxOutputTokens = 1024
	topP            = 0.9
	topK            = 50
)

// IsOpenAICompatible returns true if the provider uses OpenAI-compatible API.
func (p Provider) IsOpenAICompatible() bool {
	_, ok := ProviderEndpoint[p]
	return ok
}

// String returns the string representation of the provider.
func (p Provider) String() string {
	return string(p)
}

// Generator sends a prompt to a text-generation API.
type Generator interface {
	// Generate returns the non-empty text parts of every candidate, in
	// response order.
	Generate(ctx context.Context, prompt string) ([]string, error)
	// Provider returns the provider type for logs and metrics.
	Provider() Provider
	// Close releases any resources held by the generator.
	Close() error
}

// Exchange is one earlier question and answer in the same session.
type Exchange struct {
	Question string
	Answer   string
}
