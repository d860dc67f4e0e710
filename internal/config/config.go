// Package config provides application configuration management.
// It loads settings from environment variables (optionally seeded from a .env
// file) and provides defaults for the server, knowledge documents, the
// generative fallback and observability sinks.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported generative fallback providers.
const (
	ProviderGemini   = "gemini"
	ProviderGroq     = "groq"
	ProviderCerebras = "cerebras"
)

// Config holds all application configuration
type Config struct {
	// Server Configuration
	Port            string
	LogLevel        string
	ShutdownTimeout time.Duration

	// Data Configuration
	DataDir      string // Directory holding the SQLite conversation log
	KnowledgeDir string // Directory holding the three knowledge JSON documents

	// R2 knowledge source (replaces KnowledgeDir when enabled)
	R2 R2Config

	// Generative fallback
	LLM LLMConfig

	// Rate limit for POST /ask, per client IP (token bucket)
	AskRateBurst  float64
	AskRateRefill float64 // tokens per second

	// Metrics Authentication
	MetricsUsername string
	MetricsPassword string // empty = no auth

	// Sentry
	SentryDSN         string
	SentryEnvironment string
	SentrySampleRate  float64

	// Better Stack
	BetterStackToken    string
	BetterStackEndpoint string
}

// R2Config holds the Cloudflare R2 settings used to fetch knowledge documents.
type R2Config struct {
	Enabled         bool
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	KnowledgePrefix string
}

// Endpoint returns the S3-compatible endpoint for the configured account.
func (r R2Config) Endpoint() string {
	return fmt.Sprintf("https://%s.r2.cloudflarestorage.com", r.AccountID)
}

// LLMConfig selects and configures the generative fallback provider.
type LLMConfig struct {
	Provider        string // gemini, groq or cerebras
	GeminiAPIKey    string
	GeminiModel     string
	GeminiBaseURL   string // optional override of the Gemini REST endpoint
	GroqAPIKey      string
	GroqModel       string
	CerebrasAPIKey  string
	CerebrasModel   string
	FallbackTimeout time.Duration // hard timeout for the single fallback attempt
}

// APIKey returns the key for the selected provider.
func (l LLMConfig) APIKey() string {
	switch l.Provider {
	case ProviderGroq:
		return l.GroqAPIKey
	case ProviderCerebras:
		return l.CerebrasAPIKey
	default:
		return l.GeminiAPIKey
	}
}

// Model returns the configured model for the selected provider (may be empty).
func (l LLMConfig) Model() string {
	switch l.Provider {
	case ProviderGroq:
		return l.GroqModel
	case ProviderCerebras:
		return l.CerebrasModel
	default:
		return l.GeminiModel
	}
}

// Load reads configuration from environment variables
// It attempts to load .env file first, then reads from env vars
func Load() (*Config, error) {
	// Try to load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv(EnvPort, "10000"),
		LogLevel:        getEnv(EnvLogLevel, "info"),
		ShutdownTimeout: getDurationEnv(EnvShutdownTimeout, GracefulShutdown),

		DataDir:      getEnv(EnvDataDir, "./data"),
		KnowledgeDir: getEnv(EnvKnowledgeDir, "./data/knowledge"),

		R2: R2Config{
			Enabled:         getBoolEnv(EnvR2Enabled, false),
			AccountID:       getEnv(EnvR2AccountID, ""),
			AccessKeyID:     getEnv(EnvR2AccessKeyID, ""),
			SecretAccessKey: getEnv(EnvR2SecretAccessKey, ""),
			BucketName:      getEnv(EnvR2BucketName, ""),
			KnowledgePrefix: getEnv(EnvR2KnowledgePrefix, "knowledge/"),
		},

		LLM: LLMConfig{
			Provider:        strings.ToLower(getEnv(EnvLLMProvider, ProviderGemini)),
			GeminiAPIKey:    getEnv(EnvGeminiAPIKey, ""),
			GeminiModel:     getEnv(EnvGeminiModel, ""),
			GeminiBaseURL:   getEnv(EnvGeminiBaseURL, ""),
			GroqAPIKey:      getEnv(EnvGroqAPIKey, ""),
			GroqModel:       getEnv(EnvGroqModel, ""),
			CerebrasAPIKey:  getEnv(EnvCerebrasAPIKey, ""),
			CerebrasModel:   getEnv(EnvCerebrasModel, ""),
			FallbackTimeout: getDurationEnv(EnvFallbackTimeout, FallbackRequest),
		},

		AskRateBurst:  getFloatEnv(EnvAskRateBurst, 20),
		AskRateRefill: getFloatEnv(EnvAskRateRefill, 0.5), // 1 question per 2s sustained

		MetricsUsername: getEnv(EnvMetricsUsername, "prometheus"),
		MetricsPassword: getEnv(EnvMetricsPassword, ""),

		SentryDSN:         getEnv(EnvSentryDSN, ""),
		SentryEnvironment: getEnv(EnvSentryEnvironment, "production"),
		SentrySampleRate:  getFloatEnv(EnvSentrySampleRate, 1.0),

		BetterStackToken:    getEnv(EnvBetterStackToken, ""),
		BetterStackEndpoint: getEnv(EnvBetterStackEndpoint, ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	var errs []error

	if c.Port == "" {
		errs = append(errs, errors.New(EnvPort+" is required"))
	}
	if c.DataDir == "" {
		errs = append(errs, errors.New(EnvDataDir+" is required"))
	}
	if !c.R2.Enabled && c.KnowledgeDir == "" {
		errs = append(errs, errors.New(EnvKnowledgeDir+" is required when R2 is disabled"))
	}
	if c.R2.Enabled {
		if c.R2.AccountID == "" || c.R2.AccessKeyID == "" || c.R2.SecretAccessKey == "" || c.R2.BucketName == "" {
			errs = append(errs, errors.New("R2 account, access key, secret and bucket are required when R2 is enabled"))
		}
	}
	switch c.LLM.Provider {
	case ProviderGemini, ProviderGroq, ProviderCerebras:
	default:
		errs = append(errs, fmt.Errorf("%s must be one of gemini, groq, cerebras, got %q", EnvLLMProvider, c.LLM.Provider))
	}
	if c.LLM.FallbackTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvFallbackTimeout, c.LLM.FallbackTimeout))
	} else if c.LLM.FallbackTimeout+TurnPersist >= HTTPWrite {
		errs = append(errs, fmt.Errorf("%s must be below %v so the answer is written before the %v HTTP write timeout, got %v",
			EnvFallbackTimeout, HTTPWrite-TurnPersist, HTTPWrite, c.LLM.FallbackTimeout))
	}
	if c.AskRateBurst < 1 {
		errs = append(errs, fmt.Errorf("%s must be at least 1, got %v", EnvAskRateBurst, c.AskRateBurst))
	}
	if c.AskRateRefill <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvAskRateRefill, c.AskRateRefill))
	}
	if c.SentrySampleRate < 0 || c.SentrySampleRate > 1 {
		errs = append(errs, fmt.Errorf("%s must be within [0, 1], got %v", EnvSentrySampleRate, c.SentrySampleRate))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvShutdownTimeout, c.ShutdownTimeout))
	}

	return errors.Join(errs...)
}

// SQLitePath returns the full path to the SQLite database file
func (c *Config) SQLitePath() string {
	return filepath.Join(c.DataDir, "askuenr.db")
}

// HasLLMProvider returns true if the selected fallback provider has an API key.
func (c *Config) HasLLMProvider() bool {
	return c.LLM.APIKey() != ""
}

// getEnv retrieves environment variable with fallback to default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getBoolEnv retrieves boolean environment variable with fallback to default value
func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getDurationEnv retrieves duration environment variable with fallback to default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getFloatEnv retrieves float64 environment variable with fallback to default value
func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
