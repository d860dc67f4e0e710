// Package config defines environment variable keys for configuration.
package config

//nolint:gosec,revive // Environment variable keys are not credentials and do not need per-const comments.
const (
	// Server
	EnvPort            = "ASKUENR_PORT"
	EnvLogLevel        = "ASKUENR_LOG_LEVEL"
	EnvShutdownTimeout = "ASKUENR_SHUTDOWN_TIMEOUT"

	// Data
	EnvDataDir      = "ASKUENR_DATA_DIR"
	EnvKnowledgeDir = "ASKUENR_KNOWLEDGE_DIR"

	// Knowledge documents from R2 (optional, replaces the local directory)
	EnvR2Enabled         = "ASKUENR_R2_ENABLED"
	EnvR2AccountID       = "ASKUENR_R2_ACCOUNT_ID"
	EnvR2AccessKeyID     = "ASKUENR_R2_ACCESS_KEY_ID"
	EnvR2SecretAccessKey = "ASKUENR_R2_SECRET_ACCESS_KEY"
	EnvR2BucketName      = "ASKUENR_R2_BUCKET_NAME"
	EnvR2KnowledgePrefix = "ASKUENR_R2_KNOWLEDGE_PREFIX"

	// Generative fallback
	EnvLLMProvider     = "ASKUENR_LLM_PROVIDER"
	EnvGeminiAPIKey    = "ASKUENR_GEMINI_API_KEY"
	EnvGeminiModel     = "ASKUENR_GEMINI_MODEL"
	EnvGeminiBaseURL   = "ASKUENR_GEMINI_BASE_URL"
	EnvGroqAPIKey      = "ASKUENR_GROQ_API_KEY"
	EnvGroqModel       = "ASKUENR_GROQ_MODEL"
	EnvCerebrasAPIKey  = "ASKUENR_CEREBRAS_API_KEY"
	EnvCerebrasModel   = "ASKUENR_CEREBRAS_MODEL"
	EnvFallbackTimeout = "ASKUENR_FALLBACK_TIMEOUT"

	// Rate limits
	EnvAskRateBurst  = "ASKUENR_ASK_RATE_BURST"
	EnvAskRateRefill = "ASKUENR_ASK_RATE_REFILL"

	// Metrics
	EnvMetricsUsername = "ASKUENR_METRICS_USERNAME"
	EnvMetricsPassword = "ASKUENR_METRICS_PASSWORD"

	// Sentry
	EnvSentryDSN         = "ASKUENR_SENTRY_DSN"
	EnvSentryEnvironment = "ASKUENR_SENTRY_ENVIRONMENT"
	EnvSentrySampleRate  = "ASKUENR_SENTRY_SAMPLE_RATE"

	// Better Stack
	EnvBetterStackToken    = "ASKUENR_BETTERSTACK_TOKEN"
	EnvBetterStackEndpoint = "ASKUENR_BETTERSTACK_ENDPOINT"
)
