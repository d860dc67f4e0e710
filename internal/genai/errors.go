package genai

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/openai/openai-go/v3"
	"google.golang.org/genai"
)

// Error kinds reported in logs and metrics. The fallback never retries, so
// the kind only explains why an answer was unavailable.
const (
	KindTimeout    = "timeout"
	KindCanceled   = "canceled"
	KindRateLimit  = "rate_limit"
	KindQuota      = "quota"
	KindAuth       = "auth"
	KindServer     = "server"
	KindBadRequest = "bad_request"
	KindNetwork    = "network"
	KindUnknown    = "unknown"
)

// ClassifyError maps a generator error to one of the Kind constants.
func ClassifyError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.Canceled) {
		return KindCanceled
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}

	if code := statusCode(err); code > 0 {
		return classifyStatusCode(code, err)
	}

	errStr := strings.ToLower(err.Error())
	switch {
	case containsAny(errStr, "quota", "daily limit", "monthly limit", "billing"):
		return KindQuota
	case containsAny(errStr, "rate limit", "too many requests", "resource_exhausted"):
		return KindRateLimit
	case containsAny(errStr, "timeout", "deadline"):
		return KindTimeout
	case containsAny(errStr, "connection refused", "connection reset", "no such host", "eof"):
		return KindNetwork
	case containsAny(errStr, "unauthorized", "unauthenticated", "invalid api key", "permission denied"):
		return KindAuth
	}
	return KindUnknown
}

// statusCode extracts the HTTP status from SDK error types.
func statusCode(err error) int {
	var geminiErr genai.APIError
	if errors.As(err, &geminiErr) {
		return geminiErr.Code
	}
	var openaiErr *openai.Error
	if errors.As(err, &openaiErr) && openaiErr != nil {
		return openaiErr.StatusCode
	}
	return 0
}

func classifyStatusCode(code int, err error) string {
	switch {
	case code == http.StatusTooManyRequests:
		if strings.Contains(strings.ToLower(err.Error()), "quota") {
			return KindQuota
		}
		return KindRateLimit
	case code == http.StatusRequestTimeout || code == http.StatusGatewayTimeout:
		return KindTimeout
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return KindAuth
	case code >= 500:
		return KindServer
	case code >= 400:
		return KindBadRequest
	default:
		return KindUnknown
	}
}

// containsAny checks if s contains any of the substrings.
func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
