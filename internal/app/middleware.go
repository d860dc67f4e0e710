package app

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/garyellow/askuenr-go/internal/ctxutil"
	domerrors "github.com/garyellow/askuenr-go/internal/errors"
	"github.com/garyellow/askuenr-go/internal/logger"
	"github.com/garyellow/askuenr-go/internal/ratelimit"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestIDHeaders are checked in order for an upstream request id.
var requestIDHeaders = []string{"X-Request-Id", "X-Correlation-Id"}

// securityHeadersMiddleware adds security headers to responses.
func securityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Content-Security-Policy", "default-src 'none'")
		c.Header("X-Permitted-Cross-Domain-Policies", "none")
		c.Next()
	}
}

// loggingMiddleware tags the request context with a request id and the
// client IP, then logs the outcome: 5xx=Error, 4xx=Warn, 404 and 2xx=Debug.
func loggingMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		var requestID string
		for _, h := range requestIDHeaders {
			if requestID = c.GetHeader(h); requestID != "" {
				break
			}
		}
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header("X-Request-Id", requestID)

		ctx := ctxutil.WithRequestID(c.Request.Context(), requestID)
		ctx = ctxutil.WithClientIP(ctx, c.ClientIP())
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		status := c.Writer.Status()
		entry := log.WithField("http_method", method).
			WithField("http_path", path).
			WithField("http_status", status).
			WithField("duration_ms", time.Since(start).Milliseconds())
		if last := c.Errors.Last(); last != nil {
			entry = entry.WithError(last.Err)
		}

		switch {
		case status >= 500:
			entry.ErrorContext(ctx, "HTTP request failed")
		case status == http.StatusNotFound:
			entry.DebugContext(ctx, "HTTP request not found")
		case status >= 400:
			entry.WarnContext(ctx, "HTTP request rejected")
		default:
			entry.DebugContext(ctx, "HTTP request completed")
		}
	}
}

// rateLimitMiddleware spends one token per request from the client IP's bucket.
func rateLimitMiddleware(limiter *ratelimit.PerKeyLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if limiter.Allow(ip) {
			c.Next()
			return
		}

		_ = c.Error(domerrors.ErrRateLimitExceeded)
		retryAfter := max(1, int(math.Ceil(limiter.RetryAfter(ip).Seconds())))
		c.Header("Retry-After", strconv.Itoa(retryAfter))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
	}
}
