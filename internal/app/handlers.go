package app

import (
	"context"
	"net/http"
	"strings"

	"github.com/garyellow/askuenr-go/internal/ask"
	"github.com/garyellow/askuenr-go/internal/buildinfo"
	"github.com/garyellow/askuenr-go/internal/config"
	domerrors "github.com/garyellow/askuenr-go/internal/errors"
	"github.com/garyellow/askuenr-go/internal/sentry"
	"github.com/gin-gonic/gin"
)

// askFailedMessage is the only detail a caller sees when the pipeline fails.
const askFailedMessage = "Something went wrong while processing your request."

// askRequest is the POST /ask body. Lengths are checked after trimming.
type askRequest struct {
	Question  string `json:"question" binding:"required"`
	SessionID string `json:"session_id"`
}

func (a *Application) handleAsk(c *gin.Context) {
	ctx := c.Request.Context()

	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		a.rejectRequest(c, validationFields(err))
		return
	}
	question := strings.TrimSpace(req.Question)
	sessionID := strings.TrimSpace(req.SessionID)
	if verr := checkTrimmed(question, sessionID); verr != nil {
		a.rejectRequest(c, verr)
		return
	}

	resp, err := a.asker.Ask(ctx, ask.Request{
		Question:  question,
		SessionID: sessionID,
	})
	if err != nil {
		module, operation, ok := domerrors.Location(err)
		if !ok {
			module, operation = "ask", "unknown"
		}
		a.logger.WithError(err).
			WithField("module", module).
			WithField("operation", operation).
			ErrorContext(ctx, "Ask request failed")
		sentry.CaptureError(ctx, err, map[string]string{"module": module, "operation": operation})
		a.metrics.RecordHTTPError("internal", module)
		c.JSON(http.StatusInternalServerError, gin.H{"error": askFailedMessage})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (a *Application) rejectRequest(c *gin.Context, verr *domerrors.ValidationError) {
	a.metrics.RecordHTTPError("validation", "ask")
	a.logger.WithField("fields", verr.Fields).DebugContext(c.Request.Context(), "Ask request rejected")
	c.JSON(http.StatusBadRequest, gin.H{
		"error":  "invalid request",
		"fields": verr.Fields,
	})
}

func (a *Application) serviceInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "askuenr-go",
		"version": buildinfo.VersionOrDev(),
		"commit":  buildinfo.Commit,
		"endpoints": []string{
			"POST /ask",
			"GET /livez",
			"GET /readyz",
			"GET /metrics",
		},
	})
}

func (a *Application) livenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}

func (a *Application) getFeatures() map[string]any {
	return map[string]any{
		"fallback":          a.fallback.Enabled(),
		"fallback_provider": a.fallback.Provider().String(),
		"r2_knowledge":      a.cfg.R2.Enabled,
		"error_reporting":   a.sentryEnabled,
	}
}

func (a *Application) readinessCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), config.ReadinessCheckTimeout)
	defer cancel()

	if err := a.db.Ready(ctx); err != nil {
		a.logger.WithError(err).Warn("Readiness check failed: database unavailable")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"reason": "database unavailable",
		})
		return
	}

	body := gin.H{
		"status":    "ready",
		"database":  "connected",
		"knowledge": a.knowledge.Get(ctx).Counts(),
		"features":  a.getFeatures(),
	}
	if count, err := a.db.CountTurns(ctx); err == nil {
		body["conversations"] = count
	} else {
		a.logger.WithError(err).Warn("Failed to count conversation turns")
	}

	c.JSON(http.StatusOK, body)
}
