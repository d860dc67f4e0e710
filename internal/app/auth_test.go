package app

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func basicAuth(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

func newAuthRouter(enabled bool) *gin.Engine {
	router := gin.New()
	router.GET("/metrics", metricsAuthMiddleware(enabled, "prometheus", "secret123"), func(c *gin.Context) {
		c.String(http.StatusOK, "metrics")
	})
	return router
}

func TestMetricsAuthMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		enabled    bool
		header     string
		wantStatus int
	}{
		{"disabled without header", false, "", http.StatusOK},
		{"disabled ignores bad credentials", false, basicAuth("x", "y"), http.StatusOK},
		{"valid credentials", true, basicAuth("prometheus", "secret123"), http.StatusOK},
		{"missing header", true, "", http.StatusUnauthorized},
		{"wrong username", true, basicAuth("grafana", "secret123"), http.StatusUnauthorized},
		{"wrong password", true, basicAuth("prometheus", "secret"), http.StatusUnauthorized},
		{"empty password", true, basicAuth("prometheus", ""), http.StatusUnauthorized},
		{"bare scheme", true, "Basic", http.StatusUnauthorized},
		{"invalid base64", true, "Basic %%%", http.StatusUnauthorized},
		{"bearer token", true, "Bearer secret123", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			router := newAuthRouter(tt.enabled)

			req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, `Basic realm="metrics"`, w.Header().Get("WWW-Authenticate"))
			} else {
				assert.Equal(t, "metrics", w.Body.String())
			}
		})
	}
}
