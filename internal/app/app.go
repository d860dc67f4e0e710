// Package app provides application initialization and lifecycle management.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/garyellow/askuenr-go/internal/ask"
	"github.com/garyellow/askuenr-go/internal/buildinfo"
	"github.com/garyellow/askuenr-go/internal/config"
	"github.com/garyellow/askuenr-go/internal/genai"
	"github.com/garyellow/askuenr-go/internal/knowledge"
	"github.com/garyellow/askuenr-go/internal/logger"
	"github.com/garyellow/askuenr-go/internal/metrics"
	"github.com/garyellow/askuenr-go/internal/r2client"
	"github.com/garyellow/askuenr-go/internal/ratelimit"
	"github.com/garyellow/askuenr-go/internal/sentry"
	"github.com/garyellow/askuenr-go/internal/storage"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// asker runs the question pipeline for one request.
type asker interface {
	Ask(ctx context.Context, req ask.Request) (*ask.Response, error)
}

// Application manages the application lifecycle and dependencies.
type Application struct {
	cfg           *config.Config
	logger        *logger.Logger
	db            *storage.DB
	metrics       *metrics.Metrics
	registry      *prometheus.Registry
	knowledge     *knowledge.Store
	fallback      *genai.Fallback
	asker         asker
	askLimiter    *ratelimit.PerKeyLimiter
	sentryEnabled bool
	router        *gin.Engine
	server        *http.Server
	wg            sync.WaitGroup // background goroutines
}

// Initialize creates and initializes a new application with all dependencies.
func Initialize(ctx context.Context, cfg *config.Config) (*Application, error) {
	log := logger.NewWithOptions(cfg.LogLevel, os.Stdout, logger.Options{
		BetterStackToken:    cfg.BetterStackToken,
		BetterStackEndpoint: cfg.BetterStackEndpoint,
	})

	log = log.WithField("service", "askuenr-go")
	if host, err := os.Hostname(); err == nil && host != "" {
		log = log.WithField("instance_id", host)
	}

	// Package-level slog.*Context() calls pick up request and session ids.
	slog.SetDefault(log.Logger)

	log.Info("Initializing application...")
	if cfg.BetterStackToken != "" {
		log.WithField("endpoint", cfg.BetterStackEndpoint).Info("Better Stack logging enabled")
	}

	sentryEnabled, err := sentry.Initialize(sentry.Config{
		DSN:         cfg.SentryDSN,
		Environment: cfg.SentryEnvironment,
		Release:     buildinfo.Version,
		SampleRate:  cfg.SentrySampleRate,
	})
	if err != nil {
		log.WithError(err).Warn("Sentry initialization failed, error reporting disabled")
	} else if sentryEnabled {
		log.WithField("environment", cfg.SentryEnvironment).Info("Sentry error reporting enabled")
	}

	gin.SetMode(gin.ReleaseMode)

	app, err := newApplication(ctx, cfg, log, sentryEnabled)
	if err != nil {
		return nil, err
	}

	log.Info("Initialization complete")
	return app, nil
}

// newApplication wires every component behind the HTTP server.
func newApplication(ctx context.Context, cfg *config.Config, log *logger.Logger, sentryEnabled bool) (*Application, error) {
	db, err := storage.New(ctx, cfg.SQLitePath())
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	log.WithField("path", cfg.SQLitePath()).Info("Database connected")

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewBuildInfoCollector(),
	)
	m := metrics.New(registry)

	source, err := newKnowledgeSource(ctx, cfg)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("knowledge source: %w", err)
	}
	store := knowledge.NewStore(source, log, m)

	var gen genai.Generator
	if cfg.HasLLMProvider() {
		gen, err = genai.NewGenerator(ctx, cfg.LLM)
		if err != nil {
			log.WithError(err).Warn("Fallback generator initialization failed")
		}
	}
	fallback := genai.NewFallback(gen, cfg.LLM.FallbackTimeout, log, m)
	if fallback.Enabled() {
		log.WithField("provider", fallback.Provider().String()).Info("Generative fallback enabled")
	} else {
		log.Warn("No LLM API key configured, unanswered questions get the apology text")
	}

	askLimiter := ratelimit.NewPerKeyLimiter(ratelimit.PerKeyConfig{
		MaxTokens:     cfg.AskRateBurst,
		RefillRate:    cfg.AskRateRefill,
		CleanupPeriod: config.RateLimiterCleanupInterval,
		LimiterType:   "client",
	}, m)

	app := &Application{
		cfg:       cfg,
		logger:    log,
		db:        db,
		metrics:   m,
		registry:  registry,
		knowledge: store,
		fallback:  fallback,
		asker: ask.NewService(ask.ServiceConfig{
			Knowledge: store,
			Fallback:  fallback,
			Turns:     db,
			Logger:    log,
			Metrics:   m,
		}),
		askLimiter:    askLimiter,
		sentryEnabled: sentryEnabled,
	}
	app.router = app.newRouter()
	app.server = &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           app.router,
		ReadHeaderTimeout: config.HTTPRead,
		ReadTimeout:       config.HTTPRead,
		WriteTimeout:      config.HTTPWrite,
		IdleTimeout:       config.HTTPIdle,
	}
	return app, nil
}

// newKnowledgeSource returns the R2 bucket when enabled, otherwise the local directory.
func newKnowledgeSource(ctx context.Context, cfg *config.Config) (knowledge.Source, error) {
	if !cfg.R2.Enabled {
		return knowledge.NewDirSource(cfg.KnowledgeDir), nil
	}
	client, err := r2client.New(ctx, r2client.Config{
		Endpoint:    cfg.R2.Endpoint(),
		AccessKeyID: cfg.R2.AccessKeyID,
		SecretKey:   cfg.R2.SecretAccessKey,
		BucketName:  cfg.R2.BucketName,
	})
	if err != nil {
		return nil, err
	}
	return knowledge.NewR2Source(client, cfg.R2.KnowledgePrefix), nil
}

func (a *Application) newRouter() *gin.Engine {
	useJSONFieldNames()

	router := gin.New()
	if a.sentryEnabled {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(gin.Recovery())
	router.Use(securityHeadersMiddleware())
	router.Use(loggingMiddleware(a.logger))

	router.GET("/", a.serviceInfo)
	router.GET("/livez", a.livenessCheck)
	router.HEAD("/livez", a.livenessCheck)
	router.GET("/readyz", a.readinessCheck)
	router.HEAD("/readyz", a.readinessCheck)

	askChain := []gin.HandlerFunc{rateLimitMiddleware(a.askLimiter), a.handleAsk}
	router.POST("/ask", askChain...)
	router.POST("/ask/uenr/", askChain...)

	router.GET("/metrics",
		metricsAuthMiddleware(a.cfg.MetricsPassword != "", a.cfg.MetricsUsername, a.cfg.MetricsPassword),
		gin.WrapH(promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{})))

	return router
}

// Run starts the HTTP server and blocks until SIGINT/SIGTERM, then shuts down.
func (a *Application) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.startBackgroundJobs(ctx)
	a.startHTTPServer()

	sig := a.waitForShutdownSignal()
	a.logger.WithField("signal", sig.String()).Info("Received shutdown signal")

	cancel()
	a.wg.Wait()

	return a.shutdown()
}

func (a *Application) startBackgroundJobs(ctx context.Context) {
	a.wg.Go(func() {
		a.preloadKnowledge(ctx)
	})
}

// preloadKnowledge loads the documents at startup so the first question does not pay for it.
func (a *Application) preloadKnowledge(ctx context.Context) {
	start := time.Now()
	counts := a.knowledge.Get(ctx).Counts()
	a.logger.WithField("documents", counts).
		WithField("duration_ms", time.Since(start).Milliseconds()).
		Info("Knowledge documents loaded")
}

func (a *Application) startHTTPServer() {
	go func() {
		a.logger.WithField("port", a.cfg.Port).Info("Starting HTTP server")
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.WithError(err).Error("HTTP server error")
		}
	}()
}

func (a *Application) waitForShutdownSignal() os.Signal {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	return <-quit
}

// shutdown stops accepting requests, waits for in-flight ones, then releases resources.
func (a *Application) shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	a.logger.Info("Stopping HTTP server...")
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.WithError(err).Error("HTTP server shutdown error")
	}

	a.logger.Info("Closing resources...")
	a.closeResources()

	if a.sentryEnabled && !sentry.Flush(2*time.Second) {
		a.logger.Warn("Sentry flush timed out")
	}
	if err := a.logger.Shutdown(shutdownCtx); err != nil {
		a.logger.WithError(err).Warn("Remote log shipping incomplete")
	}

	a.logger.Info("Shutdown complete")
	return nil
}

func (a *Application) closeResources() {
	if err := a.fallback.Close(); err != nil {
		a.logger.WithError(err).WithField("component", "fallback").Error("Component close error")
	}
	if err := a.db.Close(); err != nil {
		a.logger.WithError(err).WithField("component", "database").Error("Component close error")
	}
	a.askLimiter.Stop()
}
