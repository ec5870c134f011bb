package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/Tecnic226/Codis-Nous-TM/docs/swagger"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/app"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/config"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/errhttp"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/httpx"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/logger"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/telemetry"
	articleApi "github.com/Tecnic226/Codis-Nous-TM/services/article/application/api"
	appsvcs "github.com/Tecnic226/Codis-Nous-TM/services/article/application/services"
	"github.com/Tecnic226/Codis-Nous-TM/services/article/application/subscribers"
)

// @title					Codis Nous TM API
// @version				1.0
// @description			Tracks client part references, their internal codes and manufacturing orders.
// @license.name			MIT
// @license.url			https://opensource.org/licenses/MIT
// @host					localhost:8080
// @BasePath				/api
// @schemes				http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting: Sentry (optional; log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	appConfig, cleanup, err := app.Open(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialize dependencies", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}
	defer cleanup()

	errhttp.HideInternalErrors(cfg.Environment == config.EnvProduction)

	svcs, err := appsvcs.New(ctx, appConfig)
	if err != nil {
		log.Error("failed to initialize article services", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	// The channel transport only delivers in-process, so the API consumes its own events.
	subCtx, cancelSubs := context.WithCancel(ctx)
	defer cancelSubs()
	if cfg.EventsDriver == config.EventsChannel {
		topics, err := subscribers.Register(subCtx, appConfig.EventBus, subscribers.New(appConfig, svcs))
		if err != nil {
			log.Error("failed to register subscribers", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		log.Info("event subscribers registered", "topics", topics)
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
			MaxBodyBytes:       cfg.HTTPMaxBodyBytes,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(healthChecks(appConfig)))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(r chi.Router) {
		registerRoutes(r, svcs)
	})

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment, "storage", cfg.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// healthChecks probes storage and the event bus always, and Postgres and Redis
// only when they were dialed.
func healthChecks(a *app.Application) httpx.HealthChecks {
	checks := httpx.HealthChecks{
		Storage:  a.Storage,
		EventBus: a.EventBus,
	}
	if a.Db != nil {
		checks.Database = a.Db
	}
	if a.Redis != nil {
		checks.Redis = a.Redis
	}
	return checks
}

// registerRoutes mounts all service routes under /api.
// Add each new service's route function here.
func registerRoutes(r chi.Router, svcs *appsvcs.Services) {
	articleApi.ArticleRoutes(r, svcs)
}
