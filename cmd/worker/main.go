package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Tecnic226/Codis-Nous-TM/pkg/app"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/config"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/logger"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/telemetry"
	appsvcs "github.com/Tecnic226/Codis-Nous-TM/services/article/application/services"
	"github.com/Tecnic226/Codis-Nous-TM/services/article/application/subscribers"
	articleWorkflows "github.com/Tecnic226/Codis-Nous-TM/services/article/application/workflows"
)

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

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	if cfg.EventsDriver == config.EventsChannel {
		log.Warn("EVENTS_DRIVER=channel delivers in-process only; this worker will not see API events")
	}

	appConfig, cleanup, err := app.Open(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialize dependencies", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer cleanup()

	svcs, err := appsvcs.New(ctx, appConfig)
	if err != nil {
		log.Error("failed to initialize article services", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	subCtx, cancelSubs := context.WithCancel(ctx)
	defer cancelSubs()
	topics, err := subscribers.Register(subCtx, appConfig.EventBus, subscribers.New(appConfig, svcs))
	if err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	log.Info("event subscribers registered", "topics", topics)

	if appConfig.TemporalClient != nil {
		w := appConfig.TemporalClient.NewWorker(cfg.TemporalTaskQueue)
		articleWorkflows.Register(w, &articleWorkflows.Activities{Service: svcs.Article})
		if err := w.Start(); err != nil {
			log.Error("failed to start temporal worker", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer w.Stop()
		log.Info("temporal worker started", "task_queue", cfg.TemporalTaskQueue)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	cancelSubs()

	// EventBus.Close() (via cleanup) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}
