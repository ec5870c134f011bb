package app

import (
	"github.com/Tecnic226/Codis-Nous-TM/pkg/cache"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/config"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/database"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/events"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/logger"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/storage"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/workflows"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to all service route and subscriber registrations during initialization.
//
// Logging: app.Logger is backed by a trace-aware handler; use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "article created", "article_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
//
// Db, Redis and TemporalClient are nil when the configuration does not need them.
type Application struct {
	Config         *config.Config
	Storage        storage.Backend
	Db             *database.Database
	Logger         logger.Logger
	EventBus       *events.EventBus
	Redis          *cache.RedisClient
	TemporalClient *workflows.TemporalClient
}
