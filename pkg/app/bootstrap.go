package app

import (
	"context"
	"fmt"

	"github.com/Tecnic226/Codis-Nous-TM/migrations/articles"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/cache"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/config"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/database"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/events"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/logger"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/migrator"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/storage"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/workflows"
)

// Open connects every dependency cfg asks for and returns the container plus a
// cleanup func that releases them in reverse order.
//
//   - Postgres is dialed when STORAGE_DRIVER or EVENTS_DRIVER is postgres;
//     the slot table is migrated when storage lives there.
//   - Redis is dialed when STORAGE_DRIVER is redis or CACHE_ENABLED is set.
//   - Temporal is dialed when TEMPORAL_ENABLED is set.
func Open(ctx context.Context, cfg *config.Config, log logger.Logger) (*Application, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
	fail := func(err error) (*Application, func(), error) {
		cleanup()
		return nil, nil, err
	}

	a := &Application{Config: cfg, Logger: log}

	if cfg.StorageDriver == config.StoragePostgres || cfg.EventsDriver == config.EventsPostgres {
		pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
		if err != nil {
			return fail(fmt.Errorf("connect to database: %w", err))
		}
		closers = append(closers, func() { _ = pool.Close() })
		a.Db = pool
		log.Info("database pool connected")

		if cfg.StorageDriver == config.StoragePostgres {
			if err := migrator.RunMigrations(cfg.DatabaseURL, articles.FS); err != nil {
				return fail(fmt.Errorf("migrate slot table: %w", err))
			}
		}
	}

	if cfg.StorageDriver == config.StorageRedis || cfg.CacheEnabled {
		rc, err := cache.NewRedisClient(cfg)
		if err != nil {
			return fail(fmt.Errorf("connect to redis: %w", err))
		}
		closers = append(closers, func() { _ = rc.Close() })
		a.Redis = rc
		log.Info("redis connected")
	}

	backend, closeBackend, err := storage.Open(ctx, cfg, storage.Deps{DB: a.Db, Redis: a.Redis})
	if err != nil {
		return fail(err)
	}
	closers = append(closers, func() { _ = closeBackend() })
	a.Storage = backend
	log.Info("storage opened", "driver", cfg.StorageDriver, "slot", cfg.StorageSlot)

	bus, err := events.NewEventBus(cfg, log)
	if err != nil {
		return fail(fmt.Errorf("setup event bus: %w", err))
	}
	closers = append(closers, func() { _ = bus.Close() })
	a.EventBus = bus

	if cfg.TemporalEnabled {
		tc, err := workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, log)
		if err != nil {
			return fail(fmt.Errorf("connect to temporal: %w", err))
		}
		closers = append(closers, tc.Close)
		a.TemporalClient = tc
	}

	return a, cleanup, nil
}
