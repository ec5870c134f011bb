package storage

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/Tecnic226/Codis-Nous-TM/pkg/cache"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/config"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/database"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/storage/file"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/storage/memory"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/storage/postgres"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/storage/redis"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/storage/s3"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/storage/sqlite"
)

// Deps carries shared connections some drivers reuse. Connections are owned
// by the caller and are not closed by the returned close func.
type Deps struct {
	DB    *database.Database
	Redis *cache.RedisClient
}

// Open builds the Backend selected by cfg.StorageDriver. The returned func
// releases resources the backend opened itself.
func Open(ctx context.Context, cfg *config.Config, deps Deps) (Backend, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StorageDriver {
	case config.StorageMemory:
		return memory.New(), noop, nil
	case config.StorageFile, "":
		b, err := file.New(cfg.StoragePath)
		if err != nil {
			return nil, nil, fmt.Errorf("storage: file: %w", err)
		}
		return b, noop, nil
	case config.StorageSQLite:
		b, err := sqlite.New(filepath.Join(cfg.StoragePath, "codis.db"))
		if err != nil {
			return nil, nil, fmt.Errorf("storage: sqlite: %w", err)
		}
		return b, b.Close, nil
	case config.StoragePostgres:
		if deps.DB == nil {
			return nil, nil, fmt.Errorf("storage: postgres driver needs a database connection")
		}
		return postgres.New(deps.DB), noop, nil
	case config.StorageRedis:
		if deps.Redis == nil {
			return nil, nil, fmt.Errorf("storage: redis driver needs a redis client")
		}
		return redis.New(deps.Redis), noop, nil
	case config.StorageS3:
		b, err := s3.New(ctx, s3.Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			PathStyle: cfg.S3PathStyle,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("storage: s3: %w", err)
		}
		return b, noop, nil
	default:
		return nil, nil, fmt.Errorf("storage: unknown driver %q", cfg.StorageDriver)
	}
}
