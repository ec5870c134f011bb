package services

import (
	"context"
	"fmt"

	"github.com/Tecnic226/Codis-Nous-TM/pkg/app"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/cache"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/telemetry"
	"github.com/Tecnic226/Codis-Nous-TM/services/article/domain/repositories"
	"github.com/Tecnic226/Codis-Nous-TM/services/article/infrastructure/enrichment"
	"github.com/Tecnic226/Codis-Nous-TM/services/article/infrastructure/persistence/slot"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Article  *ArticleService
	Articles repositories.ArticleRepository
}

// New wires all article application services with infrastructure from the Application container.
func New(ctx context.Context, a *app.Application) (*Services, error) {
	repo := slot.NewArticleRepository(a.Storage, a.Config.StorageSlot, a.Logger,
		slot.WithCorruptionHook(telemetry.ReportError),
	)

	describer, err := enrichment.New(ctx, a.Config, a.Logger)
	if err != nil {
		return nil, fmt.Errorf("setup describer: %w", err)
	}

	metrics, err := telemetry.NewArticleMetrics()
	if err != nil {
		return nil, fmt.Errorf("setup article metrics: %w", err)
	}

	opts := []Option{
		WithMetrics(metrics),
		WithPlaceholderCodes(a.Config.AllowPlaceholderCode),
	}
	if a.EventBus != nil {
		opts = append(opts, WithPublisher(a.EventBus))
	}
	if a.Redis != nil && a.Config.CacheEnabled {
		opts = append(opts, WithCache(cache.NewArticleCache(a.Redis)))
	}

	return &Services{
		Article:  NewArticleService(repo, describer, a.Logger, opts...),
		Articles: repo,
	}, nil
}
