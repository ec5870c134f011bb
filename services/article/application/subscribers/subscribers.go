// Package subscribers consumes article lifecycle events: it keeps the Redis
// read cache warm and optionally starts the describe workflow for new articles.
//
// Handlers are idempotent. EventBus retries a failing handler up to 3 times.
package subscribers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/Tecnic226/Codis-Nous-TM/pkg/app"
	pkgcache "github.com/Tecnic226/Codis-Nous-TM/pkg/cache"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/logger"
	appsvcs "github.com/Tecnic226/Codis-Nous-TM/services/article/application/services"
	"github.com/Tecnic226/Codis-Nous-TM/services/article/application/workflows"
	articledomain "github.com/Tecnic226/Codis-Nous-TM/services/article/domain"
	domainevents "github.com/Tecnic226/Codis-Nous-TM/services/article/domain/events"
	"github.com/Tecnic226/Codis-Nous-TM/services/article/domain/repositories"
)

// Bus is the subscribing half of events.EventBus.
type Bus interface {
	Subscribe(ctx context.Context, topic string, handler func(context.Context, *message.Message) error) (<-chan error, error)
}

// Cache is the write side of the article read cache.
type Cache interface {
	Set(ctx context.Context, a *pkgcache.CachedArticle) error
	Delete(ctx context.Context, id string) error
}

// DescribeStarter kicks off enrichment for a freshly created article.
type DescribeStarter func(ctx context.Context, articleID string) error

// Handlers holds the dependencies of the article event handlers.
// Cache and Describe are optional.
type Handlers struct {
	Articles repositories.ArticleRepository
	Cache    Cache
	Describe DescribeStarter
	Log      logger.Logger
}

// New builds Handlers from the application container. The cache is wired when
// Redis is connected and CACHE_ENABLED is set; the describe starter when a
// Temporal client exists and AUTO_DESCRIBE is set.
func New(a *app.Application, svcs *appsvcs.Services) *Handlers {
	h := &Handlers{Articles: svcs.Articles, Log: a.Logger}
	if a.Redis != nil && a.Config.CacheEnabled {
		h.Cache = pkgcache.NewArticleCache(a.Redis)
	}
	if a.TemporalClient != nil && a.Config.AutoDescribe {
		tc, cfg := a.TemporalClient, a.Config
		h.Describe = func(ctx context.Context, articleID string) error {
			_, err := workflows.StartDescribeArticle(ctx, tc.Client, cfg.TemporalTaskQueue, articleID, cfg.EnrichmentTimeout)
			return err
		}
	}
	return h
}

// Register subscribes every article handler on bus and returns the topics.
func Register(ctx context.Context, bus Bus, h *Handlers) ([]string, error) {
	routes := []struct {
		topic   string
		handler func(context.Context, *message.Message) error
	}{
		{domainevents.TopicArticleCreated, h.HandleArticleCreated},
		{domainevents.TopicArticleUpdated, h.HandleArticleUpdated},
		{domainevents.TopicArticleDeleted, h.HandleArticleDeleted},
		{domainevents.TopicArticleImported, h.HandleArticlesImported},
	}

	topics := make([]string, 0, len(routes))
	for _, rt := range routes {
		errCh, err := bus.Subscribe(ctx, rt.topic, rt.handler)
		if err != nil {
			return nil, fmt.Errorf("subscribe %s: %w", rt.topic, err)
		}
		topic := rt.topic
		// Drain subscriber errors in background so the channel never blocks.
		go func() {
			for err := range errCh {
				h.Log.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}()
		topics = append(topics, rt.topic)
	}
	return topics, nil
}

// HandleArticleCreated warms the cache and starts enrichment when enabled.
func (h *Handlers) HandleArticleCreated(ctx context.Context, msg *message.Message) error {
	evt, err := decodeArticleEvent(msg)
	if err != nil {
		return err
	}
	h.warm(ctx, evt.ArticleID)

	if h.Describe == nil {
		return nil
	}
	if err := h.Describe(ctx, evt.ArticleID); err != nil {
		return fmt.Errorf("start describe for %s: %w", evt.ArticleID, err)
	}
	h.Log.InfoContext(ctx, "describe workflow started", "article_id", evt.ArticleID)
	return nil
}

// HandleArticleUpdated refreshes the cached copy.
func (h *Handlers) HandleArticleUpdated(ctx context.Context, msg *message.Message) error {
	evt, err := decodeArticleEvent(msg)
	if err != nil {
		return err
	}
	h.warm(ctx, evt.ArticleID)
	return nil
}

// HandleArticleDeleted evicts the cached copy.
func (h *Handlers) HandleArticleDeleted(ctx context.Context, msg *message.Message) error {
	evt, err := decodeArticleEvent(msg)
	if err != nil {
		return err
	}
	if h.Cache == nil {
		return nil
	}
	if err := h.Cache.Delete(ctx, evt.ArticleID); err != nil {
		h.Log.WarnContext(ctx, "cache evict failed for article.deleted", "article_id", evt.ArticleID, "error", err)
	}
	return nil
}

// HandleArticlesImported logs bulk imports. Imported ids were already evicted
// by the service; they are cached again on first read.
func (h *Handlers) HandleArticlesImported(ctx context.Context, msg *message.Message) error {
	var evt domainevents.ArticlesImportedEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		return fmt.Errorf("decode article.imported: %w", err)
	}
	h.Log.InfoContext(ctx, "articles imported", "count", evt.Count, "event_id", evt.EventID)
	return nil
}

// warm copies the stored article into the cache. The event payload is not
// cached directly: a later write may already have replaced it.
// Cache warming is best-effort; failures are logged, never returned.
func (h *Handlers) warm(ctx context.Context, articleID string) {
	if h.Cache == nil {
		return
	}
	a, err := h.Articles.GetByID(ctx, articleID)
	if errors.Is(err, articledomain.ErrArticleNotFound) {
		_ = h.Cache.Delete(ctx, articleID)
		return
	}
	if err != nil {
		h.Log.WarnContext(ctx, "cache warm skipped, article read failed", "article_id", articleID, "error", err)
		return
	}
	if err := h.Cache.Set(ctx, appsvcs.ToCached(a)); err != nil {
		h.Log.WarnContext(ctx, "cache warm failed", "article_id", articleID, "error", err)
		return
	}
	h.Log.DebugContext(ctx, "cache warmed", "article_id", articleID)
}

func decodeArticleEvent(msg *message.Message) (domainevents.ArticleEvent, error) {
	var evt domainevents.ArticleEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		return evt, fmt.Errorf("decode article event: %w", err)
	}
	if evt.ArticleID == "" {
		return evt, fmt.Errorf("decode article event: missing article_id")
	}
	return evt, nil
}
