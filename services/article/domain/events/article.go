package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/Tecnic226/Codis-Nous-TM/services/article/domain/models"
)

// Watermill topics published by the article service.
const (
	TopicArticleCreated  = "article.created"
	TopicArticleUpdated  = "article.updated"
	TopicArticleDeleted  = "article.deleted"
	TopicArticleImported = "article.imported"
)

// ArticleEvent is published after an article is created, updated or deleted.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicArticleCreated, ...).
type ArticleEvent struct {
	EventID             uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version             int       `json:"version"`  // Schema version; increment on breaking changes
	ArticleID           string    `json:"article_id"`
	ClientID            string    `json:"client_id"`
	ClientName          string    `json:"client_name"`
	ClientReferenceCode string    `json:"client_reference_code"`
	InternalCode        string    `json:"internal_code"`
	Orders              []string  `json:"orders"`
	OccurredAt          time.Time `json:"occurred_at"`
}

// ArticlesImportedEvent is published after a bulk import prepends records.
type ArticlesImportedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	Count      int       `json:"count"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewArticleEvent snapshots a for publishing.
func NewArticleEvent(a *models.Article, occurredAt time.Time) ArticleEvent {
	orders := make([]string, len(a.Orders))
	copy(orders, a.Orders)
	return ArticleEvent{
		EventID:             uuid.New(),
		Version:             1,
		ArticleID:           a.ID,
		ClientID:            a.ClientID,
		ClientName:          a.ClientName,
		ClientReferenceCode: a.ClientReferenceCode,
		InternalCode:        a.InternalCode,
		Orders:              orders,
		OccurredAt:          occurredAt.UTC(),
	}
}
