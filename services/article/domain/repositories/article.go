package repositories

import (
	"context"

	"github.com/Tecnic226/Codis-Nous-TM/services/article/domain/models"
)

// ArticleRepository is the persistence contract for the Article collection.
// The domain layer owns this interface; infrastructure implements it.
//
// Implementations hold the whole collection in one slot and rewrite it on every
// mutation. Returned articles are copies; mutating them has no effect on storage.
type ArticleRepository interface {
	// ListAll returns every article, newest first. A corrupt slot reads as empty.
	ListAll(ctx context.Context) ([]*models.Article, error)

	// GetByID returns ErrArticleNotFound when id is absent.
	GetByID(ctx context.Context, id string) (*models.Article, error)

	// Create assigns a fresh id and creation time, persists and returns the article.
	Create(ctx context.Context, fields models.ArticleFields) (*models.Article, error)

	// UpdateByID applies patch and stamps UpdatedAt. Returns ErrArticleNotFound
	// and leaves the collection untouched when id is absent.
	UpdateByID(ctx context.Context, id string, patch models.ArticlePatch) (*models.Article, error)

	// DeleteByID removes the article. Absent ids are a no-op; the bool reports
	// whether something was removed.
	DeleteByID(ctx context.Context, id string) (bool, error)

	// Prepend puts records in front of the collection without deduplication.
	Prepend(ctx context.Context, records []*models.Article) error
}
