// Package slot implements repositories.ArticleRepository over a single storage
// slot holding the whole article collection as a JSON array.
//
// Every mutation is a full read-modify-write of the slot. Mutations are
// serialized within the process; concurrent writers in other processes
// sharing the same backend can overwrite each other (last write wins).
package slot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Tecnic226/Codis-Nous-TM/pkg/logger"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/storage"
	articledomain "github.com/Tecnic226/Codis-Nous-TM/services/article/domain"
	"github.com/Tecnic226/Codis-Nous-TM/services/article/domain/models"
)

// Option configures an ArticleRepository.
type Option func(*ArticleRepository)

// WithClock overrides the time source used for createdAt and updatedAt.
func WithClock(now func() time.Time) Option {
	return func(r *ArticleRepository) { r.now = now }
}

// WithIDGenerator overrides the id source used by Create and Prepend.
func WithIDGenerator(newID func() string) Option {
	return func(r *ArticleRepository) { r.newID = newID }
}

// WithCorruptionHook registers fn to be called whenever the slot payload
// cannot be parsed. The error wraps ErrStorageCorrupt.
func WithCorruptionHook(fn func(context.Context, error)) Option {
	return func(r *ArticleRepository) { r.onCorrupt = fn }
}

// ArticleRepository implements repositories.ArticleRepository.
type ArticleRepository struct {
	backend   storage.Backend
	slot      string
	log       logger.Logger
	mu        sync.Mutex
	now       func() time.Time
	newID     func() string
	onCorrupt func(context.Context, error)
}

// NewArticleRepository returns a repository reading and writing slotName on backend.
func NewArticleRepository(backend storage.Backend, slotName string, log logger.Logger, opts ...Option) *ArticleRepository {
	r := &ArticleRepository{
		backend: backend,
		slot:    slotName,
		log:     log,
		now:     time.Now,
		newID:   func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ListAll returns copies of every article in stored order (newest first).
func (r *ArticleRepository) ListAll(ctx context.Context) ([]*models.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return cloneAll(records), nil
}

func (r *ArticleRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	if i := indexOf(records, id); i >= 0 {
		return records[i].Clone(), nil
	}
	return nil, articledomain.ErrArticleNotFound
}

// Create prepends a new article so listings stay newest first.
func (r *ArticleRepository) Create(ctx context.Context, fields models.ArticleFields) (*models.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	article := models.NewArticle(r.newID(), fields, r.now())
	records = append([]*models.Article{article}, records...)
	if err := r.save(ctx, records); err != nil {
		return nil, err
	}
	return article.Clone(), nil
}

func (r *ArticleRepository) UpdateByID(ctx context.Context, id string, patch models.ArticlePatch) (*models.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(records, id)
	if i < 0 {
		return nil, articledomain.ErrArticleNotFound
	}

	records[i].Apply(patch, r.now())
	if err := r.save(ctx, records); err != nil {
		return nil, err
	}
	return records[i].Clone(), nil
}

// DeleteByID writes only when something was removed.
func (r *ArticleRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	i := indexOf(records, id)
	if i < 0 {
		return false, nil
	}

	records = slices.Delete(records, i, i+1)
	if err := r.save(ctx, records); err != nil {
		return false, err
	}
	return true, nil
}

// Prepend puts records in front of the collection as given. Duplicate ids and
// natural keys are kept. Records without an id get a fresh one.
func (r *ArticleRepository) Prepend(ctx context.Context, incoming []*models.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return err
	}

	merged := make([]*models.Article, 0, len(incoming)+len(records))
	for _, a := range incoming {
		if a == nil {
			continue
		}
		c := a.Clone()
		if c.ID == "" {
			c.ID = r.newID()
		}
		if c.Orders == nil {
			c.Orders = []string{}
		}
		merged = append(merged, c)
	}
	merged = append(merged, records...)
	return r.save(ctx, merged)
}

// load reads and decodes the slot. A missing or empty slot is an empty
// collection; an unparseable one is reported and also read as empty.
func (r *ArticleRepository) load(ctx context.Context) ([]*models.Article, error) {
	payload, err := r.backend.Read(ctx, r.slot)
	if err != nil {
		return nil, fmt.Errorf("read slot %s: %w", r.slot, err)
	}
	if len(bytes.TrimSpace(payload)) == 0 {
		return []*models.Article{}, nil
	}

	var decoded []*models.Article
	if err := json.Unmarshal(payload, &decoded); err != nil {
		corrupt := fmt.Errorf("%w: slot %s: %w", articledomain.ErrStorageCorrupt, r.slot, err)
		r.log.WarnContext(ctx, "article slot unreadable, serving empty collection",
			"slot", r.slot, "bytes", len(payload), "error", err)
		if r.onCorrupt != nil {
			r.onCorrupt(ctx, corrupt)
		}
		return []*models.Article{}, nil
	}

	records := make([]*models.Article, 0, len(decoded))
	for _, a := range decoded {
		if a == nil {
			continue
		}
		if a.Orders == nil {
			a.Orders = []string{}
		}
		records = append(records, a)
	}
	return records, nil
}

func (r *ArticleRepository) save(ctx context.Context, records []*models.Article) error {
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode slot %s: %w", r.slot, err)
	}
	if err := r.backend.Write(ctx, r.slot, payload); err != nil {
		return fmt.Errorf("write slot %s: %w", r.slot, err)
	}
	return nil
}

func indexOf(records []*models.Article, id string) int {
	return slices.IndexFunc(records, func(a *models.Article) bool { return a.ID == id })
}

func cloneAll(records []*models.Article) []*models.Article {
	out := make([]*models.Article, len(records))
	for i, a := range records {
		out[i] = a.Clone()
	}
	return out
}
