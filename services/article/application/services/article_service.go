package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	pkgcache "github.com/Tecnic226/Codis-Nous-TM/pkg/cache"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/logger"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/telemetry"
	articledomain "github.com/Tecnic226/Codis-Nous-TM/services/article/domain"
	domainevents "github.com/Tecnic226/Codis-Nous-TM/services/article/domain/events"
	"github.com/Tecnic226/Codis-Nous-TM/services/article/domain/models"
	"github.com/Tecnic226/Codis-Nous-TM/services/article/domain/repositories"
	domainsvcs "github.com/Tecnic226/Codis-Nous-TM/services/article/domain/services"
	"github.com/Tecnic226/Codis-Nous-TM/services/article/infrastructure/enrichment"
)

// Outcome reports what Submit did.
type Outcome string

const (
	OutcomeCreated        Outcome = "created"
	OutcomeOrdersAppended Outcome = "orders_appended"
	OutcomeEdited         Outcome = "edited"
	OutcomeUnchanged      Outcome = "unchanged"
)

const exportFilenameLayout = "backup_codis_nous_2006-01-02.json"

// SubmitInput is one form submission. EditingID selects the explicit edit path.
type SubmitInput struct {
	ClientID            string
	ClientName          string // optional; overrides the registry name
	ClientReferenceCode string
	InternalCode        string
	Order               string // OF code, optional
	EditingID           string
}

// SubmitResult is the stored article and how it got there.
type SubmitResult struct {
	Article *models.Article
	Outcome Outcome
}

// EventPublisher is the slice of events.EventBus the service needs.
type EventPublisher interface {
	PublishJSON(ctx context.Context, topic string, payload any) error
}

// Option configures an ArticleService.
type Option func(*ArticleService)

// WithCache enables the Redis read-through cache for Get.
func WithCache(c *pkgcache.ArticleCache) Option {
	return func(s *ArticleService) { s.cache = c }
}

// WithPublisher publishes article lifecycle events after each successful write.
func WithPublisher(p EventPublisher) Option {
	return func(s *ArticleService) { s.publisher = p }
}

// WithMetrics records article counters.
func WithMetrics(m *telemetry.ArticleMetrics) Option {
	return func(s *ArticleService) { s.metrics = m }
}

// WithPlaceholderCodes lets new articles without an internal code fall back to "{clientId}-NEW".
func WithPlaceholderCodes(allow bool) Option {
	return func(s *ArticleService) { s.allowPlaceholder = allow }
}

// WithSeedClients replaces the built-in client table.
func WithSeedClients(seed map[string]string) Option {
	return func(s *ArticleService) { s.seed = seed }
}

// WithClock overrides the time source for event timestamps and export names.
func WithClock(now func() time.Time) Option {
	return func(s *ArticleService) { s.now = now }
}

// ArticleService orchestrates the article workflows on top of the repository.
// Reads are served from Redis when a cache is configured.
//
// mu serializes every write with the read it depends on, so resolve, merge
// and persist see one consistent collection. Cache warms hold it for reading
// so an invalidation cannot land between the read and the cache write.
type ArticleService struct {
	mu               sync.RWMutex
	repo             repositories.ArticleRepository
	describer        enrichment.Describer
	log              logger.Logger
	cache            *pkgcache.ArticleCache
	publisher        EventPublisher
	metrics          *telemetry.ArticleMetrics
	seed             map[string]string
	allowPlaceholder bool
	now              func() time.Time
}

// NewArticleService returns an ArticleService. A nil describer disables descriptions.
func NewArticleService(repo repositories.ArticleRepository, describer enrichment.Describer, log logger.Logger, opts ...Option) *ArticleService {
	if describer == nil {
		describer = enrichment.Unavailable{}
	}
	s := &ArticleService{
		repo:      repo,
		describer: describer,
		log:       log,
		seed:      models.SeedClients,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit runs the form flow: explicit edit when EditingID is set, otherwise
// resolve the candidate and either append the order to the match or create.
func (s *ArticleService) Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error) {
	candidate := domainsvcs.Candidate{
		ClientID:            strings.TrimSpace(in.ClientID),
		ClientReferenceCode: in.ClientReferenceCode,
	}
	if err := domainsvcs.ValidateCandidate(candidate); err != nil {
		return nil, fmt.Errorf("%w: %w", articledomain.ErrInvalidArticle, err)
	}
	if err := domainsvcs.ValidateCode("order", models.NormalizeCode(in.Order)); err != nil {
		return nil, fmt.Errorf("%w: %w", articledomain.ErrInvalidArticle, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	if id := strings.TrimSpace(in.EditingID); id != "" {
		return s.edit(ctx, id, candidate, in, records)
	}

	if match := domainsvcs.Resolve(records, candidate, domainsvcs.ModeCreate); match != nil {
		return s.appendOrder(ctx, match, in.Order)
	}
	return s.create(ctx, candidate, in, records)
}

func (s *ArticleService) appendOrder(ctx context.Context, match *models.Article, order string) (*SubmitResult, error) {
	merged := models.MergeOrders(match.Orders, order)
	if len(merged) == len(match.Orders) {
		return &SubmitResult{Article: match, Outcome: OutcomeUnchanged}, nil
	}

	updated, err := s.repo.UpdateByID(ctx, match.ID, models.ArticlePatch{Orders: merged})
	if err != nil {
		return nil, fmt.Errorf("append order: %w", err)
	}
	s.invalidate(ctx, updated.ID)
	s.metrics.OrderAppended(ctx, updated.ClientID)
	s.publish(ctx, domainevents.TopicArticleUpdated, domainevents.NewArticleEvent(updated, s.now()))
	s.log.InfoContext(ctx, "order appended to article",
		"article_id", updated.ID, "order", models.NormalizeCode(order), "orders", len(updated.Orders))
	return &SubmitResult{Article: updated, Outcome: OutcomeOrdersAppended}, nil
}

func (s *ArticleService) create(ctx context.Context, c domainsvcs.Candidate, in SubmitInput, records []*models.Article) (*SubmitResult, error) {
	code, err := s.internalCodeForCreate(c.ClientID, in.InternalCode)
	if err != nil {
		return nil, err
	}

	fields := models.ArticleFields{
		ClientID:            c.ClientID,
		ClientName:          s.clientName(c.ClientID, in.ClientName, records),
		ClientReferenceCode: c.ClientReferenceCode,
		InternalCode:        code,
		Orders:              models.MergeOrders(nil, in.Order),
	}
	if err := domainsvcs.ValidateArticleForSave(models.NewArticle("", fields, s.now())); err != nil {
		return nil, fmt.Errorf("%w: %w", articledomain.ErrInvalidArticle, err)
	}

	created, err := s.repo.Create(ctx, fields)
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	s.metrics.Created(ctx, created.ClientID)
	s.publish(ctx, domainevents.TopicArticleCreated, domainevents.NewArticleEvent(created, s.now()))
	s.log.InfoContext(ctx, "article created",
		"article_id", created.ID, "client_id", created.ClientID, "internal_code", created.InternalCode)
	return &SubmitResult{Article: created, Outcome: OutcomeCreated}, nil
}

func (s *ArticleService) internalCodeForCreate(clientID, raw string) (string, error) {
	code := models.NormalizeCode(raw)
	if code != "" {
		return code, nil
	}
	if !s.allowPlaceholder {
		return "", articledomain.ErrInternalCodeRequired
	}
	return domainsvcs.PlaceholderInternalCode(clientID), nil
}

// edit replaces every field with the normalized input and merges the order
// into the existing list. Resolution is suppressed on this path.
func (s *ArticleService) edit(ctx context.Context, id string, c domainsvcs.Candidate, in SubmitInput, records []*models.Article) (*SubmitResult, error) {
	var existing *models.Article
	for _, a := range records {
		if a.ID == id {
			existing = a
			break
		}
	}
	if existing == nil {
		return nil, articledomain.ErrArticleNotFound
	}

	code := models.NormalizeCode(in.InternalCode)
	if code == "" {
		return nil, articledomain.ErrInternalCodeRequired
	}
	name := s.clientName(c.ClientID, in.ClientName, records)
	ref := models.NormalizeCode(c.ClientReferenceCode)
	merged := models.MergeOrders(existing.Orders, in.Order)

	probe := existing.Clone()
	probe.ClientID, probe.ClientReferenceCode, probe.InternalCode, probe.Orders = c.ClientID, ref, code, merged
	if err := domainsvcs.ValidateArticleForSave(probe); err != nil {
		return nil, fmt.Errorf("%w: %w", articledomain.ErrInvalidArticle, err)
	}

	updated, err := s.repo.UpdateByID(ctx, id, models.ArticlePatch{
		ClientID:            &c.ClientID,
		ClientName:          &name,
		ClientReferenceCode: &ref,
		InternalCode:        &code,
		Orders:              merged,
	})
	if err != nil {
		return nil, fmt.Errorf("edit article: %w", err)
	}
	s.invalidate(ctx, updated.ID)
	s.metrics.Edited(ctx)
	s.publish(ctx, domainevents.TopicArticleUpdated, domainevents.NewArticleEvent(updated, s.now()))
	s.log.InfoContext(ctx, "article edited", "article_id", updated.ID)
	return &SubmitResult{Article: updated, Outcome: OutcomeEdited}, nil
}

// clientName picks the explicit name, then the registry name, then the id itself.
func (s *ArticleService) clientName(clientID, explicit string, records []*models.Article) string {
	if name := strings.TrimSpace(explicit); name != "" {
		return name
	}
	if name := domainsvcs.ClientName(domainsvcs.ResolveClients(s.seed, records), clientID); name != "" {
		return name
	}
	return clientID
}

// Resolve previews which article a candidate would hit. Returns nil for no match
// and always nil while editing.
func (s *ArticleService) Resolve(ctx context.Context, clientID, ref string, editing bool) (*models.Article, error) {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	mode := domainsvcs.ModeCreate
	if editing {
		mode = domainsvcs.ModeEdit
	}
	return domainsvcs.Resolve(records, domainsvcs.Candidate{
		ClientID:            strings.TrimSpace(clientID),
		ClientReferenceCode: ref,
	}, mode), nil
}

// Get retrieves an article using a read-through cache:
//  1. Check Redis first.
//  2. On miss (or cache error), read the slot.
//  3. Warm the cache before any later write can invalidate it.
func (s *ArticleService) Get(ctx context.Context, id string) (*models.Article, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err == nil {
			return fromCached(cached), nil
		}
		if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "article cache read failed", "article_id", id, "error", err)
		}
	}

	if s.cache == nil {
		a, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get article: %w", err)
		}
		return a, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if err := s.cache.Set(ctx, ToCached(a)); err != nil {
		s.log.WarnContext(ctx, "article cache warm failed", "article_id", id, "error", err)
	}
	return a, nil
}

// List returns every article matching term, newest first. A blank term lists all.
func (s *ArticleService) List(ctx context.Context, term string) ([]*models.Article, error) {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return domainsvcs.Filter(records, term), nil
}

// Delete removes an article. Deleting an absent id succeeds.
func (s *ArticleService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if !removed {
		return nil
	}
	s.invalidate(ctx, id)
	s.metrics.Deleted(ctx)
	s.publish(ctx, domainevents.TopicArticleDeleted, domainevents.ArticleEvent{
		EventID:    uuid.New(),
		Version:    1,
		ArticleID:  id,
		OccurredAt: s.now().UTC(),
	})
	s.log.InfoContext(ctx, "article deleted", "article_id", id)
	return nil
}

// Clients returns the seed table plus record-derived clients, numerically sorted.
func (s *ArticleService) Clients(ctx context.Context) ([]models.Client, error) {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return domainsvcs.ResolveClients(s.seed, records), nil
}

// SuggestCode proposes the next internal code for clientID.
func (s *ArticleService) SuggestCode(ctx context.Context, clientID string) (string, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return "", fmt.Errorf("%w: client id must be set", articledomain.ErrInvalidArticle)
	}
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return "", fmt.Errorf("list articles: %w", err)
	}
	return domainsvcs.SuggestInternalCode(records, clientID), nil
}

func (s *ArticleService) Stats(ctx context.Context) (domainsvcs.Stats, error) {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return domainsvcs.Stats{}, fmt.Errorf("list articles: %w", err)
	}
	return domainsvcs.ComputeStats(records, domainsvcs.ResolveClients(s.seed, records)), nil
}

// Import prepends the articles in payload, a JSON array, to the collection.
// Nothing is deduplicated. Anything but an array leaves the data untouched.
func (s *ArticleService) Import(ctx context.Context, payload []byte) (int, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return 0, articledomain.ErrImportMalformed
	}
	var incoming []*models.Article
	if err := json.Unmarshal(trimmed, &incoming); err != nil {
		return 0, fmt.Errorf("%w: %w", articledomain.ErrImportMalformed, err)
	}

	records := make([]*models.Article, 0, len(incoming))
	for _, a := range incoming {
		if a != nil {
			records = append(records, a)
		}
	}
	if len(records) == 0 {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.Prepend(ctx, records); err != nil {
		return 0, fmt.Errorf("import articles: %w", err)
	}
	for _, a := range records {
		if a.ID != "" {
			s.invalidate(ctx, a.ID)
		}
	}
	s.metrics.Imported(ctx, len(records))
	s.publish(ctx, domainevents.TopicArticleImported, domainevents.ArticlesImportedEvent{
		EventID:    uuid.New(),
		Version:    1,
		Count:      len(records),
		OccurredAt: s.now().UTC(),
	})
	s.log.InfoContext(ctx, "articles imported", "count", len(records))
	return len(records), nil
}

// Export returns the whole collection as indented JSON and a dated file name.
func (s *ArticleService) Export(ctx context.Context) ([]byte, string, error) {
	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("list articles: %w", err)
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("encode export: %w", err)
	}
	return data, s.now().Format(exportFilenameLayout), nil
}

// GenerateDescription asks the describer about an article without storing the result.
func (s *ArticleService) GenerateDescription(ctx context.Context, id string) (string, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get article: %w", err)
	}
	text := s.describer.Describe(ctx, a.ClientReferenceCode, a.ClientName)
	s.metrics.Described(ctx, describeResult(text))
	return text, nil
}

// SaveDescription stores text as the article's aiDescription.
func (s *ArticleService) SaveDescription(ctx context.Context, id, text string) (*models.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := s.repo.UpdateByID(ctx, id, models.ArticlePatch{AIDescription: &text})
	if err != nil {
		return nil, fmt.Errorf("save description: %w", err)
	}
	s.invalidate(ctx, id)
	s.publish(ctx, domainevents.TopicArticleUpdated, domainevents.NewArticleEvent(updated, s.now()))
	return updated, nil
}

// Describe generates and stores a description. Describer failures are stored
// as their fixed fallback text rather than returned.
func (s *ArticleService) Describe(ctx context.Context, id string) (*models.Article, error) {
	text, err := s.GenerateDescription(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.SaveDescription(ctx, id, text)
}

func describeResult(text string) string {
	switch text {
	case enrichment.DescriptionUnavailable:
		return "unavailable"
	case enrichment.DescriptionFailed:
		return "failed"
	case enrichment.DescriptionEmpty:
		return "empty"
	default:
		return "ok"
	}
}

func (s *ArticleService) publish(ctx context.Context, topic string, payload any) {
	if s.publisher == nil {
		return
	}
	// The slot is already written; a lost event only delays cache warming.
	if err := s.publisher.PublishJSON(ctx, topic, payload); err != nil {
		s.log.WarnContext(ctx, "publish article event failed", "topic", topic, "error", err)
	}
}

func (s *ArticleService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		s.log.WarnContext(ctx, "article cache invalidation failed", "article_id", id, "error", err)
	}
}

// ToCached converts an article into its cache read model.
func ToCached(a *models.Article) *pkgcache.CachedArticle {
	return &pkgcache.CachedArticle{
		ID:                  a.ID,
		ClientID:            a.ClientID,
		ClientName:          a.ClientName,
		ClientReferenceCode: a.ClientReferenceCode,
		InternalCode:        a.InternalCode,
		Orders:              a.Orders,
		AIDescription:       a.AIDescription,
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}
}

func fromCached(c *pkgcache.CachedArticle) *models.Article {
	return &models.Article{
		ID:                  c.ID,
		ClientID:            c.ClientID,
		ClientName:          c.ClientName,
		ClientReferenceCode: c.ClientReferenceCode,
		InternalCode:        c.InternalCode,
		Orders:              c.Orders,
		AIDescription:       c.AIDescription,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}
