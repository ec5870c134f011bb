package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// ArticleCacheTTL is the time-to-live for cached articles.
	ArticleCacheTTL = 24 * time.Hour

	articleCacheKeyPrefix = "article"
)

// CachedArticle is the denormalized read model stored in Redis as a hash.
type CachedArticle struct {
	ID                  string     `json:"id"`
	ClientID            string     `json:"client_id"`
	ClientName          string     `json:"client_name"`
	ClientReferenceCode string     `json:"client_reference_code"`
	InternalCode        string     `json:"internal_code"`
	Orders              []string   `json:"orders"`
	AIDescription       string     `json:"ai_description"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           *time.Time `json:"updated_at"`
}

// ArticleCache provides structured read/write operations for article cache entries.
// Key format: "article:{articleID}"
type ArticleCache struct {
	client *RedisClient
}

// NewArticleCache creates a new ArticleCache backed by the given RedisClient.
func NewArticleCache(r *RedisClient) *ArticleCache {
	return &ArticleCache{client: r}
}

// Get retrieves a cached article by ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *ArticleCache) Get(ctx context.Context, id string) (*CachedArticle, error) {
	vals, err := c.client.Client().HGetAll(ctx, c.key(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	createdAt, err := time.Parse(time.RFC3339Nano, vals["created_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse created_at: %w", err)
	}
	var updatedAt *time.Time
	if raw := vals["updated_at"]; raw != "" {
		ts, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return nil, fmt.Errorf("cache parse updated_at: %w", err)
		}
		updatedAt = &ts
	}
	orders := []string{}
	if raw := vals["orders"]; raw != "" {
		if err := json.Unmarshal([]byte(raw), &orders); err != nil {
			return nil, fmt.Errorf("cache parse orders: %w", err)
		}
	}

	return &CachedArticle{
		ID:                  vals["id"],
		ClientID:            vals["client_id"],
		ClientName:          vals["client_name"],
		ClientReferenceCode: vals["client_reference_code"],
		InternalCode:        vals["internal_code"],
		Orders:              orders,
		AIDescription:       vals["ai_description"],
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}, nil
}

// Set writes a cached article as a Redis hash with a 24-hour TTL.
// Uses a pipeline so the fields and the TTL are applied together.
func (c *ArticleCache) Set(ctx context.Context, a *CachedArticle) error {
	orders, err := json.Marshal(a.Orders)
	if err != nil {
		return fmt.Errorf("cache encode orders: %w", err)
	}
	updatedAt := ""
	if a.UpdatedAt != nil {
		updatedAt = a.UpdatedAt.UTC().Format(time.RFC3339Nano)
	}

	key := c.key(a.ID)
	pipe := c.client.Client().Pipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key,
		"id", a.ID,
		"client_id", a.ClientID,
		"client_name", a.ClientName,
		"client_reference_code", a.ClientReferenceCode,
		"internal_code", a.InternalCode,
		"orders", string(orders),
		"ai_description", a.AIDescription,
		"created_at", a.CreatedAt.UTC().Format(time.RFC3339Nano),
		"updated_at", updatedAt,
	)
	pipe.Expire(ctx, key, ArticleCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached article.
func (c *ArticleCache) Delete(ctx context.Context, id string) error {
	if err := c.client.Client().Del(ctx, c.key(id)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "article:{articleID}"
func (c *ArticleCache) key(id string) string {
	return fmt.Sprintf("%s:%s", articleCacheKeyPrefix, id)
}
