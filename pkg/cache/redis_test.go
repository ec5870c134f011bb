package cache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Tecnic226/Codis-Nous-TM/pkg/config"
)

// newTestConfig returns a config pointing to REDIS_URL env var, falling back to localhost.
func newTestConfig(url string) *config.Config {
	return &config.Config{
		RedisURL:    url,
		ServiceName: "codis-nous-tm-test",
	}
}

func TestApplyPoolSettings(t *testing.T) {
	opts, err := redis.ParseURL("redis://localhost:6379/2")
	if err != nil {
		t.Fatalf("ParseURL: %v", err)
	}
	applyPoolSettings(opts)
	if opts.PoolSize != 10 || opts.MinIdleConns != 2 || opts.MaxRetries != 3 {
		t.Fatalf("unexpected pool settings: size=%d idle=%d retries=%d", opts.PoolSize, opts.MinIdleConns, opts.MaxRetries)
	}
	if opts.DB != 2 {
		t.Fatalf("pool settings must not touch the selected DB, got %d", opts.DB)
	}
}

func TestNewRedisClient_InvalidURL(t *testing.T) {
	_, err := NewRedisClient(newTestConfig("not-a-valid-url"))
	if err == nil {
		t.Fatal("expected error for invalid URL, got nil")
	}
}

func TestNewRedisClient_UnreachableHost(t *testing.T) {
	_, err := NewRedisClient(newTestConfig("redis://localhost:19999"))
	if err == nil {
		t.Fatal("expected error when Redis is unreachable, got nil")
	}
}

// Integration tests: skipped unless REDIS_URL is set.
func TestRedisIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}

	t.Run("NewRedisClient_Success", func(t *testing.T) {
		rc, err := NewRedisClient(newTestConfig(redisURL))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer rc.Close() //nolint:errcheck
	})

	t.Run("Ping_Success", func(t *testing.T) {
		rc, err := NewRedisClient(newTestConfig(redisURL))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer rc.Close() //nolint:errcheck

		if err := rc.Ping(context.Background()); err != nil {
			t.Fatalf("Ping failed: %v", err)
		}
	})

	t.Run("Close_Idempotent", func(t *testing.T) {
		rc, err := NewRedisClient(newTestConfig(redisURL))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := rc.Close(); err != nil {
			t.Fatalf("first Close failed: %v", err)
		}
	})

	t.Run("Client_NotNil", func(t *testing.T) {
		rc, err := NewRedisClient(newTestConfig(redisURL))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer rc.Close() //nolint:errcheck

		if rc.Client() == nil {
			t.Fatal("expected non-nil underlying client")
		}
	})
}

func TestArticleCacheIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}

	rc, err := NewRedisClient(newTestConfig(redisURL))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close() //nolint:errcheck

	ctx := context.Background()
	c := NewArticleCache(rc)
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	in := &CachedArticle{
		ID:                  "cache-test-1",
		ClientID:            "001",
		ClientName:          "BUCHER",
		ClientReferenceCode: "ABC-1",
		InternalCode:        "001-0001",
		Orders:              []string{"OF-1", "OF-2"},
		CreatedAt:           created,
	}
	defer c.Delete(ctx, in.ID) //nolint:errcheck

	t.Run("Miss", func(t *testing.T) {
		if _, err := c.Get(ctx, "cache-test-missing"); !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil, got %v", err)
		}
	})

	t.Run("SetGet", func(t *testing.T) {
		if err := c.Set(ctx, in); err != nil {
			t.Fatalf("Set: %v", err)
		}
		got, err := c.Get(ctx, in.ID)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got.InternalCode != in.InternalCode || len(got.Orders) != 2 || !got.CreatedAt.Equal(created) || got.UpdatedAt != nil {
			t.Fatalf("unexpected cached article: %+v", got)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := c.Delete(ctx, in.ID); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, err := c.Get(ctx, in.ID); !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil after delete, got %v", err)
		}
	})
}
