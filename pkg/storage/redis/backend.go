// Package redis stores each slot as a plain Redis string under "slot:<name>".
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Tecnic226/Codis-Nous-TM/pkg/cache"
)

const keyPrefix = "slot:"

// Backend persists slots without TTL. Redis persistence (AOF/RDB) must be
// enabled on the server for data to survive restarts.
type Backend struct {
	client *cache.RedisClient
}

// New returns a Backend on the shared Redis client. The client is owned by the caller.
func New(client *cache.RedisClient) *Backend {
	return &Backend{client: client}
}

func (b *Backend) Read(ctx context.Context, slot string) ([]byte, error) {
	data, err := b.client.Client().Get(ctx, keyPrefix+slot).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get slot: %w", err)
	}
	return data, nil
}

func (b *Backend) Write(ctx context.Context, slot string, payload []byte) error {
	if err := b.client.Client().Set(ctx, keyPrefix+slot, payload, 0).Err(); err != nil {
		return fmt.Errorf("redis set slot: %w", err)
	}
	return nil
}

func (b *Backend) Ping(ctx context.Context) error {
	return b.client.Ping(ctx)
}
