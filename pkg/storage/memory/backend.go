// Package memory is an in-process storage backend. Contents are lost on exit.
package memory

import (
	"context"
	"slices"
	"sync"
)

// Backend keeps slots in a map. Safe for concurrent use.
type Backend struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// New returns an empty Backend.
func New() *Backend {
	return &Backend{slots: make(map[string][]byte)}
}

func (b *Backend) Read(_ context.Context, slot string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	p, ok := b.slots[slot]
	if !ok {
		return nil, nil
	}
	return slices.Clone(p), nil
}

func (b *Backend) Write(_ context.Context, slot string, payload []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.slots[slot] = slices.Clone(payload)
	return nil
}

func (b *Backend) Ping(context.Context) error { return nil }
