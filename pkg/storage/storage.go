// Package storage provides single-slot byte storage drivers. A slot is a named
// value rewritten as a whole on every save; there is no partial update, no
// locking across processes and no version token.
package storage

import "context"

// Backend reads and writes whole slots.
type Backend interface {
	// Read returns the slot payload, or (nil, nil) when the slot was never written.
	Read(ctx context.Context, slot string) ([]byte, error)
	// Write replaces the slot payload.
	Write(ctx context.Context, slot string, payload []byte) error
	// Ping checks the backend is reachable.
	Ping(ctx context.Context) error
}
