// Package postgres stores slots in the article_slots table created by the
// goose migrations under migrations/articles.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Tecnic226/Codis-Nous-TM/pkg/database"
)

// Backend keeps one row per slot in article_slots.
type Backend struct {
	db *database.Database
}

// New returns a Backend on the shared pool. The pool is owned by the caller.
func New(db *database.Database) *Backend {
	return &Backend{db: db}
}

func (b *Backend) Read(ctx context.Context, slot string) ([]byte, error) {
	var payload []byte
	err := b.db.DB().QueryRowContext(ctx,
		`SELECT payload FROM article_slots WHERE slot = $1`, slot,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query slot: %w", err)
	}
	return payload, nil
}

// Write upserts the slot inside a transaction.
func (b *Backend) Write(ctx context.Context, slot string, payload []byte) error {
	return b.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO article_slots (slot, payload, updated_at) VALUES ($1, $2, now())
			 ON CONFLICT (slot) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`,
			slot, payload,
		); err != nil {
			return fmt.Errorf("upsert slot %s: %w", slot, err)
		}
		return nil
	})
}

func (b *Backend) Ping(ctx context.Context) error {
	return b.db.Ping(ctx)
}
