package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/Tecnic226/Codis-Nous-TM/pkg/database"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/logger"
)

// Integration tests: skipped unless DATABASE_URL is set and migrations ran.
func TestPostgresBackendIntegration(t *testing.T) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set; skipping integration tests")
	}

	ctx := context.Background()
	db, err := database.NewPool(ctx, url, logger.NewNop())
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	defer db.Close() //nolint:errcheck

	b := New(db)
	slot := "test_slot_" + t.Name()

	t.Run("Write_Read", func(t *testing.T) {
		if err := b.Write(ctx, slot, []byte(`[{"id":"1"}]`)); err != nil {
			t.Fatalf("Write: %v", err)
		}
		got, err := b.Read(ctx, slot)
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
		if string(got) != `[{"id":"1"}]` {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("Read_Missing", func(t *testing.T) {
		got, err := b.Read(ctx, slot+"_missing")
		if err != nil || got != nil {
			t.Fatalf("expected (nil, nil), got (%q, %v)", got, err)
		}
	})
}
