package sqlite

import (
	"context"
	"path/filepath"
	"testing"
)

func TestBackend_RoundTripAndReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "codis.db")

	b, err := New(path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, err := b.Read(ctx, "articles")
	if err != nil || got != nil {
		t.Fatalf("expected (nil, nil) for unwritten slot, got (%q, %v)", got, err)
	}

	if err := b.Write(ctx, "articles", []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := b.Write(ctx, "articles", []byte(`[{"id":"2"}]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := New(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close() //nolint:errcheck

	got, err = reopened.Read(ctx, "articles")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != `[{"id":"2"}]` {
		t.Fatalf("got %q", got)
	}
	if err := reopened.Ping(ctx); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}

func TestBackend_SlotsAreIndependent(t *testing.T) {
	ctx := context.Background()
	b, err := New(filepath.Join(t.TempDir(), "codis.db"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer b.Close() //nolint:errcheck

	if err := b.Write(ctx, "a", []byte("A")); err != nil {
		t.Fatalf("Write a: %v", err)
	}
	if err := b.Write(ctx, "b", []byte("B")); err != nil {
		t.Fatalf("Write b: %v", err)
	}
	got, _ := b.Read(ctx, "a")
	if string(got) != "A" {
		t.Fatalf("slot a: got %q", got)
	}
}
