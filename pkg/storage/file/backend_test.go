package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestBackend_RoundTrip(t *testing.T) {
	ctx := context.Background()
	b, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, err := b.Read(ctx, "articles")
	if err != nil || got != nil {
		t.Fatalf("expected (nil, nil) for unwritten slot, got (%q, %v)", got, err)
	}

	if err := b.Write(ctx, "articles", []byte(`[]`)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := b.Write(ctx, "articles", []byte(`[{"id":"2"}]`)); err != nil {
		t.Fatalf("second Write: %v", err)
	}

	got, err = b.Read(ctx, "articles")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != `[{"id":"2"}]` {
		t.Fatalf("got %q", got)
	}

	if _, err := os.Stat(filepath.Join(b.Root(), "articles.json")); err != nil {
		t.Fatalf("expected slot file on disk: %v", err)
	}
}

func TestBackend_NoTempFilesLeft(t *testing.T) {
	dir := t.TempDir()
	b, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := b.Write(context.Background(), "s", []byte("x")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "s.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("expected only s.json, got %v", names)
	}
}

func TestBackend_InvalidSlotNames(t *testing.T) {
	b, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, slot := range []string{"", "  ", "../escape", "a/b", `a\b`} {
		if err := b.Write(context.Background(), slot, []byte("x")); err == nil {
			t.Errorf("expected error for slot %q", slot)
		}
	}
}

func TestBackend_Ping(t *testing.T) {
	dir := t.TempDir()
	b, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := b.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if err := os.RemoveAll(dir); err != nil {
		t.Fatalf("RemoveAll: %v", err)
	}
	if err := b.Ping(context.Background()); err == nil {
		t.Fatal("expected Ping to fail once the root is gone")
	}
}
