package memory

import (
	"context"
	"testing"
)

func TestBackend_ReadMissingSlot(t *testing.T) {
	b := New()
	p, err := b.Read(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != nil {
		t.Fatalf("expected nil payload, got %q", p)
	}
}

func TestBackend_WriteThenRead(t *testing.T) {
	ctx := context.Background()
	b := New()
	payload := []byte(`[{"id":"1"}]`)
	if err := b.Write(ctx, "s", payload); err != nil {
		t.Fatalf("Write: %v", err)
	}
	payload[0] = 'X' // caller mutation must not leak into the backend

	got, err := b.Read(ctx, "s")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != `[{"id":"1"}]` {
		t.Fatalf("got %q", got)
	}

	got[0] = 'Y'
	again, _ := b.Read(ctx, "s")
	if again[0] != '[' {
		t.Fatal("Read must return a copy")
	}
}
