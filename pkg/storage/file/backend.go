// Package file stores each slot as a JSON file under a root directory.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Backend maps slot "name" to "<root>/name.json". Writes go through a temp
// file and rename, so readers never observe a half-written slot.
type Backend struct {
	root string
}

// New returns a Backend rooted at root, creating the directory if needed.
func New(root string) (*Backend, error) {
	if root == "" {
		root = "./data"
	}
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &Backend{root: root}, nil
}

func (b *Backend) pathFor(slot string) (string, error) {
	if strings.TrimSpace(slot) == "" {
		return "", fmt.Errorf("empty slot name")
	}
	if strings.ContainsAny(slot, `/\`) || strings.Contains(slot, "..") {
		return "", fmt.Errorf("invalid slot name %q", slot)
	}
	return filepath.Join(b.root, slot+".json"), nil
}

func (b *Backend) Read(_ context.Context, slot string) ([]byte, error) {
	path, err := b.pathFor(slot)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read slot file: %w", err)
	}
	return data, nil
}

func (b *Backend) Write(_ context.Context, slot string, payload []byte) error {
	path, err := b.pathFor(slot)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(b.root, ".tmp-"+slot+"-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace slot file: %w", err)
	}
	return nil
}

// Ping verifies the root directory still exists.
func (b *Backend) Ping(context.Context) error {
	info, err := os.Stat(b.root)
	if err != nil {
		return fmt.Errorf("stat storage dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("storage root %s is not a directory", b.root)
	}
	return nil
}

// Root returns the configured directory.
func (b *Backend) Root() string { return b.root }
