package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dkurilov/homecal/internal/filex"
)

// FileBackend stores each key as a JSON file named <key>.json under a
// data directory. Writes are atomic (temp file + rename) so a crashed
// write never leaves a half-written value behind.
type FileBackend struct {
	dir string
	mu  sync.Mutex
}

func NewFileBackend(dir string) (*FileBackend, error) {
	if err := filex.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("failed to prepare data dir: %w", err)
	}
	return &FileBackend{dir: dir}, nil
}

func (b *FileBackend) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(b.dir, key+".json"), nil
}

func (b *FileBackend) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := b.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

func (b *FileBackend) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := b.path(key)
	if err != nil {
		return err
	}
	if err := filex.WriteFileAtomic(path, value, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (b *FileBackend) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := b.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// CompareAndSwap implements Swapper. The read-compare-write sequence is
// serialized against other goroutines of this process only; it does not
// coordinate with other processes sharing the data directory.
func (b *FileBackend) CompareAndSwap(ctx context.Context, key string, old, value []byte) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	current, err := b.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !bytes.Equal(current, old) {
		return false, nil
	}
	if err := b.Set(ctx, key, value); err != nil {
		return false, err
	}
	return true, nil
}
