package storage

import (
	"bytes"
	"context"
	"sync"
)

// MemoryBackend is a map-backed Backend for tests and ephemeral runs.
// Values are copied on the way in and out so callers cannot alias the
// stored bytes.
type MemoryBackend struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: make(map[string][]byte)}
}

func (b *MemoryBackend) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()

	value, ok := b.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), value...), nil
}

func (b *MemoryBackend) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.data[key] = append([]byte(nil), value...)
	return nil
}

func (b *MemoryBackend) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.data, key)
	return nil
}

// CompareAndSwap implements Swapper.
func (b *MemoryBackend) CompareAndSwap(ctx context.Context, key string, old, value []byte) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if !bytes.Equal(b.data[key], old) {
		return false, nil
	}
	b.data[key] = append([]byte(nil), value...)
	return true, nil
}
