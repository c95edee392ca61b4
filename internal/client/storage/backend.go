package storage

import "context"

// Backend is a string-keyed blob store. Get returns (nil, nil) when the
// key is absent; callers treat that as first-run state, never as an
// error.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Swapper is the opt-in optimistic-concurrency extension. CompareAndSwap
// writes value only if the stored bytes still equal old (nil old means
// "key absent") and reports whether the write happened. Both backends in
// this package implement it; the stores default to plain Set.
type Swapper interface {
	CompareAndSwap(ctx context.Context, key string, old, value []byte) (bool, error)
}
