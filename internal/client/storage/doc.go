// Package storage provides the persistence boundary for the calendar
// stores: a string-keyed blob store with localStorage-like semantics.
//
// # Overview
//
// Stores are constructed with an injected Backend, so tests run against
// MemoryBackend while the CLI runs against FileBackend (one JSON file per
// key under a data directory). Every mutation on a store persists its
// whole collection synchronously through Set.
//
// # Concurrency
//
// A single process accesses every key through one store instance, so
// there is no concurrent mutator within a process. A data directory
// shared between processes is NOT coordinated: two processes can race to
// read-modify-write the same key and the last writer wins, exactly as the
// original application behaved across browser tabs. Callers that want
// stronger guarantees can opt into the Swapper extension.
//
// Key Types
//
//   - type Backend        — Get/Set/Delete over string keys
//   - type Swapper        — opt-in compare-and-swap extension
//   - type FileBackend    — durable JSON-file implementation
//   - type MemoryBackend  — in-memory fake for tests
package storage
