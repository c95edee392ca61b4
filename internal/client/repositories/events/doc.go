// Package events provides the durable ordered collection of calendar
// events.
//
// # Storage layout
//
// One key on the injected storage backend, JSON-encoded:
//
//	events — {"events": [Event, ...]}
//
// Events keep insertion order and are persisted as a whole list on every
// mutation. The collection is global: it is not scoped to any user or
// session (a shared household calendar).
//
// # Failure semantics
//
// An absent or unparseable collection is first-run state: Init resets it
// to an empty list and persists that. Remove of an id that is not present
// leaves the collection unchanged and is not an error.
package events
