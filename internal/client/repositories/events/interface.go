package events

import (
	"context"

	"github.com/dkurilov/homecal/internal/client/models"
)

// Repository is the event-store surface consumed by the event service.
type Repository interface {
	// Init loads the persisted collection, establishing an empty one on
	// first run.
	Init(ctx context.Context) error

	// Add appends the event and persists the collection.
	Add(ctx context.Context, event models.Event) error

	// Remove drops the first event with the given id and persists; an
	// absent id is a no-op.
	Remove(ctx context.Context, id string) error

	// Events returns a copy of the collection in insertion order.
	// Mutating the returned slice does not affect the store.
	Events(ctx context.Context) ([]models.Event, error)
}
