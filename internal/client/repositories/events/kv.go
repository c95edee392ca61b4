package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dkurilov/homecal/internal/client/models"
	"github.com/dkurilov/homecal/internal/client/storage"
	"github.com/dkurilov/homecal/internal/logging"
)

const collectionKey = "events"

// collection is the persisted JSON shape.
type collection struct {
	Events []models.Event `json:"events"`
}

// KVRepository is a Repository over a storage.Backend. The ordered list
// is cached in memory and persisted as a whole on every mutation.
type KVRepository struct {
	backend storage.Backend
	log     logging.Logger
	events  []models.Event
}

func NewKVRepository(backend storage.Backend, log logging.Logger) *KVRepository {
	if log == nil {
		log = logging.NewNop()
	}
	return &KVRepository{
		backend: backend,
		log:     log.With("store", "events"),
		events:  []models.Event{},
	}
}

func (r *KVRepository) Init(ctx context.Context) error {
	data, err := r.backend.Get(ctx, collectionKey)
	if err != nil {
		return fmt.Errorf("failed to read event collection: %w", err)
	}
	if data == nil {
		r.log.Info(ctx, "collection missing, creating", "key", collectionKey)
		r.events = []models.Event{}
		return r.save(ctx)
	}

	var loaded collection
	if err := json.Unmarshal(data, &loaded); err != nil {
		r.log.Error(ctx, "collection unparseable, resetting", "error", err.Error())
		r.events = []models.Event{}
		return r.save(ctx)
	}
	if loaded.Events == nil {
		loaded.Events = []models.Event{}
	}
	r.events = loaded.Events
	r.log.Info(ctx, "collection loaded", "count", len(r.events))
	return nil
}

func (r *KVRepository) save(ctx context.Context) error {
	data, err := json.Marshal(collection{Events: r.events})
	if err != nil {
		return fmt.Errorf("failed to encode event collection: %w", err)
	}
	if err := r.backend.Set(ctx, collectionKey, data); err != nil {
		return fmt.Errorf("failed to save event collection: %w", err)
	}
	r.log.Debug(ctx, "collection saved", "count", len(r.events))
	return nil
}

func (r *KVRepository) Add(ctx context.Context, event models.Event) error {
	r.events = append(r.events, event)
	if err := r.save(ctx); err != nil {
		r.events = r.events[:len(r.events)-1]
		return err
	}
	return nil
}

func (r *KVRepository) Remove(ctx context.Context, id string) error {
	idx := -1
	for i, e := range r.events {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	removed := r.events[idx]
	r.events = append(r.events[:idx], r.events[idx+1:]...)
	if err := r.save(ctx); err != nil {
		r.events = append(r.events[:idx], append([]models.Event{removed}, r.events[idx:]...)...)
		return err
	}
	return nil
}

func (r *KVRepository) Events(ctx context.Context) ([]models.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]models.Event(nil), r.events...), nil
}
