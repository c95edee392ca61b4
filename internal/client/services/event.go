package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/dkurilov/homecal/internal/client/models"
	"github.com/dkurilov/homecal/internal/client/repositories/events"
	"github.com/dkurilov/homecal/internal/colorx"
	"github.com/dkurilov/homecal/internal/common"
)

// EventService builds and stores calendar events.
type EventService interface {
	// Create validates the draft, assigns a fresh id, derives the text
	// colour from the background colour and stores the event.
	Create(ctx context.Context, draft models.EventDraft) (models.Event, error)

	// List returns the stored events in insertion order.
	List(ctx context.Context) ([]models.Event, error)

	// DeleteByID removes the event; an absent id is a no-op.
	DeleteByID(ctx context.Context, id string) error
}

type eventService struct {
	events   events.Repository
	validate *validator.Validate
}

// NewEventService constructs an EventService over the event repository.
func NewEventService(events events.Repository) EventService {
	return &eventService{events: events, validate: validator.New()}
}

func (s *eventService) Create(ctx context.Context, draft models.EventDraft) (models.Event, error) {
	event := models.Event{
		ID:              uuid.NewString(),
		Title:           draft.Title,
		Start:           draft.Start,
		End:             draft.End,
		BackgroundColor: draft.BackgroundColor,
		ExtendedProps: models.EventDetails{
			Description: draft.Description,
			Location:    draft.Location,
		},
	}

	if err := s.validate.Struct(event); err != nil {
		return models.Event{}, fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}

	start, err := models.ParseTimestamp(draft.Start)
	if err != nil {
		return models.Event{}, fmt.Errorf("%w: start: %v", common.ErrorValidation, err)
	}
	end, err := models.ParseTimestamp(draft.End)
	if err != nil {
		return models.Event{}, fmt.Errorf("%w: end: %v", common.ErrorValidation, err)
	}
	if start.After(end) {
		return models.Event{}, fmt.Errorf("%w: %s > %s", common.ErrInvalidTimeRange, draft.Start, draft.End)
	}

	text, err := colorx.Invert(draft.BackgroundColor)
	if err != nil {
		return models.Event{}, fmt.Errorf("%w: %v", common.ErrInvalidColor, err)
	}
	event.TextColor = text

	if err := s.events.Add(ctx, event); err != nil {
		return models.Event{}, err
	}
	return event, nil
}

func (s *eventService) List(ctx context.Context) ([]models.Event, error) {
	return s.events.Events(ctx)
}

func (s *eventService) DeleteByID(ctx context.Context, id string) error {
	return s.events.Remove(ctx, id)
}
