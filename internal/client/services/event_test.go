package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkurilov/homecal/internal/client/models"
	"github.com/dkurilov/homecal/internal/client/repositories/events"
	"github.com/dkurilov/homecal/internal/client/storage"
	"github.com/dkurilov/homecal/internal/common"
)

func setupEventService(t *testing.T) (EventService, events.Repository) {
	t.Helper()
	repo := events.NewKVRepository(storage.NewMemoryBackend(), nil)
	require.NoError(t, repo.Init(context.Background()))
	return NewEventService(repo), repo
}

func validDraft() models.EventDraft {
	return models.EventDraft{
		Title:           "Meeting",
		Start:           "2024-01-01T10:00",
		End:             "2024-01-01T11:00",
		BackgroundColor: "#00008b",
		Description:     "standup",
		Location:        "https://www.google.com/maps?q=-33.87,151.21",
	}
}

func TestCreate_BuildsAndStoresEvent(t *testing.T) {
	ctx := context.Background()
	svc, repo := setupEventService(t)

	event, err := svc.Create(ctx, validDraft())
	require.NoError(t, err)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "Meeting", event.Title)
	assert.Equal(t, "#00008b", event.BackgroundColor)
	assert.Equal(t, "#ffffff", event.TextColor, "dark background gets white text")
	assert.Equal(t, "standup", event.ExtendedProps.Description)
	assert.Equal(t, "https://www.google.com/maps?q=-33.87,151.21", event.ExtendedProps.Location)

	stored, err := repo.Events(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, event, stored[0])
}

func TestCreate_DistinctIDs(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupEventService(t)

	e1, err := svc.Create(ctx, validDraft())
	require.NoError(t, err)
	e2, err := svc.Create(ctx, validDraft())
	require.NoError(t, err)

	assert.NotEqual(t, e1.ID, e2.ID)
}

func TestCreate_TextColourForLightBackground(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupEventService(t)

	draft := validDraft()
	draft.BackgroundColor = "#ffff00"

	event, err := svc.Create(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, "#000000", event.TextColor)
}

func TestCreate_Validation(t *testing.T) {
	ctx := context.Background()
	svc, repo := setupEventService(t)

	tests := []struct {
		name   string
		mutate func(*models.EventDraft)
		want   error
	}{
		{
			name:   "missing title",
			mutate: func(d *models.EventDraft) { d.Title = "" },
			want:   common.ErrorValidation,
		},
		{
			name:   "missing start",
			mutate: func(d *models.EventDraft) { d.Start = "" },
			want:   common.ErrorValidation,
		},
		{
			name:   "unparseable start",
			mutate: func(d *models.EventDraft) { d.Start = "tomorrow" },
			want:   common.ErrorValidation,
		},
		{
			name:   "unparseable end",
			mutate: func(d *models.EventDraft) { d.End = "late" },
			want:   common.ErrorValidation,
		},
		{
			name: "start after end",
			mutate: func(d *models.EventDraft) {
				d.Start = "2024-01-01T12:00"
				d.End = "2024-01-01T11:00"
			},
			want: common.ErrInvalidTimeRange,
		},
		{
			name:   "malformed colour",
			mutate: func(d *models.EventDraft) { d.BackgroundColor = "red" },
			want:   common.ErrInvalidColor,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			draft := validDraft()
			tc.mutate(&draft)

			_, err := svc.Create(ctx, draft)
			require.ErrorIs(t, err, tc.want)
		})
	}

	// nothing was stored by the rejected drafts
	stored, err := repo.Events(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestCreate_StartEqualsEndIsAllowed(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupEventService(t)

	draft := validDraft()
	draft.Start = "2024-01-01T10:00"
	draft.End = "2024-01-01T10:00"

	_, err := svc.Create(ctx, draft)
	require.NoError(t, err)
}

func TestCreate_EmptyDescriptionAndLocationAllowed(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupEventService(t)

	draft := validDraft()
	draft.Description = ""
	draft.Location = ""

	event, err := svc.Create(ctx, draft)
	require.NoError(t, err)
	assert.Empty(t, event.ExtendedProps.Description)
	assert.Empty(t, event.ExtendedProps.Location)
}

func TestDeleteByID(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupEventService(t)

	event, err := svc.Create(ctx, validDraft())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteByID(ctx, event.ID))
	require.NoError(t, svc.DeleteByID(ctx, event.ID), "second delete is a no-op")

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
