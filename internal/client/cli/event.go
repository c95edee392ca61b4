package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dkurilov/homecal/internal/client/models"
	"github.com/dkurilov/homecal/internal/common"
	"github.com/dkurilov/homecal/internal/weather"
)

// AddEvent walks the user through the event form and stores the result.
//
// Start and end default to the current hour so a bare Enter creates an
// event for "now". A location entered as "lat,lng" is turned into a
// Google Maps link; anything else is stored verbatim.
func (a *App) AddEvent(ctx context.Context) error {
	if err := a.requireSession(); err != nil {
		return err
	}

	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}

	now := time.Now().Format("2006-01-02T15:04")
	start, err := GetTextWithDefault(a.reader, "Enter start (YYYY-MM-DDThh:mm)", now, os.Stdout)
	if err != nil {
		return err
	}
	end, err := GetTextWithDefault(a.reader, "Enter end (YYYY-MM-DDThh:mm)", start, os.Stdout)
	if err != nil {
		return err
	}
	color, err := GetTextWithDefault(a.reader, "Enter colour", "#3788d8", os.Stdout)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Enter description", os.Stdout)
	if err != nil {
		return err
	}
	location, err := getSimpleText(a.reader, "Enter location (free text or lat,lng)", os.Stdout)
	if err != nil {
		return err
	}
	if lat, lng, ok := ParseLatLng(location); ok {
		location = FormatMapLink(lat, lng)
	}

	event, err := a.events.Create(ctx, models.EventDraft{
		Title:           title,
		Start:           start,
		End:             end,
		BackgroundColor: color,
		Description:     description,
		Location:        location,
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidTimeRange):
			fmt.Println("Event ends before it starts")
		case errors.Is(err, common.ErrInvalidColor):
			fmt.Println("Unrecognised colour, use #rgb or #rrggbb")
		case errors.Is(err, common.ErrorValidation):
			fmt.Println("Invalid event:", err.Error())
		default:
			a.log.Error(ctx, "add event failed", "error", err)
		}
		return err
	}

	fmt.Printf("Added %s (%s)\n", event.Title, event.ID)
	return nil
}

// List prints the stored events in insertion order. When the forecast
// covers an event's start date the min/max temperatures are appended;
// a failed forecast fetch degrades to a plain listing.
func (a *App) List(ctx context.Context) error {
	if err := a.requireSession(); err != nil {
		return err
	}

	items, err := a.events.List(ctx)
	if err != nil {
		a.log.Error(ctx, "list events failed", "error", err)
		return err
	}
	if len(items) == 0 {
		fmt.Println("No events yet")
		return nil
	}

	days := a.forecastFor(ctx, items)

	for _, item := range items {
		line := fmt.Sprintf("%s  %s  %s - %s", item.ID, item.Title, item.Start, item.End)
		if day, ok := a.matchDay(days, item); ok {
			line += fmt.Sprintf("  [%d°..%d°]", day.Min, day.Max)
		}
		fmt.Println(line)
		if item.ExtendedProps.Location != "" {
			fmt.Println("    ", item.ExtendedProps.Location)
		}
		if item.ExtendedProps.Description != "" {
			fmt.Println("    ", item.ExtendedProps.Description)
		}
	}
	return nil
}

// forecastFor fetches forecast days spanning the listed events, or nil
// when the window is empty or the fetch fails.
func (a *App) forecastFor(ctx context.Context, items []models.Event) []weather.Day {
	var first, last time.Time
	for _, item := range items {
		day, err := item.StartDay()
		if err != nil {
			continue
		}
		if first.IsZero() || day.Before(first) {
			first = day
		}
		if last.IsZero() || day.After(last) {
			last = day
		}
	}
	if first.IsZero() {
		return nil
	}

	start, end, ok := weather.ClampWindow(first, last, time.Now())
	if !ok {
		return nil
	}
	days, err := a.weather.Forecast(ctx, start, end)
	if err != nil {
		a.log.Error(ctx, "weather unavailable", "error", err)
		return nil
	}
	return days
}

func (a *App) matchDay(days []weather.Day, item models.Event) (weather.Day, bool) {
	if len(days) == 0 {
		return weather.Day{}, false
	}
	day, err := item.StartDay()
	if err != nil {
		return weather.Day{}, false
	}
	return weather.Match(days, day)
}

// Remove deletes the event with the given id. An unknown id is a no-op,
// mirroring the stores' remove semantics.
func (a *App) Remove(ctx context.Context, id string) error {
	if err := a.requireSession(); err != nil {
		return err
	}

	if err := a.events.DeleteByID(ctx, id); err != nil {
		a.log.Error(ctx, "remove event failed", "error", err)
		return err
	}
	fmt.Println("Removed", id)
	return nil
}
