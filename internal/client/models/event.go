package models

import (
	"fmt"
	"time"
)

// EventDetails carries the optional free-form annotations, nested under
// extendedProps in the persisted JSON to match the layout written by the
// original application.
type EventDetails struct {
	Description string `json:"description"`
	Location    string `json:"location"`
}

// Event is a stored calendar entry. Start and End are kept as the
// timestamp strings the caller supplied. TextColor is derived from
// BackgroundColor once at creation and persisted as-is, never recomputed
// on read.
type Event struct {
	ID              string       `json:"id"`
	Title           string       `json:"title" validate:"required"`
	Start           string       `json:"start" validate:"required"`
	End             string       `json:"end" validate:"required"`
	BackgroundColor string       `json:"backgroundColor"`
	TextColor       string       `json:"textColor"`
	ExtendedProps   EventDetails `json:"extendedProps"`
}

// EventDraft is the user-facing input for a new event, before the event
// service assigns an id and derives the text colour.
type EventDraft struct {
	Title           string
	Start           string
	End             string
	BackgroundColor string
	Description     string
	Location        string
}

// timestampLayouts lists the accepted event timestamp forms: RFC 3339
// (as written by the original application) and the datetime-local input
// forms without zone or seconds.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseTimestamp parses an event timestamp in any accepted layout.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", s)
}

// StartDay returns the event's start normalized to local midnight, for
// matching against day-granularity weather records.
func (e Event) StartDay() (time.Time, error) {
	t, err := ParseTimestamp(e.Start)
	if err != nil {
		return time.Time{}, err
	}
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()), nil
}
