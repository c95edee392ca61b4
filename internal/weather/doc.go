// Package weather fetches the rolling daily forecast shown alongside the
// calendar.
//
// The client talks to the Open-Meteo forecast API and reduces the
// response to per-day minimum/maximum temperatures, each keyed by the day
// normalized to local midnight so events can be matched by exact
// timestamp equality.
//
// Forecast failures are expected operational noise: the caller logs them
// and renders the calendar without weather data. Transient failures
// (transport errors, 5xx) are retried with exponential backoff; requests
// are throttled client-side.
package weather
