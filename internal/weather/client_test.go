package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(Config{
		BaseURL:   srv.URL,
		Latitude:  -33.87,
		Longitude: 151.21,
		Timeout:   2 * time.Second,
	}, nil)
}

func forecastBody() string {
	return `{
		"daily": {
			"time": ["2024-01-01", "2024-01-02"],
			"temperature_2m_max": [25.6, 19.4],
			"temperature_2m_min": [14.2, 11.5]
		}
	}`
}

func TestForecast_MapsAndRoundsDays(t *testing.T) {
	ctx := context.Background()
	var gotQuery atomic.Value

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery.Store(r.URL.Query().Encode())
		assert.Equal(t, "/v1/forecast", r.URL.Path)
		fmt.Fprint(w, forecastBody())
	})

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2024, 1, 2, 0, 0, 0, 0, time.Local)

	days, err := c.Forecast(ctx, start, end)
	require.NoError(t, err)
	require.Len(t, days, 2)

	assert.Equal(t, Day{Date: start, Min: 14, Max: 26}, days[0])
	assert.Equal(t, Day{Date: end, Min: 12, Max: 19}, days[1])

	q := gotQuery.Load().(string)
	assert.Contains(t, q, "latitude=-33.87")
	assert.Contains(t, q, "start_date=2024-01-01")
	assert.Contains(t, q, "end_date=2024-01-02")
}

func TestForecast_APIErrorIsNotRetried(t *testing.T) {
	ctx := context.Background()
	var calls atomic.Int32

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, `{"error": true, "reason": "Parameter 'start_date' is out of range"}`)
	})

	_, err := c.Forecast(ctx, time.Now(), time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
	assert.Equal(t, int32(1), calls.Load())
}

func TestForecast_RetriesServerErrors(t *testing.T) {
	ctx := context.Background()
	var calls atomic.Int32

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, forecastBody())
	})

	days, err := c.Forecast(ctx, time.Now(), time.Now())
	require.NoError(t, err)
	assert.Len(t, days, 2)
	assert.Equal(t, int32(3), calls.Load())
}

func TestForecast_ClientErrorFailsFast(t *testing.T) {
	ctx := context.Background()
	var calls atomic.Int32

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	})

	_, err := c.Forecast(ctx, time.Now(), time.Now())
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestForecast_MismatchedArraysTruncated(t *testing.T) {
	ctx := context.Background()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"daily": {
				"time": ["2024-01-01", "2024-01-02", "2024-01-03"],
				"temperature_2m_max": [25.0],
				"temperature_2m_min": [14.0, 11.0]
			}
		}`)
	})

	days, err := c.Forecast(ctx, time.Now(), time.Now())
	require.NoError(t, err)
	assert.Len(t, days, 1)
}

func TestClampWindow(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local)
	start := now

	t.Run("end within horizon is untouched", func(t *testing.T) {
		end := now.Add(5 * 24 * time.Hour)
		_, gotEnd, ok := ClampWindow(start, end, now)
		require.True(t, ok)
		assert.Equal(t, end, gotEnd)
	})

	t.Run("end past horizon is clamped to a fortnight", func(t *testing.T) {
		end := now.Add(40 * 24 * time.Hour)
		_, gotEnd, ok := ClampWindow(start, end, now)
		require.True(t, ok)
		assert.Equal(t, now.Add(14*24*time.Hour), gotEnd)
	})

	t.Run("start past horizon leaves no window", func(t *testing.T) {
		farStart := now.Add(20 * 24 * time.Hour)
		_, _, ok := ClampWindow(farStart, farStart.Add(24*time.Hour), now)
		assert.False(t, ok)
	})

	t.Run("reversed range leaves no window", func(t *testing.T) {
		_, _, ok := ClampWindow(now.Add(24*time.Hour), now, now)
		assert.False(t, ok)
	})
}

func TestMatch(t *testing.T) {
	d1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	d2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.Local)
	days := []Day{{Date: d1, Min: 10, Max: 20}, {Date: d2, Min: 11, Max: 21}}

	got, ok := Match(days, d2)
	require.True(t, ok)
	assert.Equal(t, 21, got.Max)

	_, ok = Match(days, d2.Add(24*time.Hour))
	assert.False(t, ok)

	// matching is exact: a mid-day timestamp does not match its day
	_, ok = Match(days, d1.Add(9*time.Hour))
	assert.False(t, ok)
}
