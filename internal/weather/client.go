package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sethvargo/go-retry"
	"golang.org/x/time/rate"

	"github.com/dkurilov/homecal/internal/logging"
)

// maxHorizon caps the forecast window at a fortnight from now, matching
// the range the calendar page requested.
const maxHorizon = 14 * 24 * time.Hour

// Day is one day of forecast. Date is normalized to local midnight;
// temperatures are rounded to the nearest whole degree.
type Day struct {
	Date time.Time
	Min  int
	Max  int
}

// Config holds the client settings; see client/config for how they are
// loaded.
type Config struct {
	BaseURL   string
	Latitude  float64
	Longitude float64
	Timeout   time.Duration
}

// Client fetches daily forecasts from the Open-Meteo API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	latitude   float64
	longitude  float64
	limiter    *rate.Limiter
	log        logging.Logger
}

func New(cfg Config, log logging.Logger) *Client {
	if log == nil {
		log = logging.NewNop()
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		latitude:   cfg.Latitude,
		longitude:  cfg.Longitude,
		// one request per second with a small burst is plenty for an
		// interactive client and polite to a public API
		limiter: rate.NewLimiter(rate.Every(time.Second), 2),
		log:     log.With("component", "weather"),
	}
}

// ClampWindow bounds [start, end] so the window never extends past a
// fortnight from now. ok is false when no fetchable window remains,
// either because start itself lies beyond the horizon or because the
// input range is empty.
func ClampWindow(start, end, now time.Time) (time.Time, time.Time, bool) {
	horizon := now.Add(maxHorizon)
	if start.After(horizon) {
		return start, end, false
	}
	if end.After(horizon) {
		end = horizon
	}
	if end.Before(start) {
		return start, end, false
	}
	return start, end, true
}

// Forecast returns one Day per date in [start, end]. Transport errors and
// 5xx responses are retried a few times with exponential backoff; an
// error reported by the API itself is returned immediately.
func (c *Client) Forecast(ctx context.Context, start, end time.Time) ([]Day, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint, err := c.buildURL(start, end)
	if err != nil {
		return nil, err
	}

	var days []Day
	backoff := retry.WithMaxRetries(3, retry.NewExponential(500*time.Millisecond))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		var fetchErr error
		days, fetchErr = c.fetchOnce(ctx, endpoint)
		return fetchErr
	})
	if err != nil {
		return nil, fmt.Errorf("forecast fetch: %w", err)
	}
	return days, nil
}

func (c *Client) buildURL(start, end time.Time) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid weather endpoint: %w", err)
	}
	u = u.JoinPath("v1", "forecast")

	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(c.latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(c.longitude, 'f', -1, 64))
	q.Set("daily", "temperature_2m_max,temperature_2m_min")
	q.Set("timezone", "auto")
	q.Set("start_date", start.Format("2006-01-02"))
	q.Set("end_date", end.Format("2006-01-02"))
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// apiResponse mirrors the subset of the Open-Meteo response the calendar
// consumes. Error and Reason are the API's own error convention.
type apiResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
	Daily  struct {
		Time []string  `json:"time"`
		Max  []float64 `json:"temperature_2m_max"`
		Min  []float64 `json:"temperature_2m_min"`
	} `json:"daily"`
}

func (c *Client) fetchOnce(ctx context.Context, endpoint string) ([]Day, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, retry.RetryableError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, retry.RetryableError(fmt.Errorf("status %d", resp.StatusCode))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, retry.RetryableError(err)
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if parsed.Error {
		return nil, fmt.Errorf("api error: %s", parsed.Reason)
	}

	days := make([]Day, 0, len(parsed.Daily.Time))
	for i, ts := range parsed.Daily.Time {
		if i >= len(parsed.Daily.Max) || i >= len(parsed.Daily.Min) {
			break
		}
		day, err := time.ParseInLocation("2006-01-02", ts, time.Local)
		if err != nil {
			c.log.Warn(ctx, "skipping unparseable forecast day", "value", ts)
			continue
		}
		days = append(days, Day{
			Date: day,
			Min:  int(math.Round(parsed.Daily.Min[i])),
			Max:  int(math.Round(parsed.Daily.Max[i])),
		})
	}
	return days, nil
}

// Match finds the forecast day whose date equals t, which must already be
// normalized to local midnight.
func Match(days []Day, t time.Time) (Day, bool) {
	for _, d := range days {
		if d.Date.Equal(t) {
			return d, true
		}
	}
	return Day{}, false
}
