package config

import "time"

// Config holds runtime settings for the HomeCal CLI.
//
// Fields:
//   - DataDir: directory holding the persisted collections (one JSON
//     file per storage key).
//   - LogLevel: slog level name (debug, info, warn, error).
//   - WeatherBaseURL: Open-Meteo-compatible endpoint for the forecast
//     overlay.
//   - WeatherLatitude / WeatherLongitude: forecast location.
//   - WeatherTimeout: per-request HTTP timeout for forecast fetches.
//   - ForecastDays: how many days ahead the weather command shows,
//     capped at the provider's two-week horizon.
type Config struct {
	DataDir          string
	LogLevel         string
	WeatherBaseURL   string
	WeatherLatitude  float64
	WeatherLongitude float64
	WeatherTimeout   time.Duration
	ForecastDays     int
}

// LoadDefaults populates c with sensible defaults. The default forecast
// location matches the one the original calendar page was built with.
func (c *Config) LoadDefaults() {
	c.DataDir = "data"
	c.LogLevel = "info"
	c.WeatherBaseURL = "https://api.open-meteo.com"
	c.WeatherLatitude = -33.87
	c.WeatherLongitude = 151.21
	c.WeatherTimeout = 5 * time.Second
	c.ForecastDays = 7
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
