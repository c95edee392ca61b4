package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dkurilov/homecal/internal/flagx"
	"github.com/dkurilov/homecal/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies
// on timex.Duration so JSON can specify timeouts either as strings like
// "5s" or as integer nanoseconds. Parsed values are copied into the
// runtime Config.
type JsonConfig struct {
	DataDir          string         `json:"data_dir"`
	LogLevel         string         `json:"log_level"`
	WeatherBaseURL   string         `json:"weather_base_url"`
	WeatherLatitude  *float64       `json:"weather_latitude"`
	WeatherLongitude *float64       `json:"weather_longitude"`
	WeatherTimeout   timex.Duration `json:"weather_timeout"`
	ForecastDays     int            `json:"forecast_days"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags via
// flagx.JsonConfigFlags(); when neither is given, no JSON is loaded.
// Fields absent from the file keep their current values. Read or
// unmarshal errors panic (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.WeatherBaseURL != "" {
		cfg.WeatherBaseURL = jc.WeatherBaseURL
	}
	// pointers distinguish "absent" from legitimate zero coordinates
	if jc.WeatherLatitude != nil {
		cfg.WeatherLatitude = *jc.WeatherLatitude
	}
	if jc.WeatherLongitude != nil {
		cfg.WeatherLongitude = *jc.WeatherLongitude
	}
	if jc.WeatherTimeout.Duration != 0 {
		cfg.WeatherTimeout = time.Duration(jc.WeatherTimeout.Duration)
	}
	if jc.ForecastDays != 0 {
		cfg.ForecastDays = jc.ForecastDays
	}
}
