// Package config loads runtime configuration for the HomeCal CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string      data directory
//	-l string      log level
//	-w string      weather endpoint base URL
//	-lat float     forecast latitude
//	-lng float     forecast longitude
//
// # JSON schema
//
// The JSON loader uses timex.Duration for timeouts, so values can be
// either strings like "5s" or integer nanoseconds:
//
//	{
//	  "data_dir": "/var/lib/homecal",
//	  "log_level": "debug",
//	  "weather_base_url": "https://api.open-meteo.com",
//	  "weather_latitude": -33.87,
//	  "weather_longitude": 151.21,
//	  "weather_timeout": "5s"
//	}
//
// Primary API
//
//   - type Config                     — runtime settings
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables; use the JSON
// file or flags to configure values.
package config
