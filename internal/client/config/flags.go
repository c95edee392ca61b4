package config

import (
	"flag"
	"os"

	"github.com/dkurilov/homecal/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string      data directory (default from Config)
//	-l string      log level (default from Config)
//	-w string      weather endpoint base URL
//	-lat float     forecast latitude
//	-lng float     forecast longitude
//	-days int      forecast window in days
//
// The function filters os.Args to the flags it owns, using
// flagx.FilterArgs, to avoid interference with the JSON-config flags.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l", "-w", "-lat", "-lng", "-days"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.WeatherBaseURL, "w", cfg.WeatherBaseURL, "weather endpoint base URL")
	fs.Float64Var(&cfg.WeatherLatitude, "lat", cfg.WeatherLatitude, "forecast latitude")
	fs.Float64Var(&cfg.WeatherLongitude, "lng", cfg.WeatherLongitude, "forecast longitude")
	fs.IntVar(&cfg.ForecastDays, "days", cfg.ForecastDays, "forecast window in days")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
