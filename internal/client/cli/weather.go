package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dkurilov/homecal/internal/weather"
)

// Weather prints the daily forecast for the configured location over
// the configured window, capped at the provider's two-week horizon.
func (a *App) Weather(ctx context.Context) error {
	if err := a.requireSession(); err != nil {
		return err
	}

	window := a.config.ForecastDays
	if window < 1 {
		window = 1
	}
	now := time.Now()
	start, end, ok := weather.ClampWindow(now, now.AddDate(0, 0, window-1), now)
	if !ok {
		fmt.Println("No weather data")
		return nil
	}

	days, err := a.weather.Forecast(ctx, start, end)
	if err != nil {
		a.log.Error(ctx, "weather unavailable", "error", err)
		fmt.Println("No weather data")
		return err
	}

	fmt.Printf("Forecast for %.2f,%.2f\n", a.config.WeatherLatitude, a.config.WeatherLongitude)
	for _, day := range days {
		fmt.Printf("%s  %d°..%d°\n", day.Date.Format("2006-01-02"), day.Min, day.Max)
	}
	return nil
}
