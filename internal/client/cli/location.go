package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatMapLink builds the Google Maps link stored as an event location
// when the user enters coordinates.
func FormatMapLink(lat, lng float64) string {
	return fmt.Sprintf("https://www.google.com/maps?q=%v,%v", lat, lng)
}

// ParseLatLng reports whether s is a "lat,lng" coordinate pair within
// valid ranges. Free-form location text returns ok=false and is stored
// verbatim.
func ParseLatLng(s string) (lat, lng float64, ok bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, false
	}
	lng, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, false
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return 0, 0, false
	}
	return lat, lng, true
}
