package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLatLng(t *testing.T) {
	tests := []struct {
		name  string
		input string
		lat   float64
		lng   float64
		ok    bool
	}{
		{name: "Plain pair", input: "-33.87,151.21", lat: -33.87, lng: 151.21, ok: true},
		{name: "Spaces around parts", input: " 51.5 , -0.12 ", lat: 51.5, lng: -0.12, ok: true},
		{name: "Free text", input: "123 Main St, Springfield", ok: false},
		{name: "Latitude out of range", input: "91,0", ok: false},
		{name: "Longitude out of range", input: "0,181", ok: false},
		{name: "Single value", input: "42", ok: false},
		{name: "Empty", input: "", ok: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			lat, lng, ok := ParseLatLng(tc.input)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.lat, lat)
				assert.Equal(t, tc.lng, lng)
			}
		})
	}
}

func TestFormatMapLink(t *testing.T) {
	got := FormatMapLink(-33.87, 151.21)
	assert.Equal(t, "https://www.google.com/maps?q=-33.87,151.21", got)
}
