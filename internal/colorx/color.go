// Package colorx derives a readable text colour for a given background
// colour, the way the calendar derives an event's text colour from the
// colour the user picked.
package colorx

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrMalformedColor = errors.New("malformed hex colour")

// luminanceThreshold separates backgrounds that read better with black
// text from those that read better with white text, using WCAG relative
// luminance.
const luminanceThreshold = 0.179

// ParseHex parses a "#rgb" or "#rrggbb" colour, case-insensitive.
func ParseHex(s string) (r, g, b uint8, err error) {
	if !strings.HasPrefix(s, "#") {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrMalformedColor, s)
	}
	hex := s[1:]

	switch len(hex) {
	case 3:
		expanded := make([]byte, 6)
		for i := 0; i < 3; i++ {
			expanded[2*i], expanded[2*i+1] = hex[i], hex[i]
		}
		hex = string(expanded)
	case 6:
	default:
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrMalformedColor, s)
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexDigit(hex[2*i])
		lo, ok2 := hexDigit(hex[2*i+1])
		if !ok1 || !ok2 {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrMalformedColor, s)
		}
		channels[i] = hi<<4 | lo
	}
	return channels[0], channels[1], channels[2], nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Invert returns "#000000" or "#ffffff", whichever contrasts better with
// the given background colour.
func Invert(background string) (string, error) {
	r, g, b, err := ParseHex(background)
	if err != nil {
		return "", err
	}
	if luminance(r, g, b) > luminanceThreshold {
		return "#000000", nil
	}
	return "#ffffff", nil
}

// luminance computes WCAG relative luminance from 8-bit sRGB channels.
func luminance(r, g, b uint8) float64 {
	lin := func(c uint8) float64 {
		v := float64(c) / 255
		if v <= 0.03928 {
			return v / 12.92
		}
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(r) + 0.7152*lin(g) + 0.0722*lin(b)
}
