package colorx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		r, g, b uint8
		wantErr bool
	}{
		{name: "full form", input: "#ff8000", r: 0xff, g: 0x80, b: 0x00},
		{name: "short form", input: "#f80", r: 0xff, g: 0x88, b: 0x00},
		{name: "uppercase", input: "#FFAA00", r: 0xff, g: 0xaa, b: 0x00},
		{name: "missing hash", input: "ff8000", wantErr: true},
		{name: "wrong length", input: "#ff80", wantErr: true},
		{name: "non-hex digits", input: "#gg0000", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, g, b, err := ParseHex(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrMalformedColor)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, [3]uint8{tc.r, tc.g, tc.b}, [3]uint8{r, g, b})
		})
	}
}

func TestInvert(t *testing.T) {
	tests := []struct {
		background string
		want       string
	}{
		{"#ffffff", "#000000"},
		{"#000000", "#ffffff"},
		{"#ffff00", "#000000"}, // bright yellow reads with black text
		{"#00008b", "#ffffff"}, // dark blue reads with white text
		{"#f00", "#ffffff"},
		{"#0f0", "#000000"},
	}

	for _, tc := range tests {
		t.Run(tc.background, func(t *testing.T) {
			got, err := Invert(tc.background)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestInvert_Malformed(t *testing.T) {
	_, err := Invert("blue")
	require.ErrorIs(t, err, ErrMalformedColor)
}
