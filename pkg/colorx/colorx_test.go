package colorx

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  color.NRGBA
	}{
		{"six digit", "#FF8000", color.NRGBA{255, 128, 0, 255}},
		{"no hash", "ff8000", color.NRGBA{255, 128, 0, 255}},
		{"three digit", "#f80", color.NRGBA{255, 136, 0, 255}},
		{"black", "#000", color.NRGBA{0, 0, 0, 255}},
		{"white", "#FFFFFF", color.NRGBA{255, 255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseHexMalformed(t *testing.T) {
	for _, input := range []string{"", "#12", "#12345", "#gggggg", "not a color", "#1234567"} {
		_, err := ParseHex(input)
		assert.ErrorIs(t, err, ErrMalformedColor, "input %q", input)
	}
}

func TestParseHexA(t *testing.T) {
	got, err := ParseHexA("#00000040")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0, 0, 0, 64}, got)

	// 6-digit input gets full alpha.
	got, err = ParseHexA("#102030")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{16, 32, 48, 255}, got)
}

func TestToHexRoundTrip(t *testing.T) {
	for _, hex := range []string{"#000000", "#ffffff", "#12ab9c", "#0080ff"} {
		c, err := ParseHex(hex)
		require.NoError(t, err)
		assert.Equal(t, hex, ToHex(c))
	}
}

func TestInterpolateSingleColor(t *testing.T) {
	c := color.NRGBA{10, 20, 30, 255}
	for _, tv := range []float64{0, 0.25, 0.5, 1} {
		assert.Equal(t, c, Interpolate([]color.NRGBA{c}, tv))
	}
}

func TestInterpolateEndpoints(t *testing.T) {
	a := color.NRGBA{0, 0, 0, 255}
	b := color.NRGBA{255, 255, 255, 255}

	assert.Equal(t, a, Interpolate([]color.NRGBA{a, b}, 0))
	assert.Equal(t, b, Interpolate([]color.NRGBA{a, b}, 1))

	mid := Interpolate([]color.NRGBA{a, b}, 0.5)
	assert.Equal(t, color.NRGBA{127, 127, 127, 255}, mid)
}

func TestInterpolateClampsT(t *testing.T) {
	a := color.NRGBA{0, 0, 0, 255}
	b := color.NRGBA{200, 100, 50, 255}

	assert.Equal(t, a, Interpolate([]color.NRGBA{a, b}, -3))
	assert.Equal(t, b, Interpolate([]color.NRGBA{a, b}, 7))

	// NaN positions (from degenerate axis ratios) clamp to the first stop.
	assert.Equal(t, a, Interpolate([]color.NRGBA{a, b}, math.NaN()))
}

func TestInterpolateThreeStops(t *testing.T) {
	stops := []color.NRGBA{
		{0, 0, 0, 255},
		{100, 100, 100, 255},
		{200, 200, 200, 255},
	}

	// Midpoint of the first segment.
	got := Interpolate(stops, 0.25)
	assert.Equal(t, color.NRGBA{50, 50, 50, 255}, got)

	// Exact middle stop.
	got = Interpolate(stops, 0.5)
	assert.Equal(t, stops[1], got)
}

func TestLuminanceAndContrast(t *testing.T) {
	black := color.NRGBA{0, 0, 0, 255}
	white := color.NRGBA{255, 255, 255, 255}

	assert.InDelta(t, 0.0, Luminance(black), 0.001)
	assert.InDelta(t, 1.0, Luminance(white), 0.001)
	assert.InDelta(t, 21.0, ContrastRatio(black, white), 0.01)
	assert.InDelta(t, ContrastRatio(black, white), ContrastRatio(white, black), 0.0001)
}

func TestIsLight(t *testing.T) {
	assert.True(t, IsLight(color.NRGBA{255, 255, 255, 255}))
	assert.True(t, IsLight(color.NRGBA{255, 255, 0, 255}))
	assert.False(t, IsLight(color.NRGBA{0, 0, 0, 255}))
	assert.False(t, IsLight(color.NRGBA{0, 0, 255, 255}))
}
