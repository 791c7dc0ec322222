// Package colorx provides hex color parsing, multi-stop interpolation,
// and perceptual brightness/contrast math for the rendering core.
package colorx

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// ErrMalformedColor reports a hex string that cannot be parsed.
var ErrMalformedColor = errors.New("malformed color")

// ParseHex converts "#rgb" or "#rrggbb" (leading '#' optional) to an opaque
// color. 3-digit shorthand is expanded by digit duplication.
func ParseHex(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	if len(hex) == 3 {
		hex = expandShorthand(hex)
	}
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrMalformedColor, s)
	}

	c, err := parseChannels(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrMalformedColor, s)
	}
	c.A = 255
	return c, nil
}

// ParseHexA is ParseHex with 8-digit "#rrggbbaa" support for callers that
// carry alpha (shadow colors).
func ParseHexA(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	if len(hex) == 8 {
		c, err := parseChannels(hex[:6])
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrMalformedColor, s)
		}
		a, err := strconv.ParseUint(hex[6:8], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrMalformedColor, s)
		}
		c.A = uint8(a)
		return c, nil
	}

	return ParseHex(s)
}

// ToHex formats a color as lowercase "#rrggbb". Alpha is dropped.
func ToHex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Interpolate blends an ordered list of colors at position t in [0,1].
// A single color is returned unchanged for any t. For n colors, [0,1] is
// divided into n-1 equal segments and each channel is interpolated linearly
// within the segment, truncating to integer. t is clamped before use.
func Interpolate(colors []color.NRGBA, t float64) color.NRGBA {
	if len(colors) == 0 {
		return color.NRGBA{A: 255}
	}
	if len(colors) == 1 {
		return colors[0]
	}

	t = clamp01(t)

	segSize := 1.0 / float64(len(colors)-1)
	seg := int(t / segSize)
	if seg >= len(colors)-1 {
		return colors[len(colors)-1]
	}

	local := (t - float64(seg)*segSize) / segSize
	a, b := colors[seg], colors[seg+1]

	return color.NRGBA{
		R: lerpChannel(a.R, b.R, local),
		G: lerpChannel(a.G, b.G, local),
		B: lerpChannel(a.B, b.B, local),
		A: lerpChannel(a.A, b.A, local),
	}
}

// Luminance returns the WCAG relative luminance of a color in [0,1].
func Luminance(c color.NRGBA) float64 {
	r := linearize(float64(c.R) / 255)
	g := linearize(float64(c.G) / 255)
	b := linearize(float64(c.B) / 255)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio returns the WCAG contrast ratio between two colors,
// in the range [1, 21].
func ContrastRatio(a, b color.NRGBA) float64 {
	la, lb := Luminance(a), Luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// IsLight reports whether a color reads as light using perceived-brightness
// weights 0.299/0.587/0.114 against the 127 midpoint.
func IsLight(c color.NRGBA) bool {
	brightness := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	return brightness > 127
}

func expandShorthand(hex string) string {
	var b strings.Builder
	for _, r := range hex {
		b.WriteRune(r)
		b.WriteRune(r)
	}
	return b.String()
}

func parseChannels(hex string) (color.NRGBA, error) {
	r, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return color.NRGBA{}, err
	}
	g, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return color.NRGBA{}, err
	}
	b, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return color.NRGBA{}, err
	}
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

func linearize(ch float64) float64 {
	if ch <= 0.03928 {
		return ch / 12.92
	}
	return math.Pow((ch+0.055)/1.055, 2.4)
}

func clamp01(t float64) float64 {
	// NaN (a 0/0 position ratio on a degenerate axis) maps to 0.
	if math.IsNaN(t) || t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
