// Package layout implements greedy word-wrapping and line placement for
// text rendered into a fixed pixel box.
package layout

import (
	"strings"

	"golang.org/x/image/font"

	"github.com/admimic/admimic/pkg/adspec"
)

// Box is a pixel-space rectangle lines are placed into.
type Box struct {
	X, Y, Width, Height int
}

// PlacedLine is one wrapped line with its top-left position. Y is the top of
// the line; callers drawing through a baseline API add the face ascent.
type PlacedLine struct {
	Text string
	X, Y int
}

// Width measures the rendered advance of s in pixels.
func Width(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// Wrap breaks text into lines that each fit maxWidth using greedy word
// accumulation. A single word wider than maxWidth is placed alone on its own
// line rather than truncated. Non-empty input always yields at least one line.
func Wrap(text string, face font.Face, maxWidth int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if maxWidth <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	var current []string

	for _, word := range words {
		test := strings.Join(append(current, word), " ")
		if Width(face, test) <= maxWidth {
			current = append(current, word)
			continue
		}
		if len(current) > 0 {
			lines = append(lines, strings.Join(current, " "))
			current = []string{word}
		} else {
			// Oversized single word goes on its own line.
			lines = append(lines, word)
		}
	}

	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return lines
}

// PlaceLines assigns each wrapped line a position inside box. Horizontal
// placement follows align (justify renders as left). Vertical placement
// starts at box.Y, except center alignment which also centers the block
// vertically — the two axes are coupled this way in the upstream behavior we
// preserve.
func PlaceLines(lines []string, face font.Face, box Box, align adspec.TextAlign, lineHeightPx int) []PlacedLine {
	if len(lines) == 0 {
		return nil
	}

	totalHeight := len(lines) * lineHeightPx
	startY := box.Y
	if align == adspec.AlignCenter {
		startY = box.Y + (box.Height-totalHeight)/2
	}

	placed := make([]PlacedLine, 0, len(lines))
	for i, line := range lines {
		w := Width(face, line)

		x := box.X
		switch align {
		case adspec.AlignCenter:
			x = box.X + (box.Width-w)/2
		case adspec.AlignRight:
			x = box.X + box.Width - w
		}

		placed = append(placed, PlacedLine{
			Text: line,
			X:    x,
			Y:    startY + i*lineHeightPx,
		})
	}
	return placed
}
