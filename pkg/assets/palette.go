// palette.go — Brand palette extraction via median-cut quantization.
package assets

import (
	"image"
	"image/color"
	"slices"
	"sort"

	"github.com/disintegration/imaging"

	"github.com/admimic/admimic/pkg/colorx"
)

// FallbackPalette is returned when extraction cannot produce anything useful.
// Callers receive a fresh copy each time.
var FallbackPalette = []string{"#000000", "#FFFFFF"}

func fallbackPalette() []string {
	return slices.Clone(FallbackPalette)
}

// Sampling cap: palettes stabilize long before every pixel is considered.
const maxPaletteSamples = 10000

// ExtractPalette returns up to n hex colors: the dominant color first,
// followed by a deduplicated quantized palette in population order.
func ExtractPalette(img image.Image, n int) []string {
	if img == nil || n <= 0 {
		return fallbackPalette()
	}

	pixels := samplePixels(img)
	if len(pixels) == 0 {
		return fallbackPalette()
	}

	dominant := colorx.ToHex(dominantOf(pixels))

	colors := []string{dominant}
	for _, box := range medianCut(pixels, n) {
		colors = append(colors, colorx.ToHex(box.average()))
	}

	// Deduplicate preserving order, then truncate.
	seen := make(map[string]struct{}, len(colors))
	unique := colors[:0]
	for _, c := range colors {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		unique = append(unique, c)
	}
	if len(unique) > n {
		unique = unique[:n]
	}
	return unique
}

// ExtractPaletteFile is ExtractPalette over a file path. Unreadable files
// yield the fallback palette.
func ExtractPaletteFile(path string, n int) []string {
	img, err := imaging.Open(path)
	if err != nil {
		return fallbackPalette()
	}
	return ExtractPalette(img, n)
}

// DominantColor returns the single most representative color of the image.
func DominantColor(img image.Image) color.NRGBA {
	pixels := samplePixels(img)
	if len(pixels) == 0 {
		return color.NRGBA{A: 255}
	}
	return dominantOf(pixels)
}

func dominantOf(pixels []color.NRGBA) color.NRGBA {
	boxes := medianCut(pixels, 5)
	best := boxes[0]
	for _, b := range boxes[1:] {
		if len(b.pixels) > len(best.pixels) {
			best = b
		}
	}
	return best.average()
}

// samplePixels collects mostly-opaque pixels, striding so at most
// maxPaletteSamples are considered.
func samplePixels(img image.Image) []color.NRGBA {
	b := img.Bounds()
	total := b.Dx() * b.Dy()
	if total == 0 {
		return nil
	}

	stride := 1
	for total/(stride*stride) > maxPaletteSamples {
		stride++
	}

	var pixels []color.NRGBA
	for y := b.Min.Y; y < b.Max.Y; y += stride {
		for x := b.Min.X; x < b.Max.X; x += stride {
			r, g, bl, a := img.At(x, y).RGBA()
			if a>>8 < 125 {
				continue
			}
			pixels = append(pixels, color.NRGBA{uint8(r >> 8), uint8(g >> 8), uint8(bl >> 8), 255})
		}
	}
	return pixels
}

// colorBox is one region of color space during median-cut.
type colorBox struct {
	pixels []color.NRGBA
}

// medianCut splits the pixel set into up to n boxes, repeatedly halving the
// most populous splittable box along its widest channel. Boxes come back in
// descending population order.
func medianCut(pixels []color.NRGBA, n int) []colorBox {
	boxes := []colorBox{{pixels: pixels}}

	for len(boxes) < n {
		// Pick the most populous box that can still split.
		idx := -1
		for i, b := range boxes {
			if len(b.pixels) < 2 {
				continue
			}
			if idx == -1 || len(b.pixels) > len(boxes[idx].pixels) {
				idx = i
			}
		}
		if idx == -1 {
			break
		}

		lo, hi := boxes[idx].split()
		boxes[idx] = lo
		boxes = append(boxes, hi)
	}

	sort.SliceStable(boxes, func(i, j int) bool {
		return len(boxes[i].pixels) > len(boxes[j].pixels)
	})
	return boxes
}

// split halves the box at the median of its widest channel.
func (b colorBox) split() (colorBox, colorBox) {
	channel := b.widestChannel()

	sorted := make([]color.NRGBA, len(b.pixels))
	copy(sorted, b.pixels)
	sort.Slice(sorted, func(i, j int) bool {
		return channelValue(sorted[i], channel) < channelValue(sorted[j], channel)
	})

	mid := len(sorted) / 2
	return colorBox{pixels: sorted[:mid]}, colorBox{pixels: sorted[mid:]}
}

func (b colorBox) widestChannel() int {
	var minC, maxC [3]uint8
	for i := range minC {
		minC[i] = 255
	}
	for _, p := range b.pixels {
		for c := 0; c < 3; c++ {
			v := channelValue(p, c)
			if v < minC[c] {
				minC[c] = v
			}
			if v > maxC[c] {
				maxC[c] = v
			}
		}
	}

	widest, span := 0, -1
	for c := 0; c < 3; c++ {
		if s := int(maxC[c]) - int(minC[c]); s > span {
			widest, span = c, s
		}
	}
	return widest
}

func (b colorBox) average() color.NRGBA {
	if len(b.pixels) == 0 {
		return color.NRGBA{A: 255}
	}
	var r, g, bl uint64
	for _, p := range b.pixels {
		r += uint64(p.R)
		g += uint64(p.G)
		bl += uint64(p.B)
	}
	n := uint64(len(b.pixels))
	return color.NRGBA{uint8(r / n), uint8(g / n), uint8(bl / n), 255}
}

func channelValue(c color.NRGBA, channel int) uint8 {
	switch channel {
	case 0:
		return c.R
	case 1:
		return c.G
	default:
		return c.B
	}
}
