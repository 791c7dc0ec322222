// background.go — Canvas background fills: solid, gradient, image.
package render

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"

	"github.com/admimic/admimic/pkg/adspec"
	"github.com/admimic/admimic/pkg/colorx"
)

// ErrUnsupportedBackground reports a background the renderer cannot draw.
// It never surfaces to callers: drawBackground degrades to a white fill.
var ErrUnsupportedBackground = errors.New("unsupported background")

var white = color.NRGBA{255, 255, 255, 255}

// drawBackground renders the canvas fill. Malformed backgrounds are
// non-fatal: the canvas falls back to solid white.
func (c *Compositor) drawBackground(canvas *image.RGBA, bg adspec.Background) {
	var err error
	switch bg.Type {
	case adspec.BackgroundSolid:
		err = fillSolid(canvas, bg.Value)
	case adspec.BackgroundGradient:
		err = fillGradientBackground(canvas, bg)
	case adspec.BackgroundImage:
		err = fillImage(canvas, bg.Value)
	default:
		err = ErrUnsupportedBackground
	}

	if err != nil {
		c.log.Warn().Err(err).Msg("background rendering failed, using white")
		fill(canvas, white)
	}
}

func fillSolid(canvas *image.RGBA, hex string) error {
	col, err := colorx.ParseHex(hex)
	if err != nil {
		return err
	}
	fill(canvas, col)
	return nil
}

func fillGradientBackground(canvas *image.RGBA, bg adspec.Background) error {
	if len(bg.GradientColors) < 2 {
		return fillSolid(canvas, bg.Value)
	}

	stops := make([]color.NRGBA, 0, len(bg.GradientColors))
	for _, hex := range bg.GradientColors {
		col, err := colorx.ParseHex(hex)
		if err != nil {
			return err
		}
		stops = append(stops, col)
	}

	fillGradient(canvas, stops, bg.GradientDirection)
	return nil
}

// fillGradient interpolates the stops along the requested axis. Vertical and
// horizontal fill by row/column; diagonal and radial compute a per-pixel
// ratio.
func fillGradient(canvas *image.RGBA, stops []color.NRGBA, dir adspec.GradientDirection) {
	b := canvas.Bounds()
	w, h := b.Dx(), b.Dy()

	switch dir {
	case adspec.GradientHorizontal:
		for x := 0; x < w; x++ {
			col := colorx.Interpolate(stops, float64(x)/float64(w))
			for y := 0; y < h; y++ {
				canvas.SetRGBA(b.Min.X+x, b.Min.Y+y, rgba(col))
			}
		}

	case adspec.GradientDiagonal:
		// span is 0 on a 1x1 canvas; the single pixel takes the first stop.
		span := float64(w + h - 2)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				var t float64
				if span > 0 {
					t = float64(x+y) / span
				}
				canvas.SetRGBA(b.Min.X+x, b.Min.Y+y, rgba(colorx.Interpolate(stops, t)))
			}
		}

	case adspec.GradientRadial:
		cx, cy := float64(w-1)/2, float64(h-1)/2
		maxDist := math.Hypot(cx, cy)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				var t float64
				if maxDist > 0 {
					t = math.Hypot(float64(x)-cx, float64(y)-cy) / maxDist
				}
				canvas.SetRGBA(b.Min.X+x, b.Min.Y+y, rgba(colorx.Interpolate(stops, t)))
			}
		}

	default: // vertical
		for y := 0; y < h; y++ {
			col := colorx.Interpolate(stops, float64(y)/float64(h))
			for x := 0; x < w; x++ {
				canvas.SetRGBA(b.Min.X+x, b.Min.Y+y, rgba(col))
			}
		}
	}
}

// fillImage stretches a background image to exactly the canvas size,
// ignoring aspect ratio.
func fillImage(canvas *image.RGBA, path string) error {
	img, err := imaging.Open(path)
	if err != nil {
		return err
	}

	b := canvas.Bounds()
	stretched := imaging.Resize(img, b.Dx(), b.Dy(), imaging.Lanczos)
	draw.Draw(canvas, b, stretched, image.Point{}, draw.Src)
	return nil
}

func rgba(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
