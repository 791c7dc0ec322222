// elements.go — Per-type element renderers: text, button, logo/image, shape.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/admimic/admimic/pkg/adspec"
	"github.com/admimic/admimic/pkg/assets"
	"github.com/admimic/admimic/pkg/colorx"
	"github.com/admimic/admimic/pkg/layout"
)

// renderText wraps the content into the element box and draws it line by
// line, shadow pass first.
func (c *Compositor) renderText(canvas *image.RGBA, el *adspec.Element) error {
	style := el.EffectiveStyling()
	face := c.fonts.Resolve(style.FontFamily, style.FontSize, style.FontWeight)

	box := layout.Box{X: el.Position.X, Y: el.Position.Y, Width: el.Position.Width, Height: el.Position.Height}
	lines := layout.Wrap(el.Content, face, box.Width)
	if len(lines) == 0 {
		return nil
	}

	lineHeight := int(float64(style.FontSize) * style.LineHeight)
	placed := layout.PlaceLines(lines, face, box, style.TextAlign, lineHeight)
	ascent := face.Metrics().Ascent.Ceil()

	textColor := parseColorOr(style.Color, color.NRGBA{0, 0, 0, 255})

	for _, line := range placed {
		if style.Shadow != nil {
			shadowColor, err := colorx.ParseHexA(style.Shadow.Color)
			if err != nil {
				shadowColor = color.NRGBA{0, 0, 0, 32}
			}
			drawString(canvas, face, line.Text, line.X+style.Shadow.X, line.Y+style.Shadow.Y+ascent, shadowColor)
		}
		drawString(canvas, face, line.Text, line.X, line.Y+ascent, textColor)
	}
	return nil
}

// renderButton fills the box (rounded when border_radius > 0) and centers
// the label as a single line; buttons do not wrap.
func (c *Compositor) renderButton(canvas *image.RGBA, el *adspec.Element) error {
	style := el.EffectiveStyling()
	pos := el.Position

	if fillColor, ok := opaqueColor(style.BackgroundColor); ok {
		fillColor.A = scaleAlpha(fillColor.A, *style.Opacity)
		dc := gg.NewContextForRGBA(canvas)
		dc.SetColor(fillColor)
		if style.BorderRadius > 0 {
			dc.DrawRoundedRectangle(float64(pos.X), float64(pos.Y), float64(pos.Width), float64(pos.Height), float64(style.BorderRadius))
		} else {
			dc.DrawRectangle(float64(pos.X), float64(pos.Y), float64(pos.Width), float64(pos.Height))
		}
		dc.Fill()
	}

	if el.Content == "" {
		return nil
	}

	face := c.fonts.Resolve(style.FontFamily, style.FontSize, style.FontWeight)
	textWidth := layout.Width(face, el.Content)

	x := pos.X + (pos.Width-textWidth)/2
	top := pos.Y + (pos.Height-style.FontSize)/2
	baseline := top + face.Metrics().Ascent.Ceil()

	drawString(canvas, face, el.Content, x, baseline, parseColorOr(style.Color, color.NRGBA{255, 255, 255, 255}))
	return nil
}

// renderPicture draws a logo or product element from its variant map:
// pick variant, aspect-fit into the box, center, alpha-composite.
func (c *Compositor) renderPicture(canvas *image.RGBA, el *adspec.Element, variants assets.VariantMap, pick func(assets.VariantMap) (string, error)) error {
	path, err := pick(variants)
	if err != nil {
		return fmt.Errorf("element %q: %w", el.ID, err)
	}

	img, err := imaging.Open(path)
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", assets.ErrAssetNotFound, path, err)
	}

	style := el.EffectiveStyling()
	pos := el.Position

	resized := resizeToFit(img, pos.Width, pos.Height)
	if *style.Opacity < 1.0 {
		resized = applyOpacity(resized, *style.Opacity)
	}

	// Center within the element box.
	offsetX := pos.X + (pos.Width-resized.Bounds().Dx())/2
	offsetY := pos.Y + (pos.Height-resized.Bounds().Dy())/2

	target := image.Rect(offsetX, offsetY, offsetX+resized.Bounds().Dx(), offsetY+resized.Bounds().Dy())
	draw.Draw(canvas, target, resized, image.Point{}, draw.Over)
	return nil
}

// renderShape draws a primitive selected by the content tag.
func (c *Compositor) renderShape(canvas *image.RGBA, el *adspec.Element) error {
	style := el.EffectiveStyling()
	pos := el.Position

	fillColor, ok := opaqueColor(style.BackgroundColor)
	if !ok {
		fillColor = parseColorOr(style.Color, color.NRGBA{0, 0, 0, 255})
	}
	fillColor.A = scaleAlpha(fillColor.A, *style.Opacity)

	dc := gg.NewContextForRGBA(canvas)
	dc.SetColor(fillColor)

	switch strings.ToLower(el.Content) {
	case "circle", "oval":
		dc.DrawEllipse(
			float64(pos.X)+float64(pos.Width)/2,
			float64(pos.Y)+float64(pos.Height)/2,
			float64(pos.Width)/2,
			float64(pos.Height)/2,
		)
	case "rectangle", "rect":
		if style.BorderRadius > 0 {
			dc.DrawRoundedRectangle(float64(pos.X), float64(pos.Y), float64(pos.Width), float64(pos.Height), float64(style.BorderRadius))
		} else {
			dc.DrawRectangle(float64(pos.X), float64(pos.Y), float64(pos.Width), float64(pos.Height))
		}
	default:
		return fmt.Errorf("unknown shape %q", el.Content)
	}

	dc.Fill()
	return nil
}

// resizeToFit scales an image to fit within (maxW, maxH) preserving aspect
// ratio, binding on width when the image is proportionally wider than the
// box and on height otherwise.
func resizeToFit(img image.Image, maxW, maxH int) *image.NRGBA {
	b := img.Bounds()
	imgRatio := float64(b.Dx()) / float64(b.Dy())
	boxRatio := float64(maxW) / float64(maxH)

	var w, h int
	if imgRatio > boxRatio {
		w = maxW
		h = int(float64(maxW) / imgRatio)
	} else {
		h = maxH
		w = int(float64(maxH) * imgRatio)
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return imaging.Resize(img, w, h, imaging.Lanczos)
}

// applyOpacity scales the alpha channel of every pixel.
func applyOpacity(img *image.NRGBA, opacity float64) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	copy(out.Pix, img.Pix)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := out.NRGBAAt(x, y)
			px.A = scaleAlpha(px.A, opacity)
			out.SetNRGBA(x, y, px)
		}
	}
	return out
}

func drawString(canvas *image.RGBA, face font.Face, text string, x, baseline int, col color.NRGBA) {
	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(text)
}

// opaqueColor parses a style color, reporting false for "transparent",
// empty, or malformed values.
func opaqueColor(hex string) (color.NRGBA, bool) {
	if hex == "" || strings.EqualFold(hex, "transparent") {
		return color.NRGBA{}, false
	}
	col, err := colorx.ParseHex(hex)
	if err != nil {
		return color.NRGBA{}, false
	}
	return col, true
}

func parseColorOr(hex string, fallback color.NRGBA) color.NRGBA {
	col, err := colorx.ParseHex(hex)
	if err != nil {
		return fallback
	}
	return col
}

func scaleAlpha(a uint8, opacity float64) uint8 {
	if opacity >= 1.0 {
		return a
	}
	return uint8(float64(a) * opacity)
}
