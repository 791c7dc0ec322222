// Package render composites a declarative ad structure into a raster image:
// background first, then elements in ascending z-order, then a flatten and
// sharpen pass. One Render call owns its canvas exclusively; independent
// calls may run concurrently.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sort"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"

	"github.com/admimic/admimic/pkg/adspec"
	"github.com/admimic/admimic/pkg/assets"
	"github.com/admimic/admimic/pkg/fonts"
)

// Compositor renders ad structures against a shared font resolver.
type Compositor struct {
	fonts *fonts.Resolver
	log   zerolog.Logger
}

// NewCompositor creates a compositor. The logger may be zerolog.Nop().
func NewCompositor(resolver *fonts.Resolver, log zerolog.Logger) *Compositor {
	return &Compositor{fonts: resolver, log: log}
}

// SkippedElement records one element that failed to render and was omitted.
type SkippedElement struct {
	ID  string
	Err error
}

// Report summarizes non-fatal degradations during one render.
type Report struct {
	Skipped []SkippedElement
}

// Render composites the structure into an opaque bitmap of exactly the
// canvas dimensions. A failing element is recorded in the report and
// skipped; only canvas-level failures return an error.
func (c *Compositor) Render(s *adspec.AdStructure, logoAssets, productAssets assets.VariantMap) (image.Image, Report, error) {
	var report Report
	if s == nil {
		return nil, report, fmt.Errorf("render: nil structure")
	}

	canvas := image.NewRGBA(image.Rect(0, 0, s.Canvas.Width, s.Canvas.Height))

	c.drawBackground(canvas, s.Canvas.Background)

	// Ascending z-order; ties keep input order.
	ordered := make([]adspec.Element, len(s.Elements))
	copy(ordered, s.Elements)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ZIndex < ordered[j].ZIndex
	})

	for i := range ordered {
		el := &ordered[i]
		c.log.Debug().Str("element", el.ID).Str("type", string(el.Type)).Msg("rendering element")

		if err := c.renderElement(canvas, el, logoAssets, productAssets); err != nil {
			c.log.Error().Str("element", el.ID).Err(err).Msg("element skipped")
			report.Skipped = append(report.Skipped, SkippedElement{ID: el.ID, Err: err})
		}
	}

	return finalize(canvas), report, nil
}

// RenderToFile renders the structure and writes the result as a PNG.
func (c *Compositor) RenderToFile(s *adspec.AdStructure, logoAssets, productAssets assets.VariantMap, outPath string) (Report, error) {
	img, report, err := c.Render(s, logoAssets, productAssets)
	if err != nil {
		return report, err
	}
	if err := WritePNG(outPath, img); err != nil {
		return report, err
	}
	c.log.Info().Str("output", outPath).Int("skipped", len(report.Skipped)).Msg("render complete")
	return report, nil
}

// renderElement dispatches over the closed element-type vocabulary.
func (c *Compositor) renderElement(canvas *image.RGBA, el *adspec.Element, logoAssets, productAssets assets.VariantMap) error {
	switch el.Type {
	case adspec.ElementText:
		return c.renderText(canvas, el)
	case adspec.ElementButton:
		return c.renderButton(canvas, el)
	case adspec.ElementLogo:
		return c.renderPicture(canvas, el, logoAssets, assets.VariantMap.PickLogo)
	case adspec.ElementImage:
		return c.renderPicture(canvas, el, productAssets, assets.VariantMap.PickProduct)
	case adspec.ElementBackground:
		return c.renderShape(canvas, el)
	default:
		return fmt.Errorf("unknown element type %q", el.Type)
	}
}

// finalize flattens any remaining alpha onto an opaque white background and
// applies a mild sharpen so text stays crisp through compositing.
func finalize(canvas *image.RGBA) *image.NRGBA {
	b := canvas.Bounds()
	out := imaging.New(b.Dx(), b.Dy(), color.NRGBA{255, 255, 255, 255})
	out = imaging.Overlay(out, canvas, image.Point{}, 1.0)
	return imaging.Sharpen(out, 0.3)
}

// fill paints a uniform color over the whole canvas.
func fill(canvas *image.RGBA, c color.NRGBA) {
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
}
