// pipeline.go — Variant generation for uploaded logos and product images.
package assets

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Pipeline derives named image variants from one source file per call. Calls
// are independent; run one per worker for throughput.
type Pipeline struct {
	maxSize int
	log     zerolog.Logger
}

// NewPipeline creates a pipeline. maxSize bounds output dimensions
// (values < 1 default to 2048). The logger may be zerolog.Nop().
func NewPipeline(maxSize int, log zerolog.Logger) *Pipeline {
	if maxSize < 1 {
		maxSize = 2048
	}
	return &Pipeline{maxSize: maxSize, log: log}
}

// ProcessLogo derives the logo variant set: original, transparent, white,
// black, high_contrast. Every key is always present for a readable source;
// a failed derivation step falls back to its input image.
func (p *Pipeline) ProcessLogo(sourcePath, outDir string) (VariantMap, error) {
	original, outDir, err := p.prepare(sourcePath, outDir)
	if err != nil {
		return nil, err
	}
	p.log.Info().Str("source", sourcePath).Str("dir", outDir).Msg("processing logo")

	variants := VariantMap{}
	p.save(variants, outDir, VariantOriginal, original)

	transparent := p.derive(VariantTransparent, original, func(in *image.NRGBA) *image.NRGBA {
		return RemoveBackground(in)
	})
	p.save(variants, outDir, VariantTransparent, transparent)

	p.save(variants, outDir, VariantWhite, monochrome(transparent, color.NRGBA{255, 255, 255, 255}))
	p.save(variants, outDir, VariantBlack, monochrome(transparent, color.NRGBA{0, 0, 0, 255}))
	p.save(variants, outDir, VariantHighContrast, p.derive(VariantHighContrast, transparent, enhanceContrast))

	p.log.Info().Int("variants", len(variants)).Msg("logo variants created")
	return variants, nil
}

// ProcessProduct derives the product variant set: original, transparent,
// with_shadow, enhanced.
func (p *Pipeline) ProcessProduct(sourcePath, outDir string) (VariantMap, error) {
	original, outDir, err := p.prepare(sourcePath, outDir)
	if err != nil {
		return nil, err
	}
	p.log.Info().Str("source", sourcePath).Str("dir", outDir).Msg("processing product image")

	variants := VariantMap{}
	p.save(variants, outDir, VariantOriginal, original)

	transparent := p.derive(VariantTransparent, original, func(in *image.NRGBA) *image.NRGBA {
		return RemoveBackground(in)
	})
	p.save(variants, outDir, VariantTransparent, transparent)

	p.save(variants, outDir, VariantWithShadow, p.derive(VariantWithShadow, transparent, dropShadow))
	p.save(variants, outDir, VariantEnhanced, p.derive(VariantEnhanced, transparent, enhanceProduct))

	p.log.Info().Int("variants", len(variants)).Msg("product variants created")
	return variants, nil
}

// prepare loads and size-normalizes the source and ensures the output
// directory exists. An empty outDir gets a fresh session-scoped directory.
func (p *Pipeline) prepare(sourcePath, outDir string) (*image.NRGBA, string, error) {
	src, err := imaging.Open(sourcePath)
	if err != nil {
		return nil, "", fmt.Errorf("open source image: %w", err)
	}

	if outDir == "" {
		outDir = filepath.Join(os.TempDir(), "admimic-assets", uuid.NewString())
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, "", fmt.Errorf("create variant dir: %w", err)
	}

	return normalizeSize(src, p.maxSize), outDir, nil
}

// derive runs one variant step with isolation: a panic inside the transform
// is recovered and the input image is used unchanged.
func (p *Pipeline) derive(name string, in *image.NRGBA, step func(*image.NRGBA) *image.NRGBA) (out *image.NRGBA) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Warn().Str("variant", name).Interface("cause", r).Msg("variant step failed, using unprocessed image")
			out = in
		}
	}()
	return step(in)
}

// save writes one variant PNG and records it in the map. A write failure is
// logged and the key skipped; it never aborts the remaining variants.
func (p *Pipeline) save(variants VariantMap, outDir, name string, img *image.NRGBA) {
	path := filepath.Join(outDir, name+".png")
	if err := imaging.Save(img, path); err != nil {
		p.log.Error().Str("variant", name).Err(err).Msg("failed to write variant")
		return
	}
	variants[name] = path
}
