// variants.go — Image-space transforms behind the named variants.
package assets

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Drop-shadow defaults, matching the rendered house style.
var (
	shadowOffset = image.Pt(8, 8)
	shadowBlur   = 15
	shadowColor  = color.NRGBA{0, 0, 0, 64}
)

// normalizeSize downscales an image so neither dimension exceeds maxSize,
// preserving aspect ratio. Smaller images pass through untouched.
func normalizeSize(img image.Image, maxSize int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= maxSize && b.Dy() <= maxSize {
		return toNRGBA(img)
	}
	return imaging.Fit(img, maxSize, maxSize, imaging.Lanczos)
}

// monochrome recolors every visible pixel to the flat target color while
// preserving per-pixel alpha, producing a silhouette.
func monochrome(img *image.NRGBA, target color.NRGBA) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			a := img.NRGBAAt(x, y).A
			if a > 0 {
				out.SetNRGBA(x, y, color.NRGBA{target.R, target.G, target.B, a})
			}
		}
	}
	return out
}

// enhanceContrast boosts contrast then sharpens slightly, for logos that
// must survive busy backgrounds.
func enhanceContrast(img *image.NRGBA) *image.NRGBA {
	out := imaging.AdjustContrast(img, 50)
	return imaging.Sharpen(out, 0.5)
}

// enhanceProduct applies the product glamour pass: brightness, contrast,
// saturation, then a mild sharpen, in that order.
func enhanceProduct(img *image.NRGBA) *image.NRGBA {
	out := imaging.AdjustBrightness(img, 10)
	out = imaging.AdjustContrast(out, 20)
	out = imaging.AdjustSaturation(out, 15)
	return imaging.Sharpen(out, 0.3)
}

// dropShadow composites a blurred, offset silhouette of the alpha mask
// beneath the image. The canvas is padded by the blur radius so the shadow
// never clips.
func dropShadow(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	w := b.Dx() + abs(shadowOffset.X) + shadowBlur*2
	h := b.Dy() + abs(shadowOffset.Y) + shadowBlur*2

	// Silhouette carrying the shadow color, alpha scaled by the source mask.
	silhouette := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			a := img.NRGBAAt(b.Min.X+x, b.Min.Y+y).A
			if a > 0 {
				silhouette.SetNRGBA(x, y, color.NRGBA{
					shadowColor.R, shadowColor.G, shadowColor.B,
					uint8(int(a) * int(shadowColor.A) / 255),
				})
			}
		}
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, w, h))
	canvas = imaging.Paste(canvas, silhouette, image.Pt(shadowBlur+shadowOffset.X, shadowBlur+shadowOffset.Y))
	canvas = imaging.Blur(canvas, float64(shadowBlur)/2)

	return imaging.Overlay(canvas, img, image.Pt(shadowBlur, shadowBlur), 1.0)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
