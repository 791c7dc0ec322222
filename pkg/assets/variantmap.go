// Package assets derives named brand-asset variants (background removal,
// recolors, shadows, enhancement) and extracts brand color palettes. Variant
// maps are produced once per source image and read-only afterwards.
package assets

import (
	"errors"
	"sort"
)

// ErrAssetNotFound reports a variant map with no usable entry.
var ErrAssetNotFound = errors.New("asset not found")

// Variant names produced by the pipeline.
const (
	VariantOriginal     = "original"
	VariantTransparent  = "transparent"
	VariantWhite        = "white"
	VariantBlack        = "black"
	VariantHighContrast = "high_contrast"
	VariantWithShadow   = "with_shadow"
	VariantEnhanced     = "enhanced"
)

// VariantMap maps variant names to image file locations.
type VariantMap map[string]string

// PickLogo returns the preferred logo variant: transparent, then original,
// then the first available entry in name order.
func (m VariantMap) PickLogo() (string, error) {
	return m.pick(VariantTransparent, VariantOriginal)
}

// PickProduct returns the preferred product variant: enhanced, then
// transparent, then original, then the first available entry in name order.
func (m VariantMap) PickProduct() (string, error) {
	return m.pick(VariantEnhanced, VariantTransparent, VariantOriginal)
}

func (m VariantMap) pick(preferred ...string) (string, error) {
	if len(m) == 0 {
		return "", ErrAssetNotFound
	}
	for _, name := range preferred {
		if path, ok := m[name]; ok && path != "" {
			return path, nil
		}
	}

	// Fall back to any entry, deterministically.
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if m[name] != "" {
			return m[name], nil
		}
	}
	return "", ErrAssetNotFound
}
