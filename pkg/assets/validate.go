// validate.go — Upload validation for source images before processing.
package assets

import (
	"fmt"
	"image"
	"os"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Dimension window accepted for uploaded source images.
const (
	minSourceDim = 50
	maxSourceDim = 4096
)

// ValidateImage checks that a source file exists, is within maxSizeMB on
// disk, and decodes to dimensions inside the accepted window.
func ValidateImage(path string, maxSizeMB int) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("image file: %w", err)
	}

	if sizeMB := float64(info.Size()) / (1024 * 1024); sizeMB > float64(maxSizeMB) {
		return fmt.Errorf("image too large: %.1fMB > %dMB", sizeMB, maxSizeMB)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}

	if cfg.Width < minSourceDim || cfg.Height < minSourceDim {
		return fmt.Errorf("image too small: %dx%d (minimum %dpx)", cfg.Width, cfg.Height, minSourceDim)
	}
	if cfg.Width > maxSourceDim || cfg.Height > maxSourceDim {
		return fmt.Errorf("image too large: %dx%d (maximum %dpx)", cfg.Width, cfg.Height, maxSourceDim)
	}

	return nil
}
