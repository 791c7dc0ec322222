// output.go — PNG encoding of rendered bitmaps.
package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// WritePNG encodes img to a PNG file at the given path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	return nil
}

// EncodePNG writes img as PNG to w, for in-memory consumers.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	return nil
}
