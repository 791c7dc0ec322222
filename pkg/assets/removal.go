// removal.go — Heuristic background removal: pixels connected to the image
// border and close in color to the sampled border color become transparent.
package assets

import (
	"image"
	"image/color"
)

// Color-distance tolerance (squared Euclidean RGB) for background matching.
const removalTolerance = 40 * 40 * 3

// RemoveBackground isolates the foreground subject by flood-filling from the
// border. Pixels reachable from an edge through colors near the dominant
// border color get zero alpha; everything else is kept as-is.
func RemoveBackground(src image.Image) *image.NRGBA {
	img := toNRGBA(src)
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return img
	}

	bg := borderColor(img)

	visited := make([]bool, w*h)
	queue := make([]image.Point, 0, 2*(w+h))

	enqueue := func(x, y int) {
		idx := y*w + x
		if visited[idx] {
			return
		}
		visited[idx] = true
		if colorDistSq(img.NRGBAAt(b.Min.X+x, b.Min.Y+y), bg) <= removalTolerance {
			queue = append(queue, image.Pt(x, y))
		}
	}

	for x := 0; x < w; x++ {
		enqueue(x, 0)
		enqueue(x, h-1)
	}
	for y := 0; y < h; y++ {
		enqueue(0, y)
		enqueue(w-1, y)
	}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		px := img.NRGBAAt(b.Min.X+p.X, b.Min.Y+p.Y)
		px.A = 0
		img.SetNRGBA(b.Min.X+p.X, b.Min.Y+p.Y, px)

		for _, d := range [4]image.Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := p.X+d.X, p.Y+d.Y
			if nx < 0 || ny < 0 || nx >= w || ny >= h {
				continue
			}
			enqueue(nx, ny)
		}
	}

	return img
}

// borderColor estimates the background color by averaging the pixels along
// all four edges.
func borderColor(img *image.NRGBA) color.NRGBA {
	b := img.Bounds()
	var r, g, bl, n uint64

	sample := func(x, y int) {
		px := img.NRGBAAt(x, y)
		r += uint64(px.R)
		g += uint64(px.G)
		bl += uint64(px.B)
		n++
	}

	for x := b.Min.X; x < b.Max.X; x++ {
		sample(x, b.Min.Y)
		sample(x, b.Max.Y-1)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		sample(b.Min.X, y)
		sample(b.Max.X-1, y)
	}

	if n == 0 {
		return color.NRGBA{255, 255, 255, 255}
	}
	return color.NRGBA{uint8(r / n), uint8(g / n), uint8(bl / n), 255}
}

func colorDistSq(a, b color.NRGBA) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

func toNRGBA(src image.Image) *image.NRGBA {
	if img, ok := src.(*image.NRGBA); ok {
		out := image.NewNRGBA(img.Bounds())
		copy(out.Pix, img.Pix)
		return out
	}
	b := src.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(x, y, src.At(x, y))
		}
	}
	return out
}
