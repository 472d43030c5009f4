// Package preview rasterizes a ring selection to a PNG for inspection.
//
// Selected rings are filled with the non-zero rule after applying their
// Reversed flag, so a reversed ring inside a kept ring shows up as a hole.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/overlay"
)

// ErrEmptySelection is returned by Render when nothing was selected.
var ErrEmptySelection = errors.New("preview: empty selection")

// margin is the blank border around the drawing, in pixels.
const margin = 4

// Render draws the rings of sel onto a size x size image. a and b are the
// geometries the selection was made from; b may be nil.
func Render(sel overlay.SelectionMap, a, b overlay.Geometry, size int) (*image.Alpha, error) {
	rings := selectedRings(sel, a, b)
	if len(rings) == 0 {
		return nil, ErrEmptySelection
	}

	minP, maxP := bounds(rings)
	span := math.Max(maxP.X-minP.X, maxP.Y-minP.Y)
	if span == 0 {
		span = 1
	}
	scale := float64(size-2*margin) / span

	// Image rows grow downwards; flip Y.
	toPixel := func(p overlay.Point) (float32, float32) {
		x := margin + (p.X-minP.X)*scale
		y := float64(size) - margin - (p.Y-minP.Y)*scale
		return float32(x), float32(y)
	}

	z := vector.NewRasterizer(size, size)
	for _, r := range rings {
		if len(r) < 3 {
			continue
		}
		z.MoveTo(toPixel(r[0]))
		for _, p := range r[1:] {
			z.LineTo(toPixel(p))
		}
		z.ClosePath()
	}

	dst := image.NewAlpha(image.Rect(0, 0, size, size))
	z.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{A: 0xff}), image.Point{})
	return dst, nil
}

// selectedRings resolves the coordinates of every selected ring, reversed
// where the selection says so, in identifier order.
func selectedRings(sel overlay.SelectionMap, a, b overlay.Geometry) []overlay.Ring {
	coords := make(map[overlay.RingID]overlay.Ring, len(sel))
	collect := func(id overlay.RingID, r overlay.Ring) {
		if _, ok := sel[id]; ok {
			coords[id] = r
		}
	}
	overlay.EnumerateRings(a, overlay.NewRingID(0, overlay.NoMulti, overlay.ExteriorRing), collect)
	if b != nil {
		overlay.EnumerateRings(b, overlay.NewRingID(1, overlay.NoMulti, overlay.ExteriorRing), collect)
	}

	rings := make([]overlay.Ring, 0, len(coords))
	for _, id := range sel.IDs() {
		r, ok := coords[id]
		if !ok {
			continue
		}
		if sel[id].Reversed {
			r = r.Reversed()
		}
		rings = append(rings, r)
	}
	return rings
}

func bounds(rings []overlay.Ring) (minP, maxP overlay.Point) {
	minP = overlay.Pt(math.MaxFloat64, math.MaxFloat64)
	maxP = overlay.Pt(-math.MaxFloat64, -math.MaxFloat64)
	for _, r := range rings {
		for _, p := range r {
			minP = overlay.Pt(math.Min(minP.X, p.X), math.Min(minP.Y, p.Y))
			maxP = overlay.Pt(math.Max(maxP.X, p.X), math.Max(maxP.Y, p.Y))
		}
	}
	return minP, maxP
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// SavePNG renders the selection and writes it to path.
func SavePNG(path string, sel overlay.SelectionMap, a, b overlay.Geometry, size int) error {
	img, err := Render(sel, a, b, size)
	if err != nil {
		return err
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	return Encode(f, img)
}
