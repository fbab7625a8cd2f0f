package roundicon

import (
	"image"
	"image/draw"
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/image/vector"
)

// kappa places the control points of a cubic Bézier approximating a quarter
// circle.
const kappa = 0.5522847498307936

// Rasterizer renders an anti-aliased rounded-rectangle coverage mask spanning
// the whole width x height canvas. Pixels inside the shape are 255, pixels
// outside are 0.
type Rasterizer interface {
	RoundedRect(width, height int, radius float64) *image.Alpha
}

// Mask backend names accepted by RasterizerByName.
const (
	MaskVector = "vector"
	MaskGG     = "gg"
)

// RasterizerByName resolves a mask backend name. An empty name selects the
// vector backend.
func RasterizerByName(name string) (Rasterizer, error) {
	switch name {
	case "", MaskVector:
		return VectorRasterizer{}, nil
	case MaskGG:
		return GGRasterizer{}, nil
	default:
		return nil, &ArgumentError{Name: "mask backend", Value: name}
	}
}

// NewMask renders the rounded-rectangle mask for the given canvas. A radius of
// zero or less yields a fully opaque mask without touching the rasterizer.
func NewMask(r Rasterizer, width, height, radius int) *image.Alpha {
	if radius <= 0 {
		mask := image.NewAlpha(image.Rect(0, 0, width, height))
		for i := range mask.Pix {
			mask.Pix[i] = 0xff
		}
		return mask
	}
	return r.RoundedRect(width, height, float64(radius))
}

// clampRadius limits the radius to half of the smaller side, matching what the
// drawing primitives do.
func clampRadius(width, height int, radius float64) float64 {
	return math.Max(0, math.Min(radius, float64(min(width, height))/2))
}

// VectorRasterizer fills the outline with golang.org/x/image/vector.
type VectorRasterizer struct{}

// RoundedRect implements Rasterizer.
func (VectorRasterizer) RoundedRect(width, height int, radius float64) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, width, height))

	r := float32(clampRadius(width, height, radius))
	k := r * kappa
	w, h := float32(width), float32(height)

	z := vector.NewRasterizer(width, height)
	z.DrawOp = draw.Src

	z.MoveTo(r, 0)
	z.LineTo(w-r, 0)
	z.CubeTo(w-r+k, 0, w, r-k, w, r)
	z.LineTo(w, h-r)
	z.CubeTo(w, h-r+k, w-r+k, h, w-r, h)
	z.LineTo(r, h)
	z.CubeTo(r-k, h, 0, h-r+k, 0, h-r)
	z.LineTo(0, r)
	z.CubeTo(0, r-k, r-k, 0, r, 0)
	z.ClosePath()

	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// GGRasterizer draws the outline with the gg software renderer and reads the
// coverage back through a gg.Mask.
type GGRasterizer struct{}

// RoundedRect implements Rasterizer.
func (GGRasterizer) RoundedRect(width, height int, radius float64) *image.Alpha {
	dc := gg.NewContext(width, height)
	defer dc.Close()

	dc.DrawRoundedRectangle(0, 0, float64(width), float64(height), clampRadius(width, height, radius))
	coverage := dc.AsMask()

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	copy(mask.Pix, coverage.Data())
	return mask
}
