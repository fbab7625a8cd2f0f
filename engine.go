package roundicon

import (
	"fmt"
	"image"
	"image/draw"
	"log/slog"
	"sync"
)

// Info summarizes a rounding pass for display.
type Info struct {
	Width         int
	Height        int
	RadiusPx      int
	RadiusPercent int
}

// Engine rounds image corners using a configurable mask rasterizer.
type Engine struct {
	rasterizer Rasterizer
}

// Option configures an Engine.
type Option func(*Engine)

// WithRasterizer selects the mask backend. A nil rasterizer is ignored.
func WithRasterizer(r Rasterizer) Option {
	return func(e *Engine) {
		if r != nil {
			e.rasterizer = r
		}
	}
}

// NewEngine constructs an Engine. Without options it uses VectorRasterizer.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{rasterizer: VectorRasterizer{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine struct {
	once sync.Once
	eng  *Engine
}

func getDefaultEngine() *Engine {
	defaultEngine.once.Do(func() {
		defaultEngine.eng = NewEngine()
	})
	return defaultEngine.eng
}

// RoundCorners applies the default engine to the provided image.
func RoundCorners(img image.Image, radiusPercent int) (*image.NRGBA, Info, error) {
	return getDefaultEngine().RoundCorners(img, radiusPercent)
}

// RoundCorners masks everything outside a rounded rectangle spanning the
// image. The radius is radiusPercent of the smaller dimension. The result is a
// new *image.NRGBA with the source colors and the mask as its alpha channel;
// the source alpha is discarded.
func (e *Engine) RoundCorners(img image.Image, radiusPercent int) (*image.NRGBA, Info, error) {
	if img == nil {
		return nil, Info{}, errNilImage
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, Info{}, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}

	radius := RadiusPixels(width, height, radiusPercent)
	Logger().Debug("rounding corners",
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Int("radius_percent", radiusPercent),
		slog.Int("radius_px", radius),
		slog.String("mask", fmt.Sprintf("%T", e.rasterizer)))

	mask := NewMask(e.rasterizer, width, height, radius)

	out := cloneToNRGBA(img)
	applyMask(out, mask)

	info := Info{Width: width, Height: height, RadiusPx: radius, RadiusPercent: radiusPercent}
	return out, info, nil
}

// cloneToNRGBA copies the image into a fresh NRGBA buffer anchored at the
// origin. Sources without an alpha channel come out fully opaque. NRGBA
// sources are copied row by row so colors under zero alpha survive.
func cloneToNRGBA(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	if s, ok := src.(*image.NRGBA); ok {
		rowLen := bounds.Dx() * 4
		for y := 0; y < bounds.Dy(); y++ {
			off := s.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+rowLen], s.Pix[off:off+rowLen])
		}
		return dst
	}

	draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Src)
	return dst
}

// applyMask overwrites the alpha channel of img with the mask values. Color
// channels are left untouched.
func applyMask(img *image.NRGBA, mask *image.Alpha) {
	bounds := img.Bounds()

	for y := 0; y < bounds.Dy(); y++ {
		row := img.Pix[y*img.Stride:]
		maskRow := mask.Pix[y*mask.Stride:]
		for x := 0; x < bounds.Dx(); x++ {
			row[x*4+3] = maskRow[x]
		}
	}
}
