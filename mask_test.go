package roundicon

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRasterizerByName(t *testing.T) {
	r, err := RasterizerByName("")
	require.NoError(t, err)
	assert.IsType(t, VectorRasterizer{}, r)

	r, err = RasterizerByName(MaskVector)
	require.NoError(t, err)
	assert.IsType(t, VectorRasterizer{}, r)

	r, err = RasterizerByName(MaskGG)
	require.NoError(t, err)
	assert.IsType(t, GGRasterizer{}, r)

	_, err = RasterizerByName("cairo")
	var argErr *ArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, "cairo", argErr.Value)
}

func TestNewMaskZeroRadiusIsOpaque(t *testing.T) {
	mask := NewMask(VectorRasterizer{}, 17, 9, 0)
	require.Equal(t, image.Rect(0, 0, 17, 9), mask.Bounds())
	for i, v := range mask.Pix {
		require.Equal(t, uint8(0xff), v, "pixel %d", i)
	}
}

func TestMaskShape(t *testing.T) {
	for name, r := range rasterizers() {
		t.Run(name, func(t *testing.T) {
			mask := NewMask(r, 200, 100, 30)
			require.Equal(t, image.Rect(0, 0, 200, 100), mask.Bounds())

			// Outside every arc.
			for _, p := range []image.Point{{0, 0}, {199, 0}, {0, 99}, {199, 99}, {3, 3}} {
				assert.Equal(t, uint8(0), mask.AlphaAt(p.X, p.Y).A, "outside %v", p)
			}
			// Straight edges and the body are fully covered.
			for _, p := range []image.Point{{100, 50}, {100, 2}, {2, 50}, {197, 50}, {100, 97}, {30, 30}} {
				assert.Equal(t, uint8(0xff), mask.AlphaAt(p.X, p.Y).A, "inside %v", p)
			}
		})
	}
}

func TestMaskIsSymmetric(t *testing.T) {
	mask := NewMask(VectorRasterizer{}, 64, 48, 14)
	w, h := 64, 48

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := int(mask.AlphaAt(x, y).A)
			assert.InDelta(t, a, int(mask.AlphaAt(w-1-x, y).A), 2, "mirror x at %d,%d", x, y)
			assert.InDelta(t, a, int(mask.AlphaAt(x, h-1-y).A), 2, "mirror y at %d,%d", x, y)
		}
	}
}

func TestMaskAntiAliasesArcs(t *testing.T) {
	mask := NewMask(VectorRasterizer{}, 128, 128, 40)

	partial := 0
	for _, v := range mask.Pix {
		if v != 0 && v != 0xff {
			partial++
		}
	}
	assert.Positive(t, partial, "expected intermediate coverage on the arcs")
}

func TestMaskOversizedRadiusIsClamped(t *testing.T) {
	for name, r := range rasterizers() {
		clamped := r.RoundedRect(80, 40, 20)
		oversized := r.RoundedRect(80, 40, 500)
		assert.Equal(t, clamped.Pix, oversized.Pix, name)
	}
}
