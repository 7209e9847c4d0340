package filter

import (
	"image/color"
	"math/rand/v2"
	"slices"

	"github.com/gogpu/texscale/internal/image"
)

// Test helper functions shared across filter tests.

var (
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// createTestRaster creates a raster filled with the given color.
func createTestRaster(w, h int, c color.NRGBA) *image.Raster {
	r := image.NewRaster(w, h)
	r.Fill(c)
	return r
}

// createNoiseRaster creates a raster of deterministic pseudo-random pixels.
func createNoiseRaster(w, h int, seed uint64) *image.Raster {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	r := image.NewRaster(w, h)
	for i := range r.Pix() {
		r.Pix()[i] = uint8(rng.UintN(256))
	}
	return r
}

// createOpaqueNoiseRaster is createNoiseRaster with every alpha set to 255.
func createOpaqueNoiseRaster(w, h int, seed uint64) *image.Raster {
	r := createNoiseRaster(w, h, seed)
	pix := r.Pix()
	for i := 3; i < len(pix); i += 4 {
		pix[i] = 255
	}
	return r
}

// createQuadRaster creates the 2×2 raster [[red, green], [blue, white]].
func createQuadRaster() *image.Raster {
	r := image.NewRaster(2, 2)
	r.SetNRGBA(0, 0, red)
	r.SetNRGBA(1, 0, green)
	r.SetNRGBA(0, 1, blue)
	r.SetNRGBA(1, 1, white)
	return r
}

// referenceMedianAt computes the window median at (x, y) by sorting each
// channel's values.
func referenceMedianAt(src *image.Raster, x, y, window int) color.NRGBA {
	hw := (window - 1) / 2
	var ch [4][]uint8
	for j := -hw; j <= hw; j++ {
		for i := -hw; i <= hw; i++ {
			c := src.NRGBAAt(x+i, y+j)
			ch[0] = append(ch[0], c.R)
			ch[1] = append(ch[1], c.G)
			ch[2] = append(ch[2], c.B)
			ch[3] = append(ch[3], c.A)
		}
	}
	for i := range ch {
		slices.Sort(ch[i])
	}
	mid := window * window / 2
	return color.NRGBA{R: ch[0][mid], G: ch[1][mid], B: ch[2][mid], A: ch[3][mid]}
}
