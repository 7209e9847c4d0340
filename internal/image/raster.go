// Package image provides the RGBA8 raster used by the texscale pipeline.
//
// A Raster stores non-premultiplied pixels in a contiguous byte slice,
// four bytes per pixel in R, G, B, A order, with no row padding, so
// len(Pix()) == Width()*Height()*4 always holds.
package image

import (
	"errors"
	"fmt"
	"image/color"
)

// BytesPerPixel is the size of one RGBA8 pixel.
const BytesPerPixel = 4

// ErrInvalidDimensions is reported when width or height is negative.
var ErrInvalidDimensions = errors.New("image: invalid dimensions")

// Raster is an owned grid of RGBA8 pixels.
//
// A Raster is owned by exactly one pipeline stage at a time. It is safe for
// concurrent reads; writes require exclusive ownership.
type Raster struct {
	width  int
	height int
	pix    []uint8
}

// NewRaster creates a fully transparent raster. It panics if width or
// height is negative.
func NewRaster(width, height int) *Raster {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("image: NewRaster(%d, %d): %v", width, height, ErrInvalidDimensions))
	}
	return &Raster{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*BytesPerPixel),
	}
}

// Width returns the width in pixels.
func (r *Raster) Width() int { return r.width }

// Height returns the height in pixels.
func (r *Raster) Height() int { return r.height }

// Pix returns the underlying pixel bytes.
func (r *Raster) Pix() []uint8 { return r.pix }

// Stride returns the number of bytes per row.
func (r *Raster) Stride() int { return r.width * BytesPerPixel }

// PixOffset returns the index of the first byte of pixel (x, y).
func (r *Raster) PixOffset(x, y int) int {
	return (y*r.width + x) * BytesPerPixel
}

// InBounds reports whether (x, y) is a pixel of r.
func (r *Raster) InBounds(x, y int) bool {
	return x >= 0 && x < r.width && y >= 0 && y < r.height
}

// NRGBAAt returns the color of pixel (x, y).
// Out-of-bounds coordinates return the zero color.
func (r *Raster) NRGBAAt(x, y int) color.NRGBA {
	if !r.InBounds(x, y) {
		return color.NRGBA{}
	}
	i := r.PixOffset(x, y)
	p := r.pix[i : i+4 : i+4]
	return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// SetNRGBA sets the color of pixel (x, y). Out-of-bounds writes are ignored.
func (r *Raster) SetNRGBA(x, y int, c color.NRGBA) {
	if !r.InBounds(x, y) {
		return
	}
	i := r.PixOffset(x, y)
	p := r.pix[i : i+4 : i+4]
	p[0] = c.R
	p[1] = c.G
	p[2] = c.B
	p[3] = c.A
}

// Fill sets every pixel to c.
func (r *Raster) Fill(c color.NRGBA) {
	for i := 0; i < len(r.pix); i += BytesPerPixel {
		r.pix[i+0] = c.R
		r.pix[i+1] = c.G
		r.pix[i+2] = c.B
		r.pix[i+3] = c.A
	}
}

// Clone returns a deep copy of r.
func (r *Raster) Clone() *Raster {
	pix := make([]uint8, len(r.pix))
	copy(pix, r.pix)
	return &Raster{width: r.width, height: r.height, pix: pix}
}

// Equal reports whether r and o have the same dimensions and pixels.
func (r *Raster) Equal(o *Raster) bool {
	if r.width != o.width || r.height != o.height {
		return false
	}
	for i := range r.pix {
		if r.pix[i] != o.pix[i] {
			return false
		}
	}
	return true
}

// CopyRect returns a new raster holding the width×height window of r whose
// top-left corner is (x0, y0). The window must lie inside r.
func (r *Raster) CopyRect(x0, y0, width, height int) *Raster {
	if x0 < 0 || y0 < 0 || width < 0 || height < 0 || x0+width > r.width || y0+height > r.height {
		panic(fmt.Sprintf("image: CopyRect(%d, %d, %d, %d) outside %dx%d raster",
			x0, y0, width, height, r.width, r.height))
	}
	dst := NewRaster(width, height)
	rowBytes := width * BytesPerPixel
	for y := range height {
		src := r.PixOffset(x0, y0+y)
		copy(dst.pix[y*rowBytes:(y+1)*rowBytes], r.pix[src:src+rowBytes])
	}
	return dst
}

// Paste copies src into r with src's top-left corner at (x0, y0).
// Pixels falling outside r are clipped.
func (r *Raster) Paste(src *Raster, x0, y0 int) {
	for y := range src.height {
		dy := y0 + y
		if dy < 0 || dy >= r.height {
			continue
		}
		for x := range src.width {
			dx := x0 + x
			if dx < 0 || dx >= r.width {
				continue
			}
			s := src.PixOffset(x, y)
			copy(r.pix[r.PixOffset(dx, dy):], src.pix[s:s+4])
		}
	}
}
