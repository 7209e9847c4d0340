package filter

import "github.com/gogpu/texscale/internal/image"

// Replicate returns src enlarged by scale on both axes. Every source pixel
// (x, y) becomes the solid scale×scale block whose top-left corner is
// (x*scale, y*scale). A scale below 1 is treated as 1.
func Replicate(src *image.Raster, scale int) *image.Raster {
	if scale < 1 {
		scale = 1
	}

	w, h := src.Width(), src.Height()
	dst := image.NewRaster(w*scale, h*scale)
	srcPix := src.Pix()
	dstPix := dst.Pix()
	dstStride := dst.Stride()

	for y := range h {
		// Expand the first output row of this block, then duplicate it.
		first := dstPix[y*scale*dstStride : (y*scale+1)*dstStride]
		for x := range w {
			s := src.PixOffset(x, y)
			px := srcPix[s : s+image.BytesPerPixel]
			for sx := range scale {
				copy(first[(x*scale+sx)*image.BytesPerPixel:], px)
			}
		}
		for sy := 1; sy < scale; sy++ {
			row := (y*scale + sy) * dstStride
			copy(dstPix[row:row+dstStride], first)
		}
	}

	return dst
}
