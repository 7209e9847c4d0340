package filter

import (
	"image/color"

	"github.com/gogpu/texscale/internal/image"
)

// EdgeColor returns the per-channel median of the pixels on the outer ring
// of src: the top and bottom rows plus the left and right columns, each
// pixel counted once. An empty raster yields the zero color.
func EdgeColor(src *image.Raster) color.NRGBA {
	w, h := src.Width(), src.Height()
	if w == 0 || h == 0 {
		return color.NRGBA{}
	}

	edge := make([]color.NRGBA, 0, 2*w+2*h)
	for x := range w {
		edge = append(edge, src.NRGBAAt(x, 0))
	}
	if h > 1 {
		for x := range w {
			edge = append(edge, src.NRGBAAt(x, h-1))
		}
	}
	for y := 1; y < h-1; y++ {
		edge = append(edge, src.NRGBAAt(0, y))
		if w > 1 {
			edge = append(edge, src.NRGBAAt(w-1, y))
		}
	}

	return MedianColor(edge)
}

// AddBorder returns a copy of src grown by one pixel on every side. The new
// ring is filled with EdgeColor(src).
func AddBorder(src *image.Raster) *image.Raster {
	dst := image.NewRaster(src.Width()+2, src.Height()+2)
	dst.Fill(EdgeColor(src))
	dst.Paste(src, 1, 1)
	return dst
}

// TrimBorder removes the replicated border ring that AddBorder introduced
// before a scale× enlargement. The result is (Width()-2*scale) ×
// (Height()-2*scale), copied from offset (scale, scale).
func TrimBorder(src *image.Raster, scale int) *image.Raster {
	return src.CopyRect(scale, scale, src.Width()-2*scale, src.Height()-2*scale)
}
