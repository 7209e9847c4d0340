package texscale

import "github.com/gogpu/texscale/internal/image"

// Raster is an owned RGBA8 pixel grid, non-premultiplied, row-major.
type Raster = image.Raster

// NewRaster returns a transparent raster of the given size.
func NewRaster(width, height int) *Raster {
	return image.NewRaster(width, height)
}

// LoadPNG decodes the PNG file at path into a raster.
func LoadPNG(path string) (*Raster, error) {
	return image.LoadPNG(path)
}
