package image

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/image/draw"
)

// encoder is shared by every SavePNG/EncodePNG call. Its BufferPool lets
// concurrent encodes reuse zlib and row buffers.
var encoder = png.Encoder{
	CompressionLevel: png.DefaultCompression,
	BufferPool:       &encoderBufferPool{},
}

// encoderBufferPool implements png.EncoderBufferPool on top of sync.Pool.
type encoderBufferPool struct {
	pool sync.Pool
}

func (p *encoderBufferPool) Get() *png.EncoderBuffer {
	b, _ := p.pool.Get().(*png.EncoderBuffer)
	return b
}

func (p *encoderBufferPool) Put(b *png.EncoderBuffer) {
	p.pool.Put(b)
}

// LoadPNG loads a PNG image from the given file path.
func LoadPNG(path string) (*Raster, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return DecodePNG(f)
}

// DecodePNG decodes a PNG image from the given reader.
func DecodePNG(r io.Reader) (*Raster, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode PNG: %w", err)
	}
	return FromStdImage(img), nil
}

// SavePNG writes the raster as a PNG file, creating or truncating it.
// Create failures and encode failures are wrapped separately so callers
// can tell them apart in logs.
func (r *Raster) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := r.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("image: close file: %w", err)
	}
	return nil
}

// EncodePNG encodes the raster as PNG to the given writer.
func (r *Raster) EncodePNG(w io.Writer) error {
	if err := encoder.Encode(w, r.ToStdImage()); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// FromStdImage copies any image.Image into a Raster with origin (0, 0).
// Paletted, grayscale and 16-bit sources are converted to non-premultiplied
// RGBA8. Paletted and NRGBA64 sources never pass through premultiplied
// colour, so translucent pixels keep their exact RGB.
func FromStdImage(img image.Image) *Raster {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	dst := NewRaster(width, height)

	switch src := img.(type) {
	case *image.NRGBA:
		// Most PNG textures decode to NRGBA.
		rowBytes := width * BytesPerPixel
		for y := range height {
			o := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(dst.pix[y*rowBytes:], src.Pix[o:o+rowBytes])
		}
	case *image.Paletted:
		fromPaletted(dst, src)
	case *image.NRGBA64:
		fromNRGBA64(dst, src)
	default:
		draw.Draw(dst.ToStdImage(), image.Rect(0, 0, width, height), img, bounds.Min, draw.Src)
	}
	return dst
}

// fromPaletted converts each palette entry once and indexes through it.
// Indices past the end of the palette read as transparent black.
func fromPaletted(dst *Raster, src *image.Paletted) {
	var lut [256]color.NRGBA
	for i, c := range src.Palette {
		if i == len(lut) {
			break
		}
		if nc, ok := c.(color.NRGBA); ok {
			lut[i] = nc
		} else {
			lut[i] = color.NRGBAModel.Convert(c).(color.NRGBA)
		}
	}

	b := src.Bounds()
	out := dst.pix
	for y := range b.Dy() {
		row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
		for x := range b.Dx() {
			c := lut[row[x]]
			o := (y*dst.width + x) * BytesPerPixel
			out[o+0] = c.R
			out[o+1] = c.G
			out[o+2] = c.B
			out[o+3] = c.A
		}
	}
}

// fromNRGBA64 keeps the high byte of every 16-bit channel.
func fromNRGBA64(dst *Raster, src *image.NRGBA64) {
	b := src.Bounds()
	out := dst.pix
	for y := range b.Dy() {
		row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
		for x := range b.Dx() * BytesPerPixel {
			out[y*dst.Stride()+x] = row[2*x]
		}
	}
}

// ToStdImage returns an *image.NRGBA that shares r's pixel memory.
func (r *Raster) ToStdImage() *image.NRGBA {
	return &image.NRGBA{
		Pix:    r.pix,
		Stride: r.Stride(),
		Rect:   image.Rect(0, 0, r.width, r.height),
	}
}
