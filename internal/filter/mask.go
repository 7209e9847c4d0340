package filter

import (
	"errors"
	"fmt"

	"github.com/gogpu/texscale/internal/image"
)

// Mask errors.
var (
	// ErrMaskLookup is returned when no circular mask exists for a scale.
	ErrMaskLookup = errors.New("filter: no circular mask for scale")

	// ErrSizeMismatch is returned when the smoothed raster is not exactly
	// scale times the size of the original raster.
	ErrSizeMismatch = errors.New("filter: raster size does not match scale")
)

// Mask is a square keep/fall-back table for one scale.
//
// Keep(dy, dx) is true where the smoothed value stays and false where the
// original low-resolution color is restored. The false cells sit in the
// corners of each scale×scale block, so applying the mask rounds the blocks.
type Mask struct {
	size int
	keep []bool
}

// masks holds the read-only table for every supported scale.
var masks = map[int]*Mask{
	2:  solidMask(2),
	4:  circleMask(4),
	8:  circleMask(8),
	16: circleMask(16),
}

// MaskFor returns the circular mask for scale.
// Scale 2 has no corners to round and keeps every position.
func MaskFor(scale int) (*Mask, error) {
	m, ok := masks[scale]
	if !ok {
		return nil, fmt.Errorf("%w %d", ErrMaskLookup, scale)
	}
	return m, nil
}

// Size returns the side of the table.
func (m *Mask) Size() int { return m.size }

// Keep reports whether the smoothed value is kept at block offset (dy, dx).
// It panics if either offset is outside [0, Size()).
func (m *Mask) Keep(dy, dx int) bool {
	if dy < 0 || dy >= m.size || dx < 0 || dx >= m.size {
		panic(fmt.Sprintf("filter: mask offset (%d, %d) outside %dx%d table", dy, dx, m.size, m.size))
	}
	return m.keep[dy*m.size+dx]
}

// String renders the table one row per line, '#' for keep and '.' for
// fall back.
func (m *Mask) String() string {
	b := make([]byte, 0, m.size*(m.size+1))
	for dy := range m.size {
		for dx := range m.size {
			if m.keep[dy*m.size+dx] {
				b = append(b, '#')
			} else {
				b = append(b, '.')
			}
		}
		b = append(b, '\n')
	}
	return string(b)
}

// Apply overwrites smoothed in place: wherever the mask says fall back,
// pixel (x, y) takes the color of original pixel (x/scale, y/scale).
// smoothed must be exactly Size() times larger than original on both axes.
func (m *Mask) Apply(original, smoothed *image.Raster) error {
	s := m.Size()
	if smoothed.Width() != original.Width()*s || smoothed.Height() != original.Height()*s {
		return fmt.Errorf("%w: %dx%d is not %d×%dx%d", ErrSizeMismatch,
			smoothed.Width(), smoothed.Height(), s, original.Width(), original.Height())
	}

	src := original.Pix()
	dst := smoothed.Pix()
	for y := range smoothed.Height() {
		row := m.keep[(y%s)*s : (y%s+1)*s]
		for x := range smoothed.Width() {
			if row[x%s] {
				continue
			}
			o := original.PixOffset(x/s, y/s)
			copy(dst[smoothed.PixOffset(x, y):], src[o:o+image.BytesPerPixel])
		}
	}
	return nil
}

// ApplyCircularMask looks up the mask for scale and applies it.
// It fails with ErrMaskLookup when scale has no table.
func ApplyCircularMask(original, smoothed *image.Raster, scale int) error {
	m, err := MaskFor(scale)
	if err != nil {
		return err
	}
	return m.Apply(original, smoothed)
}

// circleMask keeps the cells whose centers lie within size/2 of the block
// center. In doubled integer coordinates the test is
// (2dx+1-size)² + (2dy+1-size)² <= size².
func circleMask(size int) *Mask {
	m := &Mask{size: size, keep: make([]bool, size*size)}
	for dy := range size {
		for dx := range size {
			ex := 2*dx + 1 - size
			ey := 2*dy + 1 - size
			m.keep[dy*size+dx] = ex*ex+ey*ey <= size*size
		}
	}
	return m
}

func solidMask(size int) *Mask {
	m := &Mask{size: size, keep: make([]bool, size*size)}
	for i := range m.keep {
		m.keep[i] = true
	}
	return m
}
