package filter

import (
	"image/color"
	"slices"

	"github.com/gogpu/texscale/internal/image"
)

// MedianFilter replaces every interior pixel with the per-channel median of
// its Window×Window neighbourhood.
//
// R, G, B and A are filtered independently, so the output color need not
// equal any single input color. Pixels closer than Radius() to an edge keep
// their input value; no read ever falls outside the raster.
type MedianFilter struct {
	// Window is the side of the square neighbourhood. It should be odd;
	// an even value is widened by one.
	Window int
}

// NewMedianFilter creates a median filter with the given window side.
func NewMedianFilter(window int) *MedianFilter {
	return &MedianFilter{Window: window}
}

// Radius returns the half-width of the window, (Window-1)/2 for odd windows.
func (f *MedianFilter) Radius() int {
	if f.Window <= 1 {
		return 0
	}
	return f.Window / 2
}

// Apply filters src and returns the result as a new raster of the same size.
//
// Each row is swept left to right with a sliding histogram per channel:
// moving one pixel drops one column and adds one column, and the median is
// read back from a two-level histogram.
func (f *MedianFilter) Apply(src *image.Raster) *image.Raster {
	dst := src.Clone()

	r := f.Radius()
	m := 2*r + 1
	w, h := src.Width(), src.Height()
	if r == 0 || w < m || h < m {
		return dst
	}

	pix := src.Pix()
	out := dst.Pix()
	stride := src.Stride()
	k := m*m/2 + 1

	var hist windowHistogram
	for y := r; y < h-r; y++ {
		hist.reset()
		top := y - r
		for x := range m {
			hist.addColumn(pix, stride, x, top, m)
		}

		for x := r; x < w-r; x++ {
			if x > r {
				hist.removeColumn(pix, stride, x-r-1, top, m)
				hist.addColumn(pix, stride, x+r, top, m)
			}
			o := y*stride + x*image.BytesPerPixel
			out[o+0] = hist[0].rank(k)
			out[o+1] = hist[1].rank(k)
			out[o+2] = hist[2].rank(k)
			out[o+3] = hist[3].rank(k)
		}
	}

	return dst
}

// Median is shorthand for NewMedianFilter(window).Apply(src).
func Median(src *image.Raster, window int) *image.Raster {
	return NewMedianFilter(window).Apply(src)
}

// MedianColor returns the per-channel median of colors. For an even count
// the upper of the two middle values is used. An empty slice yields the
// zero color.
func MedianColor(colors []color.NRGBA) color.NRGBA {
	if len(colors) == 0 {
		return color.NRGBA{}
	}

	var ch [4][]uint8
	for i := range ch {
		ch[i] = make([]uint8, len(colors))
	}
	for i, c := range colors {
		ch[0][i] = c.R
		ch[1][i] = c.G
		ch[2][i] = c.B
		ch[3][i] = c.A
	}

	mid := len(colors) / 2
	for i := range ch {
		slices.Sort(ch[i])
	}
	return color.NRGBA{R: ch[0][mid], G: ch[1][mid], B: ch[2][mid], A: ch[3][mid]}
}

// windowHistogram holds one histogram per RGBA channel.
type windowHistogram [4]channelHistogram

func (wh *windowHistogram) reset() {
	*wh = windowHistogram{}
}

// addColumn adds the m pixels of column x starting at row top.
func (wh *windowHistogram) addColumn(pix []uint8, stride, x, top, m int) {
	o := top*stride + x*image.BytesPerPixel
	for range m {
		wh[0].add(pix[o+0])
		wh[1].add(pix[o+1])
		wh[2].add(pix[o+2])
		wh[3].add(pix[o+3])
		o += stride
	}
}

// removeColumn undoes addColumn for the same arguments.
func (wh *windowHistogram) removeColumn(pix []uint8, stride, x, top, m int) {
	o := top*stride + x*image.BytesPerPixel
	for range m {
		wh[0].remove(pix[o+0])
		wh[1].remove(pix[o+1])
		wh[2].remove(pix[o+2])
		wh[3].remove(pix[o+3])
		o += stride
	}
}

// channelHistogram counts the 8-bit values of one channel in the window.
// Each coarse bin covers 16 fine bins, so a rank query visits at most 32.
type channelHistogram struct {
	fine   [256]uint16
	coarse [16]uint16
}

func (h *channelHistogram) add(v uint8) {
	h.fine[v]++
	h.coarse[v>>4]++
}

func (h *channelHistogram) remove(v uint8) {
	h.fine[v]--
	h.coarse[v>>4]--
}

// rank returns the k-th smallest counted value (1-based).
func (h *channelHistogram) rank(k int) uint8 {
	n := 0
	c := 0
	for ; c < 15; c++ {
		next := n + int(h.coarse[c])
		if next >= k {
			break
		}
		n = next
	}

	base := c << 4
	for v := base; v < base+15; v++ {
		n += int(h.fine[v])
		if n >= k {
			return uint8(v)
		}
	}
	return uint8(base + 15)
}
