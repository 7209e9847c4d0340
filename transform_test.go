package texscale

import (
	"errors"
	"image/color"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"testing"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestTransform_UniformRoundTrip(t *testing.T) {
	c := color.NRGBA{R: 90, G: 140, B: 30, A: 255}
	transforms := []struct {
		name string
		fn   func(*Raster, UpscalingParameters) (*Raster, error)
	}{
		{"block", TransformBlock},
		{"item", TransformItem},
		{"entity", TransformEntity},
	}

	for _, tr := range transforms {
		for _, scale := range scales {
			t.Run(tr.name+"/"+formatScale(scale), func(t *testing.T) {
				src := createUniformRaster(5, 3, c)
				got, err := tr.fn(src, mustParams(t, scale))
				if err != nil {
					t.Fatalf("transform = %v", err)
				}
				if got.Width() != 5*scale || got.Height() != 3*scale {
					t.Fatalf("size = %dx%d, want %dx%d", got.Width(), got.Height(), 5*scale, 3*scale)
				}
				if !got.Equal(createUniformRaster(5*scale, 3*scale, c)) {
					t.Error("uniform input did not produce a uniform output")
				}
			})
		}
	}
}

func TestTransformBlock_TrimDimensions(t *testing.T) {
	src := createCheckerRaster(7, 4, red, blue)
	for _, scale := range scales {
		got, err := TransformBlock(src, mustParams(t, scale))
		if err != nil {
			t.Fatalf("scale %d: %v", scale, err)
		}
		if got.Width() != 7*scale || got.Height() != 4*scale {
			t.Errorf("scale %d: size = %dx%d, want %dx%d",
				scale, got.Width(), got.Height(), 7*scale, 4*scale)
		}
	}
}

func TestTransformBlock_MaskFallsBackToSource(t *testing.T) {
	// Every masked-out pixel of a block output carries the colour of the
	// source pixel it was replicated from.
	src := createCheckerRaster(4, 4, red, blue)
	p := mustParams(t, 8)
	got, err := TransformBlock(src, p)
	if err != nil {
		t.Fatal(err)
	}
	for y := range got.Height() {
		for x := range got.Width() {
			if (x%8 == 0 || x%8 == 7) && (y%8 == 0 || y%8 == 7) {
				if want := src.NRGBAAt(x/8, y/8); got.NRGBAAt(x, y) != want {
					t.Fatalf("corner (%d,%d) = %v, want %v", x, y, got.NRGBAAt(x, y), want)
				}
			}
		}
	}
}

func TestTransformItem_QuadScenario(t *testing.T) {
	src := createQuadRaster()
	got, err := TransformItem(src, mustParams(t, 4))
	if err != nil {
		t.Fatalf("TransformItem() = %v", err)
	}
	if got.Width() != 8 || got.Height() != 8 {
		t.Fatalf("size = %dx%d, want 8x8", got.Width(), got.Height())
	}

	// Quadrant corners fall back to the original colour.
	for qy := range 2 {
		for qx := range 2 {
			want := src.NRGBAAt(qx, qy)
			for _, dy := range []int{0, 3} {
				for _, dx := range []int{0, 3} {
					x, y := qx*4+dx, qy*4+dy
					if c := got.NRGBAAt(x, y); c != want {
						t.Errorf("quadrant (%d,%d) corner (%d,%d) = %v, want %v", qx, qy, x, y, c, want)
					}
				}
			}
		}
	}

	// The red quadrant's interior is dominated by red.
	for _, pt := range [][2]int{{1, 1}, {2, 2}, {1, 2}, {2, 1}} {
		if c := got.NRGBAAt(pt[0], pt[1]); c != red {
			t.Errorf("pixel %v = %v, want red", pt, c)
		}
	}
}

func TestTransform_Deterministic(t *testing.T) {
	src := createCheckerRaster(6, 6, green, white)
	p := mustParams(t, 16)
	a, err := TransformBlock(src, p)
	if err != nil {
		t.Fatal(err)
	}
	b, err := TransformBlock(src, p)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Error("two runs over the same input differ")
	}
}

func TestTransform_DoesNotModifySource(t *testing.T) {
	src := createQuadRaster()
	before := src.Clone()
	for _, kind := range []Kind{KindBlock, KindItem, KindEntity} {
		if _, err := Transform(kind, src, mustParams(t, 4)); err != nil {
			t.Fatal(err)
		}
	}
	if !src.Equal(before) {
		t.Error("transform modified its source raster")
	}
}

func TestTransform_CopyOnlyPassesThrough(t *testing.T) {
	src := createQuadRaster()
	got, err := Transform(KindCopyOnly, src, mustParams(t, 4))
	if err != nil || got != src {
		t.Errorf("Transform(KindCopyOnly) = %p, %v; want source, nil", got, err)
	}
}

func TestTransform_MaskLookup(t *testing.T) {
	p := UpscalingParameters{Scale: 5, MedianWindow: 3}
	if _, err := TransformItem(createQuadRaster(), p); !errors.Is(err, ErrMaskLookup) {
		t.Errorf("TransformItem(scale 5) = %v, want ErrMaskLookup", err)
	}
	if _, err := TransformBlock(createQuadRaster(), p); !errors.Is(err, ErrMaskLookup) {
		t.Errorf("TransformBlock(scale 5) = %v, want ErrMaskLookup", err)
	}
}

func TestProcessResource_Errors(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	writeFile(t, in, "block/broken.png", []byte("not a png"))
	writePNG(t, in, "item/ok.png", createQuadRaster())
	p := mustParams(t, 4)

	tests := []struct {
		name string
		res  ResourceDescriptor
		want error
	}{
		{"missing source", ResourceDescriptor{Path: "block/missing.png", Kind: KindBlock}, ErrDecode},
		{"invalid png", ResourceDescriptor{Path: "block/broken.png", Kind: KindBlock}, ErrDecode},
		// The output directory was never created.
		{"unwritable output", ResourceDescriptor{Path: "item/ok.png", Kind: KindItem}, ErrEncodeOrWrite},
		{"missing copy source", ResourceDescriptor{Path: "lang/en.json", Kind: KindCopyOnly}, ErrCopy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := processResource(in, out, tt.res, p, discard)
			if !errors.Is(err, tt.want) {
				t.Fatalf("processResource() = %v, want %v", err, tt.want)
			}
			var re *ResourceError
			if !errors.As(err, &re) {
				t.Fatalf("processResource() = %T, want *ResourceError", err)
			}
			if re.Path != tt.res.Path || re.Kind != tt.res.Kind {
				t.Errorf("ResourceError = {%s %v}, want {%s %v}", re.Path, re.Kind, tt.res.Path, tt.res.Kind)
			}
		})
	}
}

func TestProcessResource_WritesOutput(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	writePNG(t, in, "item/apple.png", createQuadRaster())
	if err := PrepareOutput(out, Describe([]string{"item/apple.png"})); err != nil {
		t.Fatal(err)
	}

	res := ResourceDescriptor{Path: "item/apple.png", Kind: KindItem}
	if err := processResource(in, out, res, mustParams(t, 4), discard); err != nil {
		t.Fatalf("processResource() = %v", err)
	}

	got, err := LoadPNG(filepath.Join(out, "item", "apple.png"))
	if err != nil {
		t.Fatal(err)
	}
	want, _ := TransformItem(createQuadRaster(), mustParams(t, 4))
	if !got.Equal(want) {
		t.Error("written PNG differs from the in-memory transform")
	}
}

func formatScale(scale int) string {
	return "x" + strconv.Itoa(scale)
}

func BenchmarkTransformBlock(b *testing.B) {
	src := createCheckerRaster(16, 16, red, blue)
	for _, scale := range scales {
		p := mustParams(b, scale)
		b.Run(formatScale(scale), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := TransformBlock(src, p); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
