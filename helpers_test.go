package texscale

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

var scales = []int{4, 8, 16}

func mustParams(t testing.TB, scale int) UpscalingParameters {
	t.Helper()
	p, err := ParametersForScale(scale)
	if err != nil {
		t.Fatalf("ParametersForScale(%d) = %v", scale, err)
	}
	return p
}

// createUniformRaster creates a raster filled with c.
func createUniformRaster(w, h int, c color.NRGBA) *Raster {
	r := NewRaster(w, h)
	r.Fill(c)
	return r
}

// createQuadRaster creates the 2x2 raster [[red, green], [blue, white]].
func createQuadRaster() *Raster {
	r := NewRaster(2, 2)
	r.SetNRGBA(0, 0, red)
	r.SetNRGBA(1, 0, green)
	r.SetNRGBA(0, 1, blue)
	r.SetNRGBA(1, 1, white)
	return r
}

// createCheckerRaster creates a w x h raster of alternating a and b pixels.
func createCheckerRaster(w, h int, a, b color.NRGBA) *Raster {
	r := NewRaster(w, h)
	for y := range h {
		for x := range w {
			if (x+y)%2 == 0 {
				r.SetNRGBA(x, y, a)
			} else {
				r.SetNRGBA(x, y, b)
			}
		}
	}
	return r
}

// writePNG saves r as a PNG at root/rel, creating parent directories.
func writePNG(t *testing.T, root, rel string, r *Raster) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := r.SavePNG(path); err != nil {
		t.Fatalf("SavePNG(%s) = %v", rel, err)
	}
}

// writeFile writes data at root/rel, creating parent directories.
func writeFile(t *testing.T, root, rel string, data []byte) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

// countFiles returns the number of regular files under root.
func countFiles(t *testing.T, root string) int {
	t.Helper()
	n := 0
	err := filepath.WalkDir(root, func(_ string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			n++
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	return n
}
