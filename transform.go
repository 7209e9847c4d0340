package texscale

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/gogpu/texscale/internal/filter"
	"github.com/gogpu/texscale/internal/image"
	"github.com/gogpu/texscale/internal/pack"
)

// TransformBlock upscales a block texture. The source is padded with a
// one-pixel ring of its median edge colour before smoothing so that the
// median sees continuous neighbours at the tile edges; the ring is trimmed
// again afterwards. The result is Scale times larger on both axes.
func TransformBlock(src *Raster, p UpscalingParameters) (*Raster, error) {
	bordered := filter.AddBorder(src)
	out, err := upscale(bordered, p)
	if err != nil {
		return nil, err
	}
	return filter.TrimBorder(out, p.Scale), nil
}

// TransformItem upscales an item texture. Items carry transparent
// surroundings, so no border is added.
func TransformItem(src *Raster, p UpscalingParameters) (*Raster, error) {
	return upscale(src, p)
}

// TransformEntity upscales an entity texture with the item pipeline.
func TransformEntity(src *Raster, p UpscalingParameters) (*Raster, error) {
	return TransformItem(src, p)
}

// Transform dispatches on kind. CopyOnly resources have no pixel transform
// and are returned unchanged.
func Transform(kind Kind, src *Raster, p UpscalingParameters) (*Raster, error) {
	switch kind {
	case KindBlock:
		return TransformBlock(src, p)
	case KindItem:
		return TransformItem(src, p)
	case KindEntity:
		return TransformEntity(src, p)
	default:
		return src, nil
	}
}

// upscale runs replicate, median and mask. src is the mask reference.
func upscale(src *Raster, p UpscalingParameters) (*Raster, error) {
	mask, err := filter.MaskFor(p.Scale)
	if err != nil {
		return nil, err
	}

	enlarged := filter.Replicate(src, p.Scale)
	smoothed := filter.Median(enlarged, p.MedianWindow)
	if err := mask.Apply(src, smoothed); err != nil {
		return nil, err
	}
	return smoothed, nil
}

// processResource handles one resource from input file to output file.
// The returned error is nil or a *ResourceError.
func processResource(inRoot, outRoot string, res ResourceDescriptor, p UpscalingParameters, log *slog.Logger) error {
	src := filepath.Join(inRoot, filepath.FromSlash(res.Path))
	dst := filepath.Join(outRoot, filepath.FromSlash(res.Path))

	fail := func(kind error, err error) error {
		return &ResourceError{Path: res.Path, Kind: res.Kind, Err: fmt.Errorf("%w: %w", kind, err)}
	}

	if !res.Kind.IsTransform() {
		if err := pack.CopyFile(src, dst); err != nil {
			return fail(ErrCopy, err)
		}
		log.Debug("copied", "path", res.Path)
		return nil
	}

	start := time.Now()
	img, err := image.LoadPNG(src)
	if err != nil {
		return fail(ErrDecode, err)
	}
	decoded := time.Now()

	out, err := Transform(res.Kind, img, p)
	if err != nil {
		return &ResourceError{Path: res.Path, Kind: res.Kind, Err: err}
	}
	transformed := time.Now()

	if err := out.SavePNG(dst); err != nil {
		return fail(ErrEncodeOrWrite, err)
	}

	log.Debug("transformed",
		"path", res.Path,
		"kind", res.Kind,
		"size", fmt.Sprintf("%dx%d", out.Width(), out.Height()),
		"decode", decoded.Sub(start),
		"transform", transformed.Sub(decoded),
		"encode", time.Since(transformed),
	)
	return nil
}
