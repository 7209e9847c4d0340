// Package texscale upscales low-resolution resource-pack textures with a
// fixed, deterministic pipeline.
//
// # Overview
//
// Each texture is enlarged by integer pixel replication, smoothed with a
// per-channel median filter, and then overlaid with a circular mask: pixels
// outside the circle inscribed in each enlarged source pixel fall back to
// the original colour, which rounds the corners of every blocky pixel.
//
// Supported scales and their median windows:
//
//	scale  window  pack resolution (16px base)
//	  4      3        64
//	  8      5       128
//	 16      9       256
//
// # Resource kinds
//
// Block textures tile seamlessly, so they are padded with a one-pixel ring
// of their median edge colour before smoothing, and the ring is trimmed off
// afterwards. Item and entity textures are upscaled as-is. Anything else,
// including non-PNG files, is copied byte for byte. See [Classify].
//
// # Quick Start
//
//	params, err := texscale.ParseScaleCode(64)
//	if err != nil {
//	    return err
//	}
//	resources, err := texscale.Discover("in", false)
//	if err != nil {
//	    return err
//	}
//	if err := texscale.PrepareOutput("out", resources); err != nil {
//	    return err
//	}
//	report, err := texscale.Run(ctx, texscale.Batch{
//	    InputRoot:  "in",
//	    OutputRoot: "out",
//	    Resources:  resources,
//	    Params:     params,
//	})
//
// The single-image transforms [TransformBlock] and [TransformItem] can be
// used directly on a [Raster].
//
// # Concurrency
//
// [Run] launches one task per resource on a bounded work-stealing pool
// and joins the kinds in a fixed order. A failed resource is recorded in
// the [Report] and never stops the others.
//
// # Logging
//
// The package is silent by default. Install a logger with [SetLogger] or
// pass [WithLogger] to a single [Run].
package texscale
