// Package filter implements the pixel stages of the texscale pipeline.
//
// This package contains:
//   - Nearest-neighbour replication by an integer factor
//   - Per-channel median smoothing over a square window
//   - Circular corner masks for scales 2, 4, 8 and 16
//   - Synthetic border padding and trimming for block textures
//
// Every stage except the mask overlay returns a fresh raster and leaves
// its input untouched. The mask overlay writes into the smoothed raster,
// which it must own exclusively.
package filter
