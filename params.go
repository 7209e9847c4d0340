package texscale

import "fmt"

// UpscalingParameters is the resolved scale configuration for a run.
// It is fixed for the whole batch.
type UpscalingParameters struct {
	// Scale is the integer magnification on both axes: 4, 8 or 16.
	Scale int

	// MedianWindow is the smoothing window paired with Scale: 3, 5 or 9.
	MedianWindow int
}

// scaleTable pairs each supported scale with its median window and with
// the resource-pack resolution it produces from 16px textures.
var scaleTable = []struct {
	scale      int
	window     int
	resolution int
}{
	{scale: 4, window: 3, resolution: 64},
	{scale: 8, window: 5, resolution: 128},
	{scale: 16, window: 9, resolution: 256},
}

// DefaultScaleCode is the scale code used when none is given.
const DefaultScaleCode = 64

// ParametersForScale returns the parameters for scale 4, 8 or 16.
// Any other value yields ErrConfiguration.
func ParametersForScale(scale int) (UpscalingParameters, error) {
	for _, e := range scaleTable {
		if e.scale == scale {
			return UpscalingParameters{Scale: e.scale, MedianWindow: e.window}, nil
		}
	}
	return UpscalingParameters{}, fmt.Errorf("%w: unsupported scale %d, choose 4, 8 or 16", ErrConfiguration, scale)
}

// ParseScaleCode resolves a user-supplied scale code. The code is either
// the scale factor itself (4, 8, 16) or the target pack resolution
// (64, 128, 256).
func ParseScaleCode(code int) (UpscalingParameters, error) {
	for _, e := range scaleTable {
		if e.scale == code || e.resolution == code {
			return UpscalingParameters{Scale: e.scale, MedianWindow: e.window}, nil
		}
	}
	return UpscalingParameters{}, fmt.Errorf("%w: unsupported scale %d, choose 64, 128 or 256 (or 4, 8, 16)",
		ErrConfiguration, code)
}

// Validate reports ErrConfiguration unless p is one of the fixed pairs.
func (p UpscalingParameters) Validate() error {
	want, err := ParametersForScale(p.Scale)
	if err != nil {
		return err
	}
	if p != want {
		return fmt.Errorf("%w: scale %d requires median window %d, got %d",
			ErrConfiguration, p.Scale, want.MedianWindow, p.MedianWindow)
	}
	return nil
}

func (p UpscalingParameters) String() string {
	return fmt.Sprintf("x%d (median %dx%d)", p.Scale, p.MedianWindow, p.MedianWindow)
}
