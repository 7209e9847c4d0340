package texscale

import (
	"errors"
	"fmt"

	"github.com/gogpu/texscale/internal/filter"
)

// Fatal errors abort a run before any resource is processed.
var (
	// ErrConfiguration is returned for an unsupported scale.
	ErrConfiguration = errors.New("texscale: configuration error")

	// ErrDiscovery is returned when the input tree cannot be walked or a
	// path cannot be made relative to the input root.
	ErrDiscovery = errors.New("texscale: discovery error")

	// ErrDirectoryCreation is returned when the output tree cannot be created.
	ErrDirectoryCreation = errors.New("texscale: cannot create output directory")
)

// Resource-local errors are reported per resource; the batch continues.
var (
	// ErrDecode is returned when a source file is missing or not a valid PNG.
	ErrDecode = errors.New("texscale: decode error")

	// ErrEncodeOrWrite is returned when an output file cannot be created,
	// encoded or written.
	ErrEncodeOrWrite = errors.New("texscale: encode or write error")

	// ErrCopy is returned when a copy-only resource cannot be copied.
	ErrCopy = errors.New("texscale: copy error")
)

// ErrMaskLookup is returned when a scale reaches the mask stage without a
// defined mask table. Validated parameters never trigger it.
var ErrMaskLookup = filter.ErrMaskLookup

// ResourceError records the failure of a single resource.
type ResourceError struct {
	Path string
	Kind Kind
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}
