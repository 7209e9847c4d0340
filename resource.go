package texscale

import (
	"fmt"
	"path"
	"strings"

	"github.com/gogpu/texscale/internal/pack"
)

// Kind is the category of a resource. It selects how the resource is
// processed.
type Kind uint8

const (
	// KindCopyOnly resources are copied byte for byte.
	KindCopyOnly Kind = iota

	// KindBlock textures are padded, upscaled and trimmed.
	KindBlock

	// KindItem textures are upscaled without padding.
	KindItem

	// KindEntity textures are processed like items.
	KindEntity

	// kindCount is the number of kinds (for internal use).
	kindCount
)

// Kinds lists every kind in dispatch order.
var Kinds = [kindCount]Kind{KindCopyOnly, KindBlock, KindItem, KindEntity}

var kindNames = [kindCount]string{"copy", "block", "item", "entity"}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsTransform reports whether resources of kind k go through the pixel
// pipeline instead of being copied.
func (k Kind) IsTransform() bool {
	return k == KindBlock || k == KindItem || k == KindEntity
}

// ResourceDescriptor is one discovered file and its category.
type ResourceDescriptor struct {
	// Path is relative to the input root and slash-separated.
	Path string
	Kind Kind
}

// Classify returns the kind of the resource at the relative, slash-separated
// path p:
//   - anything that is not a .png file, and PNGs under a "colormap"
//     directory, are copied
//   - PNGs under an "items" or "item" directory are items
//   - PNGs under an "entity" directory are entities
//   - every other PNG is a block
func Classify(p string) Kind {
	if !strings.EqualFold(path.Ext(p), ".png") {
		return KindCopyOnly
	}

	dirs := strings.Split(path.Dir(p), "/")
	switch {
	case hasSegment(dirs, "colormap"):
		return KindCopyOnly
	case hasSegment(dirs, "items", "item"):
		return KindItem
	case hasSegment(dirs, "entity"):
		return KindEntity
	default:
		return KindBlock
	}
}

func hasSegment(dirs []string, names ...string) bool {
	for _, d := range dirs {
		for _, n := range names {
			if strings.EqualFold(d, n) {
				return true
			}
		}
	}
	return false
}

// Describe classifies every path, keeping the input order.
func Describe(paths []string) []ResourceDescriptor {
	out := make([]ResourceDescriptor, len(paths))
	for i, p := range paths {
		out[i] = ResourceDescriptor{Path: p, Kind: Classify(p)}
	}
	return out
}

// Discover walks inputRoot and returns a descriptor for every file in it,
// in lexical path order. Failures are wrapped in ErrDiscovery.
func Discover(inputRoot string, followLinks bool) ([]ResourceDescriptor, error) {
	paths, err := pack.Walk(inputRoot, followLinks)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDiscovery, err)
	}
	return Describe(paths), nil
}

// PrepareOutput creates the output directory tree for resources under
// outputRoot. Failures are wrapped in ErrDirectoryCreation.
func PrepareOutput(outputRoot string, resources []ResourceDescriptor) error {
	paths := make([]string, len(resources))
	for i, r := range resources {
		paths[i] = r.Path
	}
	if err := pack.MirrorDirs(outputRoot, paths); err != nil {
		return fmt.Errorf("%w: %w", ErrDirectoryCreation, err)
	}
	return nil
}
