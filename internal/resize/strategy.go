package resize

import (
	"errors"
	"fmt"
	"image"
	"sort"
)

// Strategy resamples an image to an exact size.
type Strategy interface {
	Resample(src image.Image, width, height int) (image.Image, error)
}

// StrategyFunc adapts a function to Strategy.
type StrategyFunc func(src image.Image, width, height int) (image.Image, error)

// Resample implements Strategy.
func (f StrategyFunc) Resample(src image.Image, width, height int) (image.Image, error) {
	return f(src, width, height)
}

// Registered strategy names.
const (
	DirectDraw  = "direct-draw"
	FilterGraph = "filter-graph"
	RawBitmap   = "raw-bitmap"
	Thumbnail   = "thumbnail"
	Vectorized  = "vectorized"

	DefaultStrategy = RawBitmap
)

// MaxCanvasPixels bounds every canvas a strategy allocates.
const MaxCanvasPixels = 100_000_000

// ErrNoImage is returned when a strategy cannot allocate or produce an image.
var ErrNoImage = errors.New("no image")

var registry = map[string]Strategy{
	DirectDraw:  StrategyFunc(directDraw),
	FilterGraph: StrategyFunc(filterGraph),
	RawBitmap:   StrategyFunc(rawBitmap),
	Thumbnail:   StrategyFunc(thumbnail),
	Vectorized:  StrategyFunc(vectorized),
}

// Get looks up a strategy by name.
func Get(name string) (Strategy, bool) {
	s, ok := registry[name]
	return s, ok
}

// Names returns the registered strategy names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// checkCanvas validates a resample request before any allocation.
func checkCanvas(src image.Image, width, height int) error {
	if src == nil || src.Bounds().Empty() {
		return fmt.Errorf("%w: empty source", ErrNoImage)
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: invalid size %dx%d", ErrNoImage, width, height)
	}
	if width*height > MaxCanvasPixels {
		return fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrNoImage, width, height, MaxCanvasPixels)
	}
	return nil
}
