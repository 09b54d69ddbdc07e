package resize

import (
	"fmt"
	"image"
	"time"

	"media-picker/internal/logging"
	"media-picker/internal/metrics"
)

// Resizer applies aspect-fit downscaling with one strategy.
type Resizer struct {
	name         string
	strategy     Strategy
	maxDimension int
}

// New returns a Resizer using the named strategy.
func New(strategy string, maxDimension int) (*Resizer, error) {
	s, ok := Get(strategy)
	if !ok {
		return nil, fmt.Errorf("unknown resize strategy %q (available: %v)", strategy, Names())
	}
	if maxDimension <= 0 {
		return nil, fmt.Errorf("max dimension must be positive, got %d", maxDimension)
	}
	return &Resizer{name: strategy, strategy: s, maxDimension: maxDimension}, nil
}

// Strategy returns the name of the strategy in use.
func (r *Resizer) Strategy() string { return r.name }

// MaxDimension returns the longest edge the resizer produces.
func (r *Resizer) MaxDimension() int { return r.maxDimension }

// Fit downscales src to the max dimension. It never fails: images within
// bounds and images the strategy cannot handle are returned unchanged.
func (r *Resizer) Fit(src image.Image) image.Image {
	b := src.Bounds()
	width, height := FitSize(b.Dx(), b.Dy(), r.maxDimension)
	if width == b.Dx() && height == b.Dy() {
		metrics.ResizeSkipped.Inc()
		return src
	}

	start := time.Now()
	out, err := r.strategy.Resample(src, width, height)
	if err == nil && out == nil {
		err = ErrNoImage
	}
	if err != nil {
		logging.Warn("Resize %dx%d -> %dx%d with %s failed, using original: %v",
			b.Dx(), b.Dy(), width, height, r.name, err)
		metrics.ResizeFallbacks.WithLabelValues(r.name).Inc()
		return src
	}

	metrics.ResizeDuration.WithLabelValues(r.name).Observe(time.Since(start).Seconds())
	logging.Debug("Resized %dx%d -> %dx%d with %s in %v",
		b.Dx(), b.Dy(), width, height, r.name, time.Since(start))
	return out
}
