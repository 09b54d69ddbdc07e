package normalizer

import (
	"errors"
	"fmt"

	"media-picker/internal/encoder"
	"media-picker/internal/logging"
	"media-picker/internal/media"
	"media-picker/internal/metrics"
	"media-picker/internal/resize"
)

// ErrUnsupportedItem is returned for items that are neither photos nor
// videos, and for nil photos and videos.
var ErrUnsupportedItem = errors.New("unsupported media item")

// Normalizer resizes and encodes picked items one after another.
type Normalizer struct {
	resizer *resize.Resizer
	encoder *encoder.Encoder
}

// New returns a Normalizer.
func New(resizer *resize.Resizer, enc *encoder.Encoder) *Normalizer {
	return &Normalizer{resizer: resizer, encoder: enc}
}

// Normalize processes items in order. The output has one result per item in
// the same order. The first failure aborts the pass and no results are
// returned, even for items already processed.
func (n *Normalizer) Normalize(items []media.Item, opts encoder.Options) ([]media.Result, error) {
	results := make([]media.Result, 0, len(items))

	for i, item := range items {
		result, err := n.normalizeItem(item, opts)
		if err != nil {
			logging.Warn("Normalization aborted at item %d of %d: %v", i+1, len(items), err)
			return nil, err
		}
		results = append(results, result)
	}

	for _, r := range results {
		metrics.ItemsNormalized.WithLabelValues(string(r.Type)).Inc()
	}
	return results, nil
}

func (n *Normalizer) normalizeItem(item media.Item, opts encoder.Options) (media.Result, error) {
	switch it := item.(type) {
	case media.Photo:
		return n.normalizePhoto(it, opts)
	case *media.Photo:
		if it == nil {
			return media.Result{}, fmt.Errorf("%w: nil photo", ErrUnsupportedItem)
		}
		return n.normalizePhoto(*it, opts)
	case media.Video:
		return n.encoder.EncodeVideo(it, opts.AsBase64)
	case *media.Video:
		if it == nil {
			return media.Result{}, fmt.Errorf("%w: nil video", ErrUnsupportedItem)
		}
		return n.encoder.EncodeVideo(*it, opts.AsBase64)
	default:
		return media.Result{}, fmt.Errorf("%w: %T", ErrUnsupportedItem, item)
	}
}

func (n *Normalizer) normalizePhoto(p media.Photo, opts encoder.Options) (media.Result, error) {
	if p.Image == nil {
		return media.Result{}, fmt.Errorf("%w: photo without pixels", ErrUnsupportedItem)
	}
	return n.encoder.EncodeImage(n.resizer.Fit(p.Image), opts)
}
