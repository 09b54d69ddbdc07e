package picker

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"media-picker/internal/logging"
	"media-picker/internal/media"
	"media-picker/internal/mediatypes"
	"media-picker/internal/pickconfig"
)

// Outcome is the single completion of a pick.
type Outcome struct {
	Cancelled bool
	Items     []media.Item
}

// Picker collects media from the user.
type Picker interface {
	Pick(ctx context.Context, cfg pickconfig.Config) (Outcome, error)
}

// Func adapts a function to Picker.
type Func func(ctx context.Context, cfg pickconfig.Config) (Outcome, error)

// Pick implements Picker.
func (f Func) Pick(ctx context.Context, cfg pickconfig.Config) (Outcome, error) {
	return f(ctx, cfg)
}

// ErrSelectionCount is returned when the selection violates min/max.
var ErrSelectionCount = errors.New("selection count out of bounds")

// checkCount validates a selection size against the configured bounds.
func checkCount(n int, cfg pickconfig.Config) error {
	if n > cfg.MaxItems {
		return fmt.Errorf("%w: %s", ErrSelectionCount, cfg.MaxCountMessage)
	}
	if n < cfg.MinItems {
		return fmt.Errorf("%w: %s", ErrSelectionCount, minCountMessage(cfg.MinItems))
	}
	return nil
}

func minCountMessage(minItems int) string {
	return fmt.Sprintf("You need to select at least %d files", minItems)
}

// loadItems classifies and loads paths in order, dropping files whose kind
// the configuration does not allow.
func loadItems(ctx context.Context, paths []string, cfg pickconfig.Config) ([]media.Item, error) {
	items := make([]media.Item, 0, len(paths))

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		kind, err := mediatypes.Classify(path)
		if err != nil {
			return nil, fmt.Errorf("failed to inspect %s: %w", path, err)
		}
		if !cfg.Allows(kind) {
			logging.Warn("Skipping %s: %s not allowed for media type %s", filepath.Base(path), kind, cfg.MediaType)
			continue
		}

		item, err := media.LoadItem(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		items = append(items, item)
	}

	return items, nil
}
