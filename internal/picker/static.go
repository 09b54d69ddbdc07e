package picker

import (
	"context"

	"media-picker/internal/logging"
	"media-picker/internal/pickconfig"
)

// Static picks a fixed list of files.
type Static struct {
	Paths []string
}

// NewStatic returns a Static picker for paths.
func NewStatic(paths ...string) *Static {
	return &Static{Paths: paths}
}

// Pick implements Picker. An empty list is a cancellation unless the
// configuration allows picking nothing.
func (s *Static) Pick(ctx context.Context, cfg pickconfig.Config) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	if len(s.Paths) == 0 && cfg.MinItems > 0 {
		logging.Debug("Static picker has no files, treating as cancelled")
		return Outcome{Cancelled: true}, nil
	}

	items, err := loadItems(ctx, s.Paths, cfg)
	if err != nil {
		return Outcome{}, err
	}
	if err := checkCount(len(items), cfg); err != nil {
		return Outcome{}, err
	}

	return Outcome{Items: items}, nil
}
