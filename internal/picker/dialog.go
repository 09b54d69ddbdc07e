package picker

import (
	"context"
	"errors"
	"strings"

	"media-picker/internal/logging"
	"media-picker/internal/mediatypes"
	"media-picker/internal/pickconfig"

	"github.com/ncruces/zenity"
)

// DefaultDialogTitle is the title of the file dialog.
const DefaultDialogTitle = "Select media"

// Dialog picks files through the native file dialog.
type Dialog struct {
	Title string

	// selectFiles and warn are replaced in tests.
	selectFiles func(multiple bool, options ...zenity.Option) ([]string, error)
	warn        func(text string, options ...zenity.Option) error
}

// NewDialog returns a Dialog backed by zenity.
func NewDialog() *Dialog {
	return &Dialog{
		Title:       DefaultDialogTitle,
		selectFiles: zenitySelect,
		warn:        zenity.Warning,
	}
}

func zenitySelect(multiple bool, options ...zenity.Option) ([]string, error) {
	if multiple {
		return zenity.SelectFileMultiple(options...)
	}
	path, err := zenity.SelectFile(options...)
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

// filters builds the dialog filters for the configured media type.
func filters(cfg pickconfig.Config) zenity.FileFilters {
	var name string
	switch cfg.MediaType {
	case pickconfig.MediaImage:
		name = "Images"
	case pickconfig.MediaVideo:
		name = "Videos"
	default:
		name = "Images and videos"
	}
	return zenity.FileFilters{
		{Name: name, Patterns: mediatypes.Patterns(cfg.LibraryKinds()...), CaseFold: true},
	}
}

// Pick implements Picker. The dialog is shown again after a warning until
// the selection fits the configured bounds or the user cancels.
func (d *Dialog) Pick(ctx context.Context, cfg pickconfig.Config) (Outcome, error) {
	title := d.Title
	if label, ok := cfg.ConfirmLabel(); ok {
		title = label
	}

	options := []zenity.Option{
		zenity.Context(ctx),
		zenity.Title(title),
		filters(cfg),
	}

	for {
		paths, err := d.selectFiles(cfg.MultipleSelection(), options...)
		if errors.Is(err, zenity.ErrCanceled) {
			return Outcome{Cancelled: true}, nil
		}
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return Outcome{}, ctxErr
			}
			return Outcome{}, err
		}

		// Count what survives the media type filter, not the raw selection
		items, err := loadItems(ctx, paths, cfg)
		if err != nil {
			return Outcome{}, err
		}

		var message string
		switch {
		case len(items) > cfg.MaxItems:
			message = cfg.MaxCountMessage
		case len(items) < cfg.MinItems:
			message = minCountMessage(cfg.MinItems)
		}
		if message != "" {
			logging.Debug("Selection of %d files (%d usable) rejected: %s", len(paths), len(items), message)
			if err := d.warn(message, zenity.Context(ctx), zenity.Title(title)); err != nil && !errors.Is(err, zenity.ErrCanceled) {
				return Outcome{}, err
			}
			continue
		}

		logging.Debug("Dialog selected %d files: %s", len(paths), strings.Join(paths, ", "))
		return Outcome{Items: items}, nil
	}
}
