package pickconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"media-picker/internal/mediatypes"
)

// MediaType restricts the kinds of media a session may pick.
type MediaType string

const (
	MediaImage MediaType = "IMAGE"
	MediaVideo MediaType = "VIDEO"
	MediaBoth  MediaType = "BOTH"
)

// Screen is one entry point of the picker UI.
type Screen string

const (
	ScreenPhoto   Screen = "IMAGE"
	ScreenVideo   Screen = "VIDEO"
	ScreenLibrary Screen = "LIBRARY"
)

// Option keys recognized in the request map.
const (
	KeyMediaType          = "mediaType"
	KeyStartOnScreen      = "startOnScreen"
	KeyShowCameraTile     = "showCameraTile"
	KeyMin                = "min"
	KeyMax                = "max"
	KeyMaxCountMessage    = "maxCountMessage"
	KeyButtonText         = "buttonText"
	KeyAsBase64           = "asBase64"
	KeyVideoCompression   = "videoCompression"
	KeyAsJpeg             = "asJpeg"
	KeyRecordingTimeLimit = "recordingTimeLimit"
	KeyLibraryTimeLimit   = "libraryTimeLimit"
	KeyMinimumTimeLimit   = "minimumTimeLimit"
)

// Defaults applied when an option is absent or has the wrong type.
const (
	DefaultMinItems           = 1
	DefaultMaxItems           = 1
	DefaultVideoCompression   = "AVAssetExportPresetHighestQuality"
	DefaultRecordingTimeLimit = 60 * time.Second
	DefaultLibraryTimeLimit   = 60 * time.Second
	DefaultMinimumTimeLimit   = 3 * time.Second
)

// ErrInvalidConfig is matched by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// ValidationError carries the host-facing message of a rejected configuration.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Unwrap lets errors.Is(err, ErrInvalidConfig) match.
func (e *ValidationError) Unwrap() error { return ErrInvalidConfig }

// Messages returned to the host on rejection.
const (
	MsgMissingConfig = "The first Argument must be the Configuration"
	MsgNegativeBound = "Min and Max can not be less then zero."
	MsgMaxBelowMin   = "Max can not be smaller than Min."
)

// Config is the validated configuration of one pick session.
type Config struct {
	MediaType       MediaType
	StartOnScreen   Screen
	ShowCameraTile  bool
	MinItems        int
	MaxItems        int
	MaxCountMessage string
	ButtonText      string
	AsBase64        bool
	AsJpeg          bool

	// VideoCompression is passed through to the recorder untouched.
	VideoCompression string

	RecordingTimeLimit time.Duration
	LibraryTimeLimit   time.Duration
	MinimumTimeLimit   time.Duration
}

// Parse validates raw and fills in defaults.
func Parse(raw map[string]interface{}) (Config, error) {
	if raw == nil {
		return Config{}, &ValidationError{Message: MsgMissingConfig}
	}

	minItems := intValue(raw, KeyMin, DefaultMinItems)
	maxItems := intValue(raw, KeyMax, DefaultMaxItems)

	if maxItems < 0 || minItems < 0 {
		return Config{}, &ValidationError{Message: MsgNegativeBound}
	}
	if maxItems < minItems {
		return Config{}, &ValidationError{Message: MsgMaxBelowMin}
	}

	cfg := Config{
		MediaType:          parseMediaType(raw),
		StartOnScreen:      parseScreen(raw),
		ShowCameraTile:     boolValue(raw, KeyShowCameraTile, true),
		MinItems:           minItems,
		MaxItems:           maxItems,
		MaxCountMessage:    stringValue(raw, KeyMaxCountMessage, DefaultMaxCountMessage(maxItems)),
		ButtonText:         stringValue(raw, KeyButtonText, ""),
		AsBase64:           boolValue(raw, KeyAsBase64, false),
		AsJpeg:             boolValue(raw, KeyAsJpeg, false),
		VideoCompression:   stringValue(raw, KeyVideoCompression, DefaultVideoCompression),
		RecordingTimeLimit: durationValue(raw, KeyRecordingTimeLimit, DefaultRecordingTimeLimit),
		LibraryTimeLimit:   durationValue(raw, KeyLibraryTimeLimit, DefaultLibraryTimeLimit),
		MinimumTimeLimit:   durationValue(raw, KeyMinimumTimeLimit, DefaultMinimumTimeLimit),
	}

	return cfg, nil
}

// DefaultMaxCountMessage is the warning shown when more than max items are selected.
func DefaultMaxCountMessage(maxItems int) string {
	return fmt.Sprintf("You can select a maximum of %d files", maxItems)
}

func parseMediaType(raw map[string]interface{}) MediaType {
	s, ok := raw[KeyMediaType].(string)
	if !ok {
		return MediaImage
	}
	switch MediaType(s) {
	case MediaImage, MediaVideo:
		return MediaType(s)
	default:
		return MediaBoth
	}
}

func parseScreen(raw map[string]interface{}) Screen {
	s, _ := raw[KeyStartOnScreen].(string)
	switch Screen(s) {
	case ScreenPhoto, ScreenVideo:
		return Screen(s)
	default:
		return ScreenLibrary
	}
}

func stringValue(raw map[string]interface{}, key, def string) string {
	if s, ok := raw[key].(string); ok {
		return s
	}
	return def
}

func boolValue(raw map[string]interface{}, key string, def bool) bool {
	if b, ok := raw[key].(bool); ok {
		return b
	}
	return def
}

func numberValue(raw map[string]interface{}, key string) (float64, bool) {
	switch v := raw[key].(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func intValue(raw map[string]interface{}, key string, def int) int {
	f, ok := numberValue(raw, key)
	if !ok || math.IsNaN(f) {
		return def
	}
	// Saturate instead of letting the conversion wrap
	switch {
	case f >= float64(math.MaxInt):
		return math.MaxInt
	case f <= float64(math.MinInt):
		return math.MinInt
	}
	return int(f)
}

// durationValue reads seconds. Non-positive values fall back to def.
func durationValue(raw map[string]interface{}, key string, def time.Duration) time.Duration {
	f, ok := numberValue(raw, key)
	if !ok || !(f > 0) || math.IsInf(f, 0) {
		return def
	}
	return time.Duration(f * float64(time.Second))
}

// Screens lists the picker entry points. The library is always offered;
// capture screens only when the camera tile is shown and the media type allows.
func (c Config) Screens() []Screen {
	screens := []Screen{ScreenLibrary}
	if c.ShowCameraTile {
		if c.MediaType != MediaVideo {
			screens = append(screens, ScreenPhoto)
		}
		if c.MediaType != MediaImage {
			screens = append(screens, ScreenVideo)
		}
	}
	return screens
}

// MultipleSelection reports whether the library starts in multi-select mode.
func (c Config) MultipleSelection() bool {
	return c.MaxItems > 1
}

// LibraryKinds returns the media kinds the library shows.
func (c Config) LibraryKinds() []mediatypes.Kind {
	switch c.MediaType {
	case MediaImage:
		return []mediatypes.Kind{mediatypes.KindImage}
	case MediaVideo:
		return []mediatypes.Kind{mediatypes.KindVideo}
	default:
		return []mediatypes.Kind{mediatypes.KindImage, mediatypes.KindVideo}
	}
}

// Allows reports whether items of kind may be picked.
func (c Config) Allows(kind mediatypes.Kind) bool {
	for _, k := range c.LibraryKinds() {
		if k == kind {
			return true
		}
	}
	return false
}

// ConfirmLabel returns the confirm-button override, if any.
func (c Config) ConfirmLabel() (string, bool) {
	return c.ButtonText, c.ButtonText != ""
}
