package pickconfig

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
	"time"

	"media-picker/internal/mediatypes"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(map[string]interface{}{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := Config{
		MediaType:          MediaImage,
		StartOnScreen:      ScreenLibrary,
		ShowCameraTile:     true,
		MinItems:           1,
		MaxItems:           1,
		MaxCountMessage:    "You can select a maximum of 1 files",
		ButtonText:         "",
		AsBase64:           false,
		AsJpeg:             false,
		VideoCompression:   "AVAssetExportPresetHighestQuality",
		RecordingTimeLimit: 60 * time.Second,
		LibraryTimeLimit:   60 * time.Second,
		MinimumTimeLimit:   3 * time.Second,
	}

	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("Parse() = %+v\nwant %+v", cfg, want)
	}
}

func TestParseFromJSON(t *testing.T) {
	body := `{
		"mediaType": "BOTH",
		"startOnScreen": "VIDEO",
		"showCameraTile": false,
		"min": 2,
		"max": 5,
		"buttonText": "Done",
		"asBase64": true,
		"asJpeg": true,
		"videoCompression": "AVAssetExportPresetMediumQuality",
		"recordingTimeLimit": 15.5,
		"libraryTimeLimit": 120,
		"minimumTimeLimit": 1
	}`

	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		t.Fatal(err)
	}

	cfg, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.MediaType != MediaBoth || cfg.StartOnScreen != ScreenVideo || cfg.ShowCameraTile {
		t.Errorf("enum/bool fields wrong: %+v", cfg)
	}
	if cfg.MinItems != 2 || cfg.MaxItems != 5 {
		t.Errorf("bounds = %d..%d, want 2..5", cfg.MinItems, cfg.MaxItems)
	}
	if cfg.MaxCountMessage != "You can select a maximum of 5 files" {
		t.Errorf("MaxCountMessage = %q", cfg.MaxCountMessage)
	}
	if !cfg.AsBase64 || !cfg.AsJpeg {
		t.Error("AsBase64/AsJpeg not set")
	}
	if cfg.VideoCompression != "AVAssetExportPresetMediumQuality" {
		t.Errorf("VideoCompression = %q", cfg.VideoCompression)
	}
	if cfg.RecordingTimeLimit != 15500*time.Millisecond {
		t.Errorf("RecordingTimeLimit = %v", cfg.RecordingTimeLimit)
	}
	if cfg.LibraryTimeLimit != 2*time.Minute || cfg.MinimumTimeLimit != time.Second {
		t.Errorf("time limits = %v, %v", cfg.LibraryTimeLimit, cfg.MinimumTimeLimit)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name    string
		raw     map[string]interface{}
		wantMsg string
	}{
		{name: "nil config", raw: nil, wantMsg: MsgMissingConfig},
		{name: "negative min", raw: map[string]interface{}{"min": -1}, wantMsg: MsgNegativeBound},
		{name: "negative max", raw: map[string]interface{}{"min": 0, "max": -3}, wantMsg: MsgNegativeBound},
		{name: "max below min", raw: map[string]interface{}{"min": 4, "max": 2}, wantMsg: MsgMaxBelowMin},
		{name: "max below default min", raw: map[string]interface{}{"max": 0}, wantMsg: MsgMaxBelowMin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.raw)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Parse() error = %v, want ErrInvalidConfig", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error %T is not a *ValidationError", err)
			}
			if verr.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", verr.Message, tt.wantMsg)
			}
		})
	}
}

func TestParseBoundsInvariant(t *testing.T) {
	for minItems := -2; minItems <= 4; minItems++ {
		for maxItems := -2; maxItems <= 4; maxItems++ {
			cfg, err := Parse(map[string]interface{}{"min": float64(minItems), "max": float64(maxItems)})
			valid := minItems >= 0 && maxItems >= minItems
			if valid && err != nil {
				t.Errorf("min=%d max=%d: unexpected error %v", minItems, maxItems, err)
			}
			if !valid && err == nil {
				t.Errorf("min=%d max=%d: accepted invalid bounds", minItems, maxItems)
			}
			if err == nil && !(cfg.MaxItems >= cfg.MinItems && cfg.MinItems >= 0) {
				t.Errorf("min=%d max=%d: invariant broken in %+v", minItems, maxItems, cfg)
			}
		}
	}
}

func TestParseWrongTypesFallBack(t *testing.T) {
	cfg, err := Parse(map[string]interface{}{
		"mediaType":          42,
		"startOnScreen":      true,
		"showCameraTile":     "no",
		"min":                "3",
		"max":                []int{1},
		"maxCountMessage":    7,
		"asBase64":           1,
		"recordingTimeLimit": "long",
		"libraryTimeLimit":   -5.0,
		"minimumTimeLimit":   0,
	})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.MediaType != MediaImage || cfg.StartOnScreen != ScreenLibrary || !cfg.ShowCameraTile {
		t.Errorf("wrong-typed enums did not default: %+v", cfg)
	}
	if cfg.MinItems != 1 || cfg.MaxItems != 1 {
		t.Errorf("bounds = %d..%d, want defaults", cfg.MinItems, cfg.MaxItems)
	}
	if cfg.MaxCountMessage != DefaultMaxCountMessage(1) || cfg.AsBase64 {
		t.Errorf("string/bool defaults not applied: %+v", cfg)
	}
	if cfg.RecordingTimeLimit != DefaultRecordingTimeLimit ||
		cfg.LibraryTimeLimit != DefaultLibraryTimeLimit ||
		cfg.MinimumTimeLimit != DefaultMinimumTimeLimit {
		t.Errorf("durations did not default: %+v", cfg)
	}
}

func TestParseIntegerForms(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  int
	}{
		{name: "int", value: 3, want: 3},
		{name: "int64", value: int64(4), want: 4},
		{name: "float64 truncated", value: 5.9, want: 5},
		{name: "json.Number", value: json.Number("6"), want: 6},
		{name: "huge float64 saturates", value: 1e19, want: math.MaxInt},
		{name: "huge json.Number saturates", value: json.Number("1e19"), want: math.MaxInt},
		{name: "infinity saturates", value: math.Inf(1), want: math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse(map[string]interface{}{"min": 0, "max": tt.value})
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if cfg.MaxItems != tt.want {
				t.Errorf("MaxItems = %d, want %d", cfg.MaxItems, tt.want)
			}
		})
	}
}

func TestParseHugeNegativeIsRejected(t *testing.T) {
	_, err := Parse(map[string]interface{}{"min": -1e19})
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Message != MsgNegativeBound {
		t.Errorf("Parse() error = %v, want %q", err, MsgNegativeBound)
	}
}

func TestParseUnknownEnums(t *testing.T) {
	cfg, err := Parse(map[string]interface{}{"mediaType": "image", "startOnScreen": "CAMERA"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MediaType != MediaBoth {
		t.Errorf("unknown mediaType = %v, want BOTH", cfg.MediaType)
	}
	if cfg.StartOnScreen != ScreenLibrary {
		t.Errorf("unknown startOnScreen = %v, want LIBRARY", cfg.StartOnScreen)
	}
}

func TestScreens(t *testing.T) {
	tests := []struct {
		name       string
		mediaType  MediaType
		cameraTile bool
		want       []Screen
	}{
		{name: "image with camera", mediaType: MediaImage, cameraTile: true, want: []Screen{ScreenLibrary, ScreenPhoto}},
		{name: "video with camera", mediaType: MediaVideo, cameraTile: true, want: []Screen{ScreenLibrary, ScreenVideo}},
		{name: "both with camera", mediaType: MediaBoth, cameraTile: true, want: []Screen{ScreenLibrary, ScreenPhoto, ScreenVideo}},
		{name: "both without camera", mediaType: MediaBoth, cameraTile: false, want: []Screen{ScreenLibrary}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{MediaType: tt.mediaType, ShowCameraTile: tt.cameraTile}
			if got := cfg.Screens(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Screens() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDerivedSettings(t *testing.T) {
	cfg := Config{MediaType: MediaVideo, MaxItems: 1}
	if cfg.MultipleSelection() {
		t.Error("MultipleSelection() = true for max 1")
	}
	cfg.MaxItems = 2
	if !cfg.MultipleSelection() {
		t.Error("MultipleSelection() = false for max 2")
	}

	if !cfg.Allows(mediatypes.KindVideo) || cfg.Allows(mediatypes.KindImage) {
		t.Errorf("Allows() wrong for %v", cfg.MediaType)
	}

	both := Config{MediaType: MediaBoth}
	if len(both.LibraryKinds()) != 2 {
		t.Errorf("LibraryKinds() = %v", both.LibraryKinds())
	}

	if _, ok := cfg.ConfirmLabel(); ok {
		t.Error("ConfirmLabel() reported override for empty text")
	}
	cfg.ButtonText = "Use"
	if label, ok := cfg.ConfirmLabel(); !ok || label != "Use" {
		t.Errorf("ConfirmLabel() = %q, %v", label, ok)
	}
}

func TestValidationErrorMessage(t *testing.T) {
	_, err := Parse(map[string]interface{}{"min": 3, "max": 1})
	if !strings.Contains(err.Error(), "smaller than Min") {
		t.Errorf("Error() = %q", err.Error())
	}
}
