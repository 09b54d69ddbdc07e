package normalizer

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"media-picker/internal/encoder"
	"media-picker/internal/media"
	"media-picker/internal/mediatypes"
	"media-picker/internal/resize"
	"media-picker/internal/tempfiles"
)

func photo(width, height int) media.Photo {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y += 10 {
		for x := 0; x < width; x += 10 {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 90, A: 255})
		}
	}
	return media.Photo{Image: img}
}

func newTestNormalizer(t *testing.T) (*Normalizer, string) {
	t.Helper()
	r, err := resize.New(resize.DefaultStrategy, resize.DefaultMaxDimension)
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	enc := encoder.New(tempfiles.NewManager(dir, tempfiles.DefaultPrefix), encoder.DefaultJPEGQuality)
	return New(r, enc), dir
}

func TestNormalizePhotosAsBase64JPEG(t *testing.T) {
	n, _ := newTestNormalizer(t)

	results, err := n.Normalize(
		[]media.Item{photo(2000, 1000), photo(2000, 1000)},
		encoder.Options{AsBase64: true, AsJpeg: true},
	)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	for i, r := range results {
		if r.Type != mediatypes.KindImage || !r.IsBase64 || r.Src == "" {
			t.Errorf("result %d = {%s %v len=%d}", i, r.Type, r.IsBase64, len(r.Src))
			continue
		}
		raw, err := base64.StdEncoding.DecodeString(r.Src)
		if err != nil {
			t.Fatalf("result %d: invalid base64: %v", i, err)
		}
		cfg, err := jpeg.DecodeConfig(bytes.NewReader(raw))
		if err != nil {
			t.Fatalf("result %d: not a JPEG: %v", i, err)
		}
		if max(cfg.Width, cfg.Height) > 1080 {
			t.Errorf("result %d: %dx%d exceeds 1080", i, cfg.Width, cfg.Height)
		}
		if cfg.Width != 1080 || cfg.Height != 540 {
			t.Errorf("result %d: %dx%d, want 1080x540", i, cfg.Width, cfg.Height)
		}
	}
}

func TestNormalizeVideoPassthrough(t *testing.T) {
	n, _ := newTestNormalizer(t)
	uri := "file:///private/var/mobile/Containers/Data/tmp/trim.8F1A.MOV"

	results, err := n.Normalize([]media.Item{media.Video{Location: uri}}, encoder.Options{})
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	want := media.Result{Type: mediatypes.KindVideo, IsBase64: false, Src: uri}
	if len(results) != 1 || results[0] != want {
		t.Errorf("results = %+v, want [%+v]", results, want)
	}
}

func TestNormalizePreservesOrder(t *testing.T) {
	n, _ := newTestNormalizer(t)

	items := []media.Item{
		media.Video{Location: "file:///a.mov"},
		photo(50, 40),
		&media.Video{Location: "file:///b.mov"},
		&media.Photo{Image: photo(10, 10).Image},
	}
	results, err := n.Normalize(items, encoder.Options{AsBase64: false})
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	wantKinds := []mediatypes.Kind{mediatypes.KindVideo, mediatypes.KindImage, mediatypes.KindVideo, mediatypes.KindImage}
	if len(results) != len(wantKinds) {
		t.Fatalf("got %d results", len(results))
	}
	for i, k := range wantKinds {
		if results[i].Type != k {
			t.Errorf("result %d type = %s, want %s", i, results[i].Type, k)
		}
	}
	if results[0].Src != "file:///a.mov" || results[2].Src != "file:///b.mov" {
		t.Errorf("video order lost: %q, %q", results[0].Src, results[2].Src)
	}
}

func TestNormalizeAbortsOnEncodeFailure(t *testing.T) {
	n, dir := newTestNormalizer(t)
	good := filepath.Join(t.TempDir(), "good.mp4")
	if err := os.WriteFile(good, []byte("video"), 0o644); err != nil {
		t.Fatal(err)
	}

	items := []media.Item{
		photo(20, 20),
		media.Video{Location: good},
		media.Video{Location: filepath.Join(t.TempDir(), "missing.mp4")},
		photo(30, 30),
	}

	results, err := n.Normalize(items, encoder.Options{AsBase64: true})
	if !errors.Is(err, encoder.ErrEncodeFailed) {
		t.Fatalf("Normalize() error = %v, want ErrEncodeFailed", err)
	}
	if results != nil {
		t.Errorf("partial results returned: %+v", results)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("base64 pass wrote %d temp files", len(entries))
	}
}

type audioClip struct{}

func (audioClip) Kind() media.Kind { return mediatypes.KindOther }

func TestNormalizeRejectsUnknownItems(t *testing.T) {
	n, _ := newTestNormalizer(t)
	_, err := n.Normalize([]media.Item{audioClip{}}, encoder.Options{})
	if !errors.Is(err, ErrUnsupportedItem) {
		t.Errorf("Normalize() error = %v, want ErrUnsupportedItem", err)
	}
}

func TestNormalizeRejectsEmptyItems(t *testing.T) {
	n, dir := newTestNormalizer(t)

	tests := []struct {
		name string
		item media.Item
	}{
		{"photo without image", media.Photo{}},
		{"nil photo pointer", (*media.Photo)(nil)},
		{"photo pointer without image", &media.Photo{}},
		{"nil video pointer", (*media.Video)(nil)},
		{"nil item", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := n.Normalize([]media.Item{tt.item}, encoder.Options{})
			if !errors.Is(err, ErrUnsupportedItem) {
				t.Errorf("Normalize() error = %v, want ErrUnsupportedItem", err)
			}
			if results != nil {
				t.Errorf("Normalize() results = %v, want nil", results)
			}
		})
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("rejected items wrote %d temp files", len(entries))
	}
}

func TestNormalizeEmpty(t *testing.T) {
	n, _ := newTestNormalizer(t)
	results, err := n.Normalize(nil, encoder.Options{})
	if err != nil || results == nil || len(results) != 0 {
		t.Errorf("Normalize(nil) = %v, %v; want empty slice", results, err)
	}
}
