package mediatypes

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestGetKind(t *testing.T) {
	tests := []struct {
		name string
		ext  string
		want Kind
	}{
		{name: "JPEG image", ext: ".jpg", want: KindImage},
		{name: "PNG image", ext: ".png", want: KindImage},
		{name: "WebP image", ext: ".webp", want: KindImage},
		{name: "MP4 video", ext: ".mp4", want: KindVideo},
		{name: "MOV video", ext: ".mov", want: KindVideo},
		{name: "HEIC not decodable", ext: ".heic", want: KindOther},
		{name: "Unknown extension", ext: ".xyz", want: KindOther},
		{name: "Empty extension", ext: "", want: KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetKind(tt.ext); got != tt.want {
				t.Errorf("GetKind(%q) = %v, want %v", tt.ext, got, tt.want)
			}
		})
	}
}

func TestGetMimeType(t *testing.T) {
	tests := []struct {
		ext  string
		want string
	}{
		{".jpg", "image/jpeg"},
		{".png", "image/png"},
		{".mov", "video/quicktime"},
		{".unknown", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			if got := GetMimeType(tt.ext); got != tt.want {
				t.Errorf("GetMimeType(%q) = %q, want %q", tt.ext, got, tt.want)
			}
		})
	}
}

func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.NRGBA{R: 255, A: 255})
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
}

func TestClassify(t *testing.T) {
	dir := t.TempDir()

	// PNG content behind a misleading extension is still an image.
	disguised := filepath.Join(dir, "photo.mov")
	writePNG(t, disguised)

	video := filepath.Join(dir, "clip.mov")
	if err := os.WriteFile(video, []byte{0x00, 0x13, 0x37, 0x42, 0x99}, 0o644); err != nil {
		t.Fatal(err)
	}

	notes := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(notes, []byte("shopping list"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want Kind
	}{
		{name: "sniffed png", path: disguised, want: KindImage},
		{name: "unrecognized content falls back to extension", path: video, want: KindVideo},
		{name: "text file", path: notes, want: KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.path)
			if err != nil {
				t.Fatalf("Classify() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifyMissingFile(t *testing.T) {
	if _, err := Classify(filepath.Join(t.TempDir(), "gone.png")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestPatterns(t *testing.T) {
	images := Patterns(KindImage)
	if len(images) != len(ImageExtensions) {
		t.Errorf("got %d image patterns, want %d", len(images), len(ImageExtensions))
	}
	for i := 1; i < len(images); i++ {
		if images[i-1] > images[i] {
			t.Errorf("patterns not sorted: %v", images)
			break
		}
	}

	both := Patterns(KindImage, KindVideo)
	if len(both) != len(ImageExtensions)+len(VideoExtensions) {
		t.Errorf("got %d patterns for both kinds", len(both))
	}

	if got := Patterns(KindOther); len(got) != 0 {
		t.Errorf("Patterns(KindOther) = %v, want empty", got)
	}
}
