package resize

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// gradient builds an NRGBA test image with a horizontal/vertical gradient.
func gradient(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8((x * 255) / width),
				G: uint8((y * 255) / height),
				B: 128,
				A: 255,
			})
		}
	}
	return img
}

func availableStrategies(t *testing.T) []string {
	t.Helper()
	if err := InitVips(); err != nil {
		t.Logf("libvips not available, skipping %s: %v", Vectorized, err)
		names := []string{}
		for _, n := range Names() {
			if n != Vectorized {
				names = append(names, n)
			}
		}
		return names
	}
	return Names()
}

func TestNames(t *testing.T) {
	want := []string{DirectDraw, FilterGraph, RawBitmap, Thumbnail, Vectorized}
	got := Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if _, ok := Get(DefaultStrategy); !ok {
		t.Errorf("default strategy %q not registered", DefaultStrategy)
	}
	if _, ok := Get("bicubic-magic"); ok {
		t.Error("Get() found an unregistered strategy")
	}
}

func TestStrategiesProduceIdenticalDimensions(t *testing.T) {
	sources := []struct {
		name string
		img  image.Image
	}{
		{name: "landscape", img: gradient(400, 300)},
		{name: "portrait", img: gradient(301, 499)},
		{name: "offset bounds", img: gradient(500, 500).SubImage(image.Rect(50, 100, 450, 300))},
	}

	for _, name := range availableStrategies(t) {
		strategy, _ := Get(name)
		for _, src := range sources {
			t.Run(name+"/"+src.name, func(t *testing.T) {
				b := src.img.Bounds()
				wantW, wantH := FitSize(b.Dx(), b.Dy(), 120)

				out, err := strategy.Resample(src.img, wantW, wantH)
				if err != nil {
					t.Fatalf("Resample() error = %v", err)
				}
				if out.Bounds().Dx() != wantW || out.Bounds().Dy() != wantH {
					t.Errorf("got %dx%d, want %dx%d", out.Bounds().Dx(), out.Bounds().Dy(), wantW, wantH)
				}

				c := out.Bounds().Min.Add(image.Pt(wantW/2, wantH/2))
				if _, _, _, a := out.At(c.X, c.Y).RGBA(); a == 0 {
					t.Error("center pixel is transparent, nothing was drawn")
				}
			})
		}
	}
}

func TestStrategiesRejectInvalidCanvas(t *testing.T) {
	src := gradient(10, 10)
	for _, name := range Names() {
		strategy, _ := Get(name)
		t.Run(name, func(t *testing.T) {
			if _, err := strategy.Resample(src, 0, 5); !errors.Is(err, ErrNoImage) {
				t.Errorf("zero width: error = %v, want ErrNoImage", err)
			}
			if _, err := strategy.Resample(image.NewRGBA(image.Rectangle{}), 5, 5); !errors.Is(err, ErrNoImage) {
				t.Errorf("empty source: error = %v, want ErrNoImage", err)
			}
			if _, err := strategy.Resample(src, 20000, 20000); !errors.Is(err, ErrNoImage) {
				t.Errorf("oversized canvas: error = %v, want ErrNoImage", err)
			}
		})
	}
}

func TestRawBitmapKeepsLayout(t *testing.T) {
	r := image.Rect(0, 0, 40, 20)
	tests := []struct {
		name string
		src  image.Image
		want string
	}{
		{name: "gray", src: image.NewGray(r), want: "*image.Gray"},
		{name: "gray16", src: image.NewGray16(r), want: "*image.Gray16"},
		{name: "nrgba", src: image.NewNRGBA(r), want: "*image.NRGBA"},
		{name: "rgba64", src: image.NewRGBA64(r), want: "*image.RGBA64"},
		{name: "cmyk", src: image.NewCMYK(r), want: "*image.CMYK"},
		{name: "ycbcr falls back", src: image.NewYCbCr(r, image.YCbCrSubsampleRatio420), want: "*image.RGBA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := rawBitmap(tt.src, 10, 5)
			if err != nil {
				t.Fatalf("rawBitmap() error = %v", err)
			}
			if got := typeName(out); got != tt.want {
				t.Errorf("canvas type = %s, want %s", got, tt.want)
			}
		})
	}
}

func typeName(img image.Image) string {
	switch img.(type) {
	case *image.Gray:
		return "*image.Gray"
	case *image.Gray16:
		return "*image.Gray16"
	case *image.NRGBA:
		return "*image.NRGBA"
	case *image.RGBA64:
		return "*image.RGBA64"
	case *image.CMYK:
		return "*image.CMYK"
	case *image.RGBA:
		return "*image.RGBA"
	default:
		return "other"
	}
}

func TestScaleTransform(t *testing.T) {
	m := scaleTransform(0.5, 2, image.Pt(10, 20))
	// (10,20) is the source origin and must land on the destination origin.
	x := m[0]*10 + m[1]*20 + m[2]
	y := m[3]*10 + m[4]*20 + m[5]
	if x != 0 || y != 0 {
		t.Errorf("origin maps to (%v, %v), want (0, 0)", x, y)
	}
	if m[0] != 0.5 || m[4] != 1 {
		t.Errorf("scales = (%v, %v), want (0.5, 1)", m[0], m[4])
	}
}

func TestVectorizedDestinationBuffer(t *testing.T) {
	if err := InitVips(); err != nil {
		t.Skipf("libvips not available: %v", err)
	}

	out, err := vectorized(gradient(64, 32), 16, 8)
	if err != nil {
		t.Fatalf("vectorized() error = %v", err)
	}
	nrgba, ok := out.(*image.NRGBA)
	if !ok {
		t.Fatalf("vectorized() returned %T, want *image.NRGBA", out)
	}
	if len(nrgba.Pix) != 16*8*bytesPerPixel {
		t.Errorf("len(Pix) = %d, want %d", len(nrgba.Pix), 16*8*bytesPerPixel)
	}
}
