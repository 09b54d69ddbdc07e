package resize

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"

	"github.com/davidbyttow/govips/v2/vips"
	"golang.org/x/image/draw"
)

// ErrVipsUnavailable is returned by the vectorized strategy before InitVips.
var ErrVipsUnavailable = errors.New("libvips not available")

const bytesPerPixel = 4

// vectorized resamples with libvips. The vips image is released on every
// exit path.
func vectorized(src image.Image, width, height int) (image.Image, error) {
	if err := checkCanvas(src, width, height); err != nil {
		return nil, err
	}
	if !IsVipsAvailable() {
		return nil, ErrVipsUnavailable
	}

	var in bytes.Buffer
	if err := png.Encode(&in, src); err != nil {
		return nil, fmt.Errorf("%w: source buffer: %v", ErrNoImage, err)
	}

	ref, err := vips.NewImageFromBuffer(in.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: vips load: %v", ErrNoImage, err)
	}
	defer ref.Close()

	hscale := float64(width) / float64(ref.Width())
	vscale := float64(height) / float64(ref.Height())
	if err := ref.ResizeWithVScale(hscale, vscale, vips.KernelLanczos3); err != nil {
		return nil, fmt.Errorf("vips resize failed: %w", err)
	}

	if ref.Width() != width || ref.Height() != height {
		return nil, fmt.Errorf("vips produced %dx%d, want %dx%d", ref.Width(), ref.Height(), width, height)
	}

	out, _, err := ref.ExportPng(vips.NewPngExportParams())
	if err != nil {
		return nil, fmt.Errorf("vips export failed: %w", err)
	}

	decoded, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		return nil, fmt.Errorf("failed to decode vips output: %w", err)
	}

	dst := &image.NRGBA{
		Pix:    make([]uint8, width*height*bytesPerPixel),
		Stride: width * bytesPerPixel,
		Rect:   image.Rect(0, 0, width, height),
	}
	draw.Draw(dst, dst.Rect, decoded, decoded.Bounds().Min, draw.Src)
	return dst, nil
}
