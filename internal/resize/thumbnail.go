package resize

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	nfnt "github.com/nfnt/resize"
)

// thumbnailQuality is the quality of the intermediate JPEG.
const thumbnailQuality = 100

// thumbnail round-trips the source through JPEG and asks nfnt/resize for a
// thumbnail bounded by the larger target edge.
func thumbnail(src image.Image, width, height int) (image.Image, error) {
	if err := checkCanvas(src, width, height); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: thumbnailQuality}); err != nil {
		return nil, fmt.Errorf("%w: intermediate encode: %v", ErrNoImage, err)
	}

	decoded, err := jpeg.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("%w: intermediate decode: %v", ErrNoImage, err)
	}

	bound := uint(max(width, height))
	out := nfnt.Thumbnail(bound, bound, decoded, nfnt.Lanczos3)

	// Thumbnail rounds its second pass differently for some portrait sizes.
	if b := out.Bounds(); b.Dx() != width || b.Dy() != height {
		out = nfnt.Resize(uint(width), uint(height), decoded, nfnt.Lanczos3)
	}

	return out, nil
}
