package resize

import (
	"image"

	"golang.org/x/image/draw"
)

// directDraw renders the source into a fresh RGBA canvas with an
// approximate bilinear filter.
func directDraw(src image.Image, width, height int) (image.Image, error) {
	if err := checkCanvas(src, width, height); err != nil {
		return nil, err
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}
