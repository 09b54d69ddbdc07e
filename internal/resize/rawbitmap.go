package resize

import (
	"image"

	"golang.org/x/image/draw"
)

// canvasLike allocates a canvas with the same pixel layout as src. Layouts
// without a writable equivalent (YCbCr, paletted) get RGBA.
func canvasLike(src image.Image, r image.Rectangle) draw.Image {
	switch src.(type) {
	case *image.NRGBA:
		return image.NewNRGBA(r)
	case *image.RGBA64:
		return image.NewRGBA64(r)
	case *image.NRGBA64:
		return image.NewNRGBA64(r)
	case *image.Gray:
		return image.NewGray(r)
	case *image.Gray16:
		return image.NewGray16(r)
	case *image.CMYK:
		return image.NewCMYK(r)
	default:
		return image.NewRGBA(r)
	}
}

// rawBitmap draws into a layout-matched canvas with Catmull-Rom interpolation.
func rawBitmap(src image.Image, width, height int) (image.Image, error) {
	if err := checkCanvas(src, width, height); err != nil {
		return nil, err
	}

	dst := canvasLike(src, image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}
