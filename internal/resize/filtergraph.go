package resize

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// lanczos3 is the Lanczos kernel with a = 3.
var lanczos3 = &draw.Kernel{
	Support: 3,
	At: func(t float64) float64 {
		if t < 0 {
			t = -t
		}
		if t == 0 {
			return 1
		}
		if t >= 3 {
			return 0
		}
		pt := math.Pi * t
		return 3 * math.Sin(pt) * math.Sin(pt/3) / (pt * pt)
	},
}

// scaleTransform builds the src-to-dst matrix for a scale factor and an
// aspect ratio, where the vertical scale is scale*aspect.
func scaleTransform(scale, aspect float64, origin image.Point) f64.Aff3 {
	sx, sy := scale, scale*aspect
	return f64.Aff3{
		sx, 0, -sx * float64(origin.X),
		0, sy, -sy * float64(origin.Y),
	}
}

// filterGraph resamples with the Lanczos-3 kernel driven by a scale factor
// and aspect ratio rather than an explicit destination rectangle.
func filterGraph(src image.Image, width, height int) (image.Image, error) {
	if err := checkCanvas(src, width, height); err != nil {
		return nil, err
	}

	b := src.Bounds()
	scale := float64(width) / float64(b.Dx())
	aspect := (float64(height) / float64(b.Dy())) / scale

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	lanczos3.Transform(dst, scaleTransform(scale, aspect, b.Min), src, b, draw.Src, nil)
	return dst, nil
}
