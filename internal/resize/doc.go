/*
Package resize downscales photos so their longest edge fits a maximum
dimension, never upscaling.

FitSize computes the target size. The pixel work is done by a Strategy, and
five interchangeable strategies are registered by name:

	direct-draw   approximate bilinear draw into an RGBA canvas (x/image/draw)
	filter-graph  Lanczos-3 kernel applied through an affine scale transform
	raw-bitmap    canvas matching the source pixel layout, Catmull-Rom (default)
	thumbnail     JPEG round trip then nfnt/resize thumbnail, lossy
	vectorized    libvips resize into an explicitly allocated NRGBA buffer

All strategies produce the same dimensions for the same request. A Resizer
wraps one strategy; when the strategy fails it logs, counts the fallback and
returns the source unscaled.

The vectorized strategy needs libvips. Call InitVips once at startup and
ShutdownVips on exit; govips cannot be restarted within one process.
*/
package resize
