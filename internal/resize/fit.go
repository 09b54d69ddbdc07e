package resize

// DefaultMaxDimension is the longest edge a normalized photo may have.
const DefaultMaxDimension = 1080

// FitSize returns the aspect-fit size of a w x h image bounded by maxDim.
// Images already within bounds keep their size. Each edge is at least 1.
func FitSize(w, h, maxDim int) (int, int) {
	if maxDim <= 0 || w <= 0 || h <= 0 || max(w, h) <= maxDim {
		return w, h
	}

	var nw, nh int
	if w > h {
		nw, nh = maxDim, maxDim*h/w
	} else {
		nw, nh = maxDim*w/h, maxDim
	}

	return max(nw, 1), max(nh, 1)
}
