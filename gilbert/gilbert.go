package gilbert

// Generate returns the generalized Hilbert walk over a width×height grid.
//
// The walk starts at (0,0), has exactly width*height points and visits every
// cell once. The emission order is fixed: callers on both sides of a
// permutation rebuild the same walk from the dimensions alone.
//
// Returns ErrInvalidDimensions if width or height is not positive.
//
// Complexity: O(W×H) time and memory.
func Generate(width, height int) ([]Point, error) {
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	return AppendPath(make([]Point, 0, g.Area()), g), nil
}

// AppendPath appends the walk over g to dst and returns the extended slice.
// A dst with spare capacity of g.Area() avoids any reallocation.
// g must be valid (see NewGrid); an invalid grid appends nothing.
func AppendPath(dst []Point, g Grid) []Point {
	if g.Width <= 0 || g.Height <= 0 {
		return dst
	}
	w := walker{pts: dst}
	// The first basis vector runs along the longer side.
	if g.Width >= g.Height {
		w.walk(0, 0, g.Width, 0, 0, g.Height)
	} else {
		w.walk(0, 0, 0, g.Height, g.Width, 0)
	}

	return w.pts
}

// walker accumulates points emitted by the recursion.
type walker struct {
	pts []Point
}

// walk fills the rectangle anchored at (x,y) and spanned by the basis
// vectors a=(ax,ay) and b=(bx,by). Exactly one component of each basis
// vector is non-zero.
//
// Algorithm outline:
//  1. w = |ax+ay|, h = |bx+by| are the extents along a and b.
//  2. A one-cell-high (or one-cell-wide) strip is emitted directly.
//  3. A long rectangle (2w > 3h) is cut in two along a.
//  4. Otherwise it is cut along b into a lower half, the remaining upper
//     part, and a connector walked backwards so the curve stays continuous.
//
// Halves whose extent would be odd are widened by one step (when the extent
// exceeds 2) so sub-rectangles keep even sides and 2×2 locality.
func (w *walker) walk(x, y, ax, ay, bx, by int) {
	width := abs(ax + ay)
	height := abs(bx + by)

	dax, day := sign(ax), sign(ay)
	dbx, dby := sign(bx), sign(by)

	if height == 1 {
		for i := 0; i < width; i++ {
			w.pts = append(w.pts, Point{X: x, Y: y})
			x += dax
			y += day
		}
		return
	}

	if width == 1 {
		for i := 0; i < height; i++ {
			w.pts = append(w.pts, Point{X: x, Y: y})
			x += dbx
			y += dby
		}
		return
	}

	ax2, ay2 := floorHalf(ax), floorHalf(ay)
	bx2, by2 := floorHalf(bx), floorHalf(by)

	w2 := abs(ax2 + ay2)
	h2 := abs(bx2 + by2)

	if 2*width > 3*height {
		if w2%2 != 0 && width > 2 {
			ax2 += dax
			ay2 += day
		}

		w.walk(x, y, ax2, ay2, bx, by)
		w.walk(x+ax2, y+ay2, ax-ax2, ay-ay2, bx, by)
		return
	}

	if h2%2 != 0 && height > 2 {
		bx2 += dbx
		by2 += dby
	}

	w.walk(x, y, bx2, by2, ax2, ay2)
	w.walk(x+bx2, y+by2, ax, ay, bx-bx2, by-by2)
	w.walk(x+(ax-dax)+(bx2-dbx), y+(ay-day)+(by2-dby),
		-bx2, -by2, -(ax-ax2), -(ay-ay2))
}

// floorHalf divides v by two rounding toward negative infinity.
// Go's / truncates toward zero, which would shift every mirrored
// sub-rectangle by one cell for odd negative extents.
func floorHalf(v int) int {
	return v >> 1
}

// abs returns the absolute value of an int.
func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// sign returns -1, 0 or 1 according to the sign of v.
func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
