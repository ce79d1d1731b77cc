package gilbert

// ValidatePermutation checks that idx is a permutation of {0..n-1} of length n.
// It allocates a single O(n) marker slice.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(idx []int, n int) error {
	if len(idx) != n {
		return ErrNotPermutation
	}
	seen := make([]bool, n)

	var v int
	for _, v = range idx {
		if v < 0 || v >= n {
			return ErrNotPermutation
		}
		if seen[v] {
			return ErrNotPermutation
		}
		seen[v] = true
	}

	return nil
}

// ValidatePath enforces the Hamiltonian-walk invariants over g:
//
//	len(path) == g.Area(), every point in bounds, no cell visited twice.
//
// Complexity: O(W×H) time and space.
func ValidatePath(path []Point, g Grid) error {
	if g.Width <= 0 || g.Height <= 0 {
		return ErrInvalidDimensions
	}
	if len(path) != g.Area() {
		return ErrIncompletePath
	}
	seen := make([]bool, g.Area())
	for _, p := range path {
		if !g.InBounds(p.X, p.Y) {
			return ErrPointOutOfBounds
		}
		i := g.Index(p.X, p.Y)
		if seen[i] {
			return ErrDuplicatePoint
		}
		seen[i] = true
	}

	return nil
}

// IsContiguous reports whether each consecutive pair of points differs by a
// single orthogonal unit step. Power-of-two squares always pass; some
// non-square grids need a diagonal step and report false.
func IsContiguous(path []Point) bool {
	for k := 1; k < len(path); k++ {
		dx := abs(path[k].X - path[k-1].X)
		dy := abs(path[k].Y - path[k-1].Y)
		if dx+dy != 1 {
			return false
		}
	}

	return true
}
