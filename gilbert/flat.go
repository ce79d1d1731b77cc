package gilbert

// FlatIndices converts a walk into row-major buffer offsets:
//
//	idx[k] = path[k].Y*width + path[k].X
//
// Returns ErrInvalidDimensions if width is not positive and
// ErrPointOutOfBounds if a point has X outside [0,width) or a negative Y.
// For a walk produced by Generate the result is a permutation of
// [0, width*height).
//
// Complexity: O(len(path)) time and memory.
func FlatIndices(path []Point, width int) ([]int, error) {
	if width <= 0 {
		return nil, ErrInvalidDimensions
	}
	idx := make([]int, len(path))
	for k, p := range path {
		if p.X < 0 || p.X >= width || p.Y < 0 {
			return nil, ErrPointOutOfBounds
		}
		idx[k] = p.Y*width + p.X
	}

	return idx, nil
}

// Indices generates the walk over a width×height grid and returns its
// row-major offsets. It is Generate followed by FlatIndices.
func Indices(width, height int) ([]int, error) {
	path, err := Generate(width, height)
	if err != nil {
		return nil, err
	}

	return FlatIndices(path, width)
}
