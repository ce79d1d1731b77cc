package gilbert

import (
	"errors"
	"math"
)

// MaxArea is the largest Width*Height a Grid accepts.
const MaxArea = math.MaxInt32

// Sentinel errors for curve generation and validation.
var (
	// ErrInvalidDimensions indicates a non-positive width or height, or an
	// area above MaxArea.
	ErrInvalidDimensions = errors.New("gilbert: width and height must be > 0 with area <= MaxArea")
	// ErrPointOutOfBounds indicates a coordinate outside [0,Width)×[0,Height).
	ErrPointOutOfBounds = errors.New("gilbert: point out of bounds")
	// ErrDuplicatePoint indicates a path that visits the same cell twice.
	ErrDuplicatePoint = errors.New("gilbert: duplicate point in path")
	// ErrIncompletePath indicates a path whose length is not Width*Height.
	ErrIncompletePath = errors.New("gilbert: path does not cover the grid")
	// ErrNotPermutation indicates an index sequence that is not a bijection on [0,n).
	ErrNotPermutation = errors.New("gilbert: indices are not a permutation")
)

// Point is a cell coordinate within a Grid.
type Point struct {
	X, Y int
}

// Grid is an immutable Width×Height coordinate space.
// The zero value is not a valid grid; use NewGrid.
type Grid struct {
	Width, Height int
}

// NewGrid validates the dimensions and returns the Grid.
// Returns ErrInvalidDimensions if width or height is not positive or if
// width*height exceeds MaxArea.
func NewGrid(width, height int) (Grid, error) {
	if width <= 0 || height <= 0 || width > MaxArea/height {
		return Grid{}, ErrInvalidDimensions
	}

	return Grid{Width: width, Height: height}, nil
}

// Area returns the number of cells, Width*Height.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index maps (x,y) to a row-major offset: y*Width + x.
// Complexity: O(1).
func (g Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major offset back to (x,y).
// Complexity: O(1).
func (g Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}
