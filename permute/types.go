package permute

import "github.com/katalvlaran/pixshuffle/gilbert"

// Channels is the number of 8-bit channels per pixel (R,G,B,A).
const Channels = 4

// GoldenRatio is (sqrt(5)-1)/2, the fractional golden ratio used to derive
// the rotation offset. The literal is the exact float64 of that expression.
const GoldenRatio = 0.6180339887498949

// Direction selects which way pixels rotate along the walk.
type Direction int

const (
	// Forward rotates right by the offset (obfuscate).
	Forward Direction = iota
	// Inverse rotates left by the offset (restore).
	Inverse
)

// String returns "forward", "inverse" or "unknown".
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Inverse:
		return "inverse"
	}
	return "unknown"
}

// Geometry holds everything about a transform that depends only on the
// image dimensions. It is immutable once built and shared between callers;
// do not modify Path.
type Geometry struct {
	// Grid is the image size.
	Grid gilbert.Grid
	// Path lists row-major pixel offsets in walk order.
	Path []int
	// Offset is the golden-ratio rotation amount, see Offset.
	Offset int
}

// NewGeometry builds the walk and offset for a width×height image.
// Returns ErrInvalidDimensions if width or height is not positive.
//
// Complexity: O(W×H) time and memory.
func NewGeometry(width, height int) (*Geometry, error) {
	grid, err := gilbert.NewGrid(width, height)
	if err != nil {
		return nil, ErrInvalidDimensions
	}
	path, err := gilbert.Indices(grid.Width, grid.Height)
	if err != nil {
		return nil, err
	}

	return &Geometry{
		Grid:   grid,
		Path:   path,
		Offset: Offset(grid.Width, grid.Height),
	}, nil
}
