// File: gilbert/example_test.go
package gilbert_test

import (
	"fmt"

	"github.com/katalvlaran/pixshuffle/gilbert"
)

// ExampleGenerate walks a 3×2 grid. The curve climbs the first column,
// crosses the top row and returns along the bottom row.
//
//	(0,0) (1,0)←(2,0)
//	  ↓          ↑
//	(0,1)→(1,1)→(2,1)
//
// Complexity: O(W·H)
func ExampleGenerate() {
	path, _ := gilbert.Generate(3, 2)
	for _, p := range path {
		fmt.Printf("(%d,%d) ", p.X, p.Y)
	}
	fmt.Println()

	// Output:
	// (0,0) (0,1) (1,1) (2,1) (2,0) (1,0)
}

// ExampleIndices shows the row-major offsets of the same walk; they form a
// permutation of 0..5.
func ExampleIndices() {
	idx, _ := gilbert.Indices(3, 2)
	fmt.Println(idx)
	fmt.Println(gilbert.ValidatePermutation(idx, 6) == nil)

	// Output:
	// [0 3 4 5 2 1]
	// true
}
