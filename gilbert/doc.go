// Package gilbert generates generalized Hilbert ("gilbert") curves over
// rectangular pixel grids and maps them to row-major buffer offsets.
//
// What:
//
//   - Grid describes a Width×Height coordinate space [0,Width)×[0,Height).
//   - Generate walks every cell of a Grid exactly once along a self-similar,
//     cache-friendly curve that works for any dimensions, not only square
//     powers of two.
//   - FlatIndices turns the walk into a permutation of [0, Width*Height)
//     using the row-major rule y*Width + x.
//   - ValidatePath / ValidatePermutation check the Hamiltonian and bijection
//     invariants; IsContiguous reports whether the walk only takes unit steps.
//
// Determinism:
//
//	The visiting order is part of the contract. Two independent calls for the
//	same dimensions always return identical sequences, so a producer and a
//	consumer can rebuild the same permutation from (Width, Height) alone.
//
// Complexity:
//
//   - Generate:    O(W×H) time, O(W×H) output, O(log(max(W,H))) recursion depth.
//   - FlatIndices: O(W×H) time and memory.
//   - Validate*:   O(W×H) time, O(W×H) scratch.
//
// Errors:
//
//   - ErrInvalidDimensions: width or height is not positive.
//   - ErrPointOutOfBounds:  a path point lies outside the grid.
//   - ErrDuplicatePoint:    a path visits the same cell twice.
//   - ErrIncompletePath:    a path length differs from Width*Height.
//   - ErrNotPermutation:    an index sequence is not a permutation of [0,n).
package gilbert
