package permute

import "github.com/katalvlaran/pixshuffle/gilbert"

// Transform rotates the pixels of pix along path by offset positions.
//
// Contract:
//   - path is a permutation of [0,n) listing pixel offsets in walk order.
//   - len(pix) == Channels*n.
//   - Forward:  rotated[k] = pix[path[(k-offset) mod n]]
//   - Inverse:  rotated[k] = pix[path[(k+offset) mod n]]
//   - The rotated sequence is scattered back: out[path[k]] = rotated[k].
//
// offset may be any integer; it is reduced modulo n. n == 0 yields an empty
// buffer and n == 1 a copy. pix is never modified.
//
// Returns ErrInvalidPath, ErrBufferSizeMismatch or ErrUnknownDirection.
//
// Complexity: O(n) time, O(n) space.
func Transform(pix []uint8, path []int, offset int, dir Direction) ([]uint8, error) {
	if err := gilbert.ValidatePermutation(path, len(path)); err != nil {
		return nil, ErrInvalidPath
	}
	if len(pix) != Channels*len(path) {
		return nil, ErrBufferSizeMismatch
	}
	shift, err := signedShift(offset, dir)
	if err != nil {
		return nil, err
	}

	return rotate(pix, path, shift), nil
}

// signedShift folds the direction into the sign of the rotation amount.
func signedShift(offset int, dir Direction) (int, error) {
	switch dir {
	case Forward:
		return offset, nil
	case Inverse:
		return -offset, nil
	}
	return 0, ErrUnknownDirection
}

// rotate performs a right rotation by shift along a pre-validated path.
// Every pixel quad moves as a unit.
func rotate(pix []uint8, path []int, shift int) []uint8 {
	out := make([]uint8, len(pix))
	n := len(path)
	if n == 0 {
		return out
	}
	s := shift % n
	if s < 0 {
		s += n
	}

	// j tracks (k - s) mod n.
	j := 0
	if s != 0 {
		j = n - s
	}
	for k := 0; k < n; k++ {
		dst := path[k] * Channels
		src := path[j] * Channels
		copy(out[dst:dst+Channels], pix[src:src+Channels])
		j++
		if j == n {
			j = 0
		}
	}

	return out
}
