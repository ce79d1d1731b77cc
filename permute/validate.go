package permute

import (
	"math"

	"github.com/katalvlaran/pixshuffle/gilbert"
)

// Validate checks that pix is a 4-channel buffer for a width×height image.
//
// Order of checks:
//  1. width, height > 0 and 4*width*height fits   else ErrInvalidDimensions
//     (area capped at gilbert.MaxArea)
//  2. len(pix) == 4*width*height                  ok
//  3. len(pix) is a non-zero multiple of w*h      ErrUnsupportedChannelLayout
//  4. anything else                               ErrBufferSizeMismatch
//
// Complexity: O(1).
func Validate(pix []uint8, width, height int) error {
	if width <= 0 || height <= 0 ||
		width > gilbert.MaxArea/height || width > math.MaxInt/Channels/height {
		return ErrInvalidDimensions
	}
	n := width * height
	switch {
	case len(pix) == Channels*n:
		return nil
	case len(pix) > 0 && len(pix)%n == 0:
		return ErrUnsupportedChannelLayout
	}

	return ErrBufferSizeMismatch
}
