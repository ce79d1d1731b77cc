// SPDX-License-Identifier: MIT
// Package permute: sentinel error set.
// Every validation failure is detected before geometry is built and returned
// as one of these sentinels; callers match them with errors.Is.

package permute

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive width or height, or a
	// size whose area or buffer length cannot be represented.
	ErrInvalidDimensions = errors.New("permute: width and height must be > 0 and fit in memory")

	// ErrBufferSizeMismatch indicates len(pix) != 4*width*height.
	ErrBufferSizeMismatch = errors.New("permute: pixel buffer size does not match dimensions")

	// ErrUnsupportedChannelLayout indicates a buffer that is not 4-channel RGBA.
	ErrUnsupportedChannelLayout = errors.New("permute: pixel buffer is not 4-channel RGBA")

	// ErrInvalidPath indicates Transform indices that are not a permutation of [0,n).
	ErrInvalidPath = errors.New("permute: path is not a permutation of the buffer")

	// ErrUnknownDirection indicates a Direction other than Forward or Inverse.
	ErrUnknownDirection = errors.New("permute: unknown direction")

	// ErrNilImage indicates a nil image.Image argument.
	ErrNilImage = errors.New("permute: image is nil")
)
