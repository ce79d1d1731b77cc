// SPDX-License-Identifier: MIT

// Package permute implements a reversible pixel obfuscation built on the
// generalized Hilbert walk from package gilbert.
//
// What:
//
//   - Pixels are read along the walk, cyclically rotated by a golden-ratio
//     offset, and written back to the cells of the walk.
//   - Encrypt rotates forward; Decrypt rotates by the negated offset and
//     restores the input exactly.
//   - EncryptImage / DecryptImage accept any image.Image and return a tightly
//     packed *image.NRGBA.
//   - Engine caches per-size geometry (walk offsets + rotation amount) in a
//     bounded LRU; concurrent requests for the same size share one build.
//
// Why:
//
//	The transform is a pure permutation of whole RGBA quads: no resampling,
//	no clamping, so lossless round trips are exact. It is an obfuscation, not
//	a cipher; anyone who knows the dimensions can undo it.
//
// Buffer layout:
//
//	Row-major, four 8-bit channels per pixel (R,G,B,A, non-premultiplied),
//	len(pix) == 4*width*height, pixel (x,y) at offset 4*(y*width+x).
//	Inputs are never modified; every call allocates its output.
//
// Complexity:
//
//   - Geometry build: O(W×H) time and memory, once per size while cached.
//   - Transform:      O(W×H) time, one output allocation.
//
// Errors:
//
//   - ErrInvalidDimensions:        width or height is not positive.
//   - ErrBufferSizeMismatch:       len(pix) != 4*width*height.
//   - ErrUnsupportedChannelLayout: the buffer holds a whole number of pixels
//     with a channel count other than four (gray, RGB, ...).
//   - ErrInvalidPath:              Transform got indices that are not a permutation.
//   - ErrUnknownDirection:         Direction is neither Forward nor Inverse.
//   - ErrNilImage:                 a nil image.Image was supplied.
package permute
