// Package pixshuffle is a reversible, deterministic pixel shuffler for
// images: pixels are read along a generalized Hilbert curve, rotated by a
// golden-ratio offset and written back, and the same walk with the negated
// offset restores the original bit for bit.
//
// 🚀 What is inside?
//
//   - Curve generation: generalized Hilbert ("gilbert") walks over any W×H grid
//   - Index mapping: walk → row-major buffer offsets, with permutation checks
//   - Permutation engine: Encrypt / Decrypt over raw RGBA or image.Image,
//     with an LRU of per-size geometry shared across goroutines
//   - Watermark: a low-contrast hex token stamped on restored images
//   - Sources: files, http(s) URLs and base64:// payloads; PNG, JPEG, GIF, WebP
//
// ✨ Guarantees
//
//   - Determinism – the walk depends only on (width, height)
//   - Exactness – whole RGBA quads move, nothing is resampled or clamped
//   - Purity – inputs are never modified; every call allocates its output
//   - Not a cipher – there is no key; anyone who knows the size can undo it
//
// Under the hood, everything is organized under these subpackages:
//
//	gilbert/        — Grid, curve generation, flat indices, path validation
//	permute/        — Transform, Offset, Engine, Encrypt/Decrypt(+Image)
//	watermark/      — Stamp, InkColor, tokens, font loading with fallback
//	source/         — Fetcher/Decoder interfaces and their defaults
//	cmd/pixshuffle/ — command-line front end
//
// Quick ASCII example (3×2 grid, walk order in brackets):
//
//	[0]  [5]←[4]
//	 ↓         ↑
//	[1]→[2]→[3]
//
//	go install github.com/katalvlaran/pixshuffle/cmd/pixshuffle@latest
package pixshuffle
