// Package source fetches image bytes from where a user points at them and
// decodes the first frame into an image.Image.
//
// A source string is resolved in this order:
//
//   - an existing file path (optionally prefixed with "file://"),
//   - an "http://" or "https://" URL, fetched with the caller's context,
//   - a "base64://" payload, decoded in memory.
//
// Decoding supports PNG, JPEG, GIF (first frame of animations) and WebP.
// Fetcher and Decoder are small interfaces so callers can inject their own
// transport or codec set; Loader and FirstFrameDecoder are the defaults.
package source
