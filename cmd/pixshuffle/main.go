// Package main is the pixshuffle command: it obfuscates images along a
// generalized Hilbert curve and restores them again.
//
// Usage:
//
//	pixshuffle encrypt [flags] SRC...
//	pixshuffle decrypt [flags] SRC...
//
// SRC is a file path, an http(s) URL or a base64:// payload. Results are
// always written as PNG: a lossy format would break the exact round trip.
//
// Examples:
//
//	pixshuffle encrypt --out-dir out/ page_01.webp page_02.webp
//	pixshuffle decrypt --watermark --font NotoSans.ttf out/page_01.enc.png
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
