package source

import (
	"context"
	"errors"
	"image"
)

// Sentinel errors for fetching and decoding.
var (
	// ErrUnsupportedSource indicates a source that is neither a file, a URL nor base64.
	ErrUnsupportedSource = errors.New("source: unsupported source")
	// ErrEmptyPayload indicates a source that resolved to zero bytes.
	ErrEmptyPayload = errors.New("source: empty payload")
	// ErrPayloadTooLarge indicates a payload above Loader.MaxBytes.
	ErrPayloadTooLarge = errors.New("source: payload too large")
	// ErrHTTPStatus indicates a non-2xx HTTP response.
	ErrHTTPStatus = errors.New("source: unexpected HTTP status")
	// ErrDecode indicates bytes that no registered image format accepts.
	ErrDecode = errors.New("source: cannot decode image")
)

// Scheme prefixes recognised by Loader.
const (
	SchemeFile   = "file://"
	SchemeHTTP   = "http://"
	SchemeHTTPS  = "https://"
	SchemeBase64 = "base64://"
)

// DefaultMaxBytes bounds a single payload (64 MiB).
const DefaultMaxBytes int64 = 64 << 20

// Fetcher returns the raw bytes behind a source string.
type Fetcher interface {
	Fetch(ctx context.Context, src string) ([]byte, error)
}

// Decoder turns raw bytes into the first frame of the encoded image.
type Decoder interface {
	DecodeFirstFrame(raw []byte) (image.Image, error)
}
