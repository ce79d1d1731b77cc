package source

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// DefaultTimeout bounds a single HTTP fetch when Loader.Client is nil.
const DefaultTimeout = 30 * time.Second

// Loader is the default Fetcher. The zero value is usable.
type Loader struct {
	// Client performs HTTP requests; nil means a client with DefaultTimeout.
	Client *http.Client
	// MaxBytes caps a payload; <= 0 means DefaultMaxBytes.
	MaxBytes int64
}

var defaultClient = &http.Client{Timeout: DefaultTimeout}

// Fetch resolves src as a file path, an HTTP(S) URL or a base64:// payload.
func (l *Loader) Fetch(ctx context.Context, src string) ([]byte, error) {
	var (
		raw []byte
		err error
	)
	switch {
	case IsFile(src):
		raw, err = l.readFile(strings.TrimPrefix(src, SchemeFile))
	case strings.HasPrefix(src, SchemeHTTP), strings.HasPrefix(src, SchemeHTTPS):
		raw, err = l.download(ctx, src)
	case strings.HasPrefix(src, SchemeBase64):
		raw, err = base64.StdEncoding.DecodeString(strings.TrimPrefix(src, SchemeBase64))
		if err != nil {
			err = fmt.Errorf("source: base64 payload: %w", err)
		}
	default:
		return nil, ErrUnsupportedSource
	}
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, ErrEmptyPayload
	}
	if int64(len(raw)) > l.maxBytes() {
		return nil, ErrPayloadTooLarge
	}

	return raw, nil
}

func (l *Loader) maxBytes() int64 {
	if l.MaxBytes <= 0 {
		return DefaultMaxBytes
	}
	return l.MaxBytes
}

func (l *Loader) client() *http.Client {
	if l.Client == nil {
		return defaultClient
	}
	return l.Client
}

func (l *Loader) readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readLimited(f, l.maxBytes())
}

func (l *Loader) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("source: build request: %w", err)
	}
	resp, err := l.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("source: download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %d", ErrHTTPStatus, url, resp.StatusCode)
	}

	return readLimited(resp.Body, l.maxBytes())
}

// readLimited reads at most limit+1 bytes so oversize payloads are detected
// without buffering all of them.
func readLimited(r io.Reader, limit int64) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(raw)) > limit {
		return nil, ErrPayloadTooLarge
	}

	return raw, nil
}

// IsFile reports whether src names an existing regular file.
func IsFile(src string) bool {
	fi, err := os.Stat(strings.TrimPrefix(src, SchemeFile))
	return err == nil && fi.Mode().IsRegular()
}
