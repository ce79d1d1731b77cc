package source

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// FirstFrameDecoder decodes any registered format. For animated GIFs the
// standard decoder already stops at the first frame.
type FirstFrameDecoder struct{}

// DecodeFirstFrame decodes raw and returns its first frame.
func (FirstFrameDecoder) DecodeFirstFrame(raw []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return img, nil
}

// Format sniffs the registered format name of raw ("png", "gif", "jpeg",
// "webp") without decoding pixel data.
func Format(raw []byte) (string, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return format, nil
}

// Load fetches src with f and decodes it with d.
func Load(ctx context.Context, f Fetcher, d Decoder, src string) (image.Image, error) {
	raw, err := f.Fetch(ctx, src)
	if err != nil {
		return nil, err
	}

	return d.DecodeFirstFrame(raw)
}
