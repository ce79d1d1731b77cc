package watermark

import (
	"errors"

	"golang.org/x/image/font"
)

// Sentinel errors for watermark operations.
var (
	// ErrNilImage indicates a nil destination image.
	ErrNilImage = errors.New("watermark: image is nil")
	// ErrEmptyToken indicates an empty token string.
	ErrEmptyToken = errors.New("watermark: token is empty")
	// ErrImageTooSmall indicates that no pixel is left for the text box after margins.
	ErrImageTooSmall = errors.New("watermark: image too small for the text box")
)

// Defaults for Stamp.
const (
	// DefaultDelta is the per-channel nudge away from the background colour.
	DefaultDelta = 10
	// DefaultAlpha is the ink opacity; slightly below opaque so glyph edges blend.
	DefaultAlpha uint8 = 0xE0
	// DefaultMargin is the distance in pixels from the right and bottom edges.
	DefaultMargin = 4
	// DefaultTokenLength is the number of hex digits produced by RandomToken callers.
	DefaultTokenLength = 8
	// DefaultFontSize is the point size used when loading a TTF/OTF face.
	DefaultFontSize = 13.0
)

// midLuminance splits backgrounds into light (>= 128) and dark.
const midLuminance = 128.0

const (
	panicDeltaInvalid  = "watermark: WithDelta: delta must be in [0,255]"
	panicMarginInvalid = "watermark: WithMargin: margin must be >= 0"
	panicFaceNil       = "watermark: WithFace: face must not be nil"
)

// Option configures Stamp.
type Option func(*options)

type options struct {
	face   font.Face
	delta  int
	alpha  uint8
	margin int
}

// WithFace sets the font face. Panics on nil.
func WithFace(face font.Face) Option {
	if face == nil {
		panic(panicFaceNil)
	}
	return func(o *options) { o.face = face }
}

// WithDelta sets the per-channel nudge. Panics outside [0,255].
func WithDelta(delta int) Option {
	if delta < 0 || delta > 255 {
		panic(panicDeltaInvalid)
	}
	return func(o *options) { o.delta = delta }
}

// WithAlpha sets the ink opacity.
func WithAlpha(alpha uint8) Option {
	return func(o *options) { o.alpha = alpha }
}

// WithMargin sets the distance from the right and bottom edges. Panics if negative.
func WithMargin(margin int) Option {
	if margin < 0 {
		panic(panicMarginInvalid)
	}
	return func(o *options) { o.margin = margin }
}

func gatherOptions(opts ...Option) options {
	o := options{
		face:   defaultFace(),
		delta:  DefaultDelta,
		alpha:  DefaultAlpha,
		margin: DefaultMargin,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
