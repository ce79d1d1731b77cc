package watermark_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/katalvlaran/pixshuffle/watermark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

// solid returns a w×h opaque image filled with c.
func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

//----------------------------------------------------------------------------//
// Colour rules
//----------------------------------------------------------------------------//

// TestLuminance checks the weights on pure primaries.
func TestLuminance(t *testing.T) {
	assert.InDelta(t, 0.299*255, watermark.Luminance(color.NRGBA{R: 255}), 1e-9)
	assert.InDelta(t, 0.587*255, watermark.Luminance(color.NRGBA{G: 255}), 1e-9)
	assert.InDelta(t, 0.114*255, watermark.Luminance(color.NRGBA{B: 255}), 1e-9)
	assert.InDelta(t, 255.0, watermark.Luminance(color.NRGBA{R: 255, G: 255, B: 255}), 1e-9)
}

// TestInkColor covers both directions and clamping.
func TestInkColor(t *testing.T) {
	cases := []struct {
		name string
		bg   color.NRGBA
		want color.NRGBA
	}{
		{"Light", color.NRGBA{R: 200, G: 200, B: 200, A: 255}, color.NRGBA{R: 190, G: 190, B: 190, A: 0xE0}},
		{"Dark", color.NRGBA{R: 20, G: 30, B: 40, A: 255}, color.NRGBA{R: 30, G: 40, B: 50, A: 0xE0}},
		{"JustLight", color.NRGBA{R: 130, G: 130, B: 130, A: 255}, color.NRGBA{R: 120, G: 120, B: 120, A: 0xE0}},
		{"ClampHigh", color.NRGBA{R: 255, G: 0, B: 0, A: 255}, color.NRGBA{R: 255, G: 10, B: 10, A: 0xE0}},
		{"ClampLow", color.NRGBA{R: 5, G: 255, B: 255, A: 255}, color.NRGBA{R: 0, G: 245, B: 245, A: 0xE0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := watermark.InkColor(tc.bg, watermark.DefaultDelta, watermark.DefaultAlpha)
			assert.Equal(t, tc.want, got)
		})
	}
}

//----------------------------------------------------------------------------//
// Stamp
//----------------------------------------------------------------------------//

// TestStamp_LightBackground verifies that ink is darker than a light
// background and confined to the text box.
func TestStamp_LightBackground(t *testing.T) {
	bg := color.NRGBA{R: 240, G: 240, B: 240, A: 255}
	img := solid(120, 60, bg)

	out, err := watermark.Stamp(img, "c0ffee42")
	require.NoError(t, err)
	require.NotSame(t, img, out)

	box := watermark.TextBox(img.Rect, basicfont.Face7x13, "c0ffee42", watermark.DefaultMargin)
	require.False(t, box.Empty())

	changed := 0
	for y := 0; y < 60; y++ {
		for x := 0; x < 120; x++ {
			c := out.NRGBAAt(x, y)
			if c == bg {
				continue
			}
			changed++
			assert.True(t, image.Pt(x, y).In(box), "pixel (%d,%d) outside the text box", x, y)
			assert.Less(t, c.R, bg.R, "ink must be darker on a light background")
			assert.GreaterOrEqual(t, c.R, uint8(230))
		}
	}
	assert.Positive(t, changed, "some glyph pixels must be stamped")

	// The input stays untouched.
	assert.Equal(t, solid(120, 60, bg).Pix, img.Pix)
}

// TestStamp_DarkBackground verifies that ink is lighter on a dark background.
func TestStamp_DarkBackground(t *testing.T) {
	bg := color.NRGBA{R: 16, G: 16, B: 16, A: 255}
	out, err := watermark.Stamp(solid(100, 40, bg), "0123abcd")
	require.NoError(t, err)

	changed := 0
	for i := 0; i < len(out.Pix); i += 4 {
		if out.Pix[i] != bg.R {
			changed++
			assert.Greater(t, out.Pix[i], bg.R)
			assert.LessOrEqual(t, out.Pix[i], uint8(26))
		}
	}
	assert.Positive(t, changed)
}

// TestStamp_Options checks that a larger margin moves the box.
func TestStamp_Options(t *testing.T) {
	bg := color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	out, err := watermark.Stamp(solid(100, 60, bg), "ab",
		watermark.WithMargin(20),
		watermark.WithDelta(40),
		watermark.WithAlpha(0xff),
		watermark.WithFace(basicfont.Face7x13),
	)
	require.NoError(t, err)

	box := watermark.TextBox(out.Rect, basicfont.Face7x13, "ab", 20)
	for y := 0; y < 60; y++ {
		for x := 0; x < 100; x++ {
			c := out.NRGBAAt(x, y)
			if c != bg {
				assert.True(t, image.Pt(x, y).In(box), "pixel (%d,%d)", x, y)
				assert.Equal(t, uint8(140), c.R, "opaque ink on a dark background")
			}
		}
	}
}

// TestStamp_Errors covers every sentinel.
func TestStamp_Errors(t *testing.T) {
	_, err := watermark.Stamp(nil, "ab")
	assert.ErrorIs(t, err, watermark.ErrNilImage)

	_, err = watermark.Stamp(solid(10, 10, color.NRGBA{A: 255}), "")
	assert.ErrorIs(t, err, watermark.ErrEmptyToken)

	_, err = watermark.Stamp(solid(3, 3, color.NRGBA{A: 255}), "ab")
	assert.ErrorIs(t, err, watermark.ErrImageTooSmall)
}

// TestStamp_ClippedBox still stamps when the box only partly fits.
func TestStamp_ClippedBox(t *testing.T) {
	bg := color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	out, err := watermark.Stamp(solid(20, 12, bg), "deadbeef")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 20, 12), out.Rect)
}

// TestOptions_Panics documents the programmer-error contract.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { watermark.WithDelta(-1) })
	assert.Panics(t, func() { watermark.WithDelta(256) })
	assert.Panics(t, func() { watermark.WithMargin(-1) })
	assert.Panics(t, func() { watermark.WithFace(nil) })
}
