package watermark

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Luminance returns the perceptual luminance 0.299R + 0.587G + 0.114B of c
// in [0,255].
func Luminance(c color.NRGBA) float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

// InkColor derives the text colour from a background colour: every channel
// moves by delta toward 0 on light backgrounds (luminance >= 128) and toward
// 255 on dark ones, clamped to [0,255]. The alpha channel is set to alpha.
func InkColor(bg color.NRGBA, delta int, alpha uint8) color.NRGBA {
	if Luminance(bg) >= midLuminance {
		delta = -delta
	}

	return color.NRGBA{
		R: clampChannel(int(bg.R) + delta),
		G: clampChannel(int(bg.G) + delta),
		B: clampChannel(int(bg.B) + delta),
		A: alpha,
	}
}

// TextBox returns where Stamp would place token inside bounds: the right and
// bottom edges sit margin pixels inside the image. The box is clipped to
// bounds and may be empty on tiny images.
func TextBox(bounds image.Rectangle, face font.Face, token string, margin int) image.Rectangle {
	width := font.MeasureString(face, token).Ceil()
	m := face.Metrics()
	height := m.Ascent.Ceil() + m.Descent.Ceil()

	right := bounds.Max.X - margin
	bottom := bounds.Max.Y - margin

	return image.Rect(right-width, bottom-height, right, bottom).Intersect(bounds)
}

// Stamp draws token into a copy of img and returns the copy; img is not
// modified.
//
// Steps:
//  1. Measure the token and place its box in the bottom-right corner.
//  2. Average the colour of the pixels under the box.
//  3. Derive the ink with InkColor and draw the glyphs over the copy.
//
// Returns ErrNilImage, ErrEmptyToken or ErrImageTooSmall.
func Stamp(img *image.NRGBA, token string, opts ...Option) (*image.NRGBA, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	if token == "" {
		return nil, ErrEmptyToken
	}
	o := gatherOptions(opts...)

	box := TextBox(img.Rect, o.face, token, o.margin)
	if box.Empty() {
		return nil, ErrImageTooSmall
	}

	dst := clone(img)
	ink := InkColor(meanColor(img, box), o.delta, o.alpha)

	// The baseline sits one descent above the bottom margin.
	advance := font.MeasureString(o.face, token).Ceil()
	descent := o.face.Metrics().Descent.Ceil()
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(ink),
		Face: o.face,
		Dot:  fixed.P(img.Rect.Max.X-o.margin-advance, img.Rect.Max.Y-o.margin-descent),
	}
	d.DrawString(token)

	return dst, nil
}

// meanColor averages the RGB channels of img over r; alpha is reported opaque.
func meanColor(img *image.NRGBA, r image.Rectangle) color.NRGBA {
	var sr, sg, sb, n uint64
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			sr += uint64(c.R)
			sg += uint64(c.G)
			sb += uint64(c.B)
			n++
		}
	}
	if n == 0 {
		return color.NRGBA{A: 0xff}
	}

	return color.NRGBA{R: uint8(sr / n), G: uint8(sg / n), B: uint8(sb / n), A: 0xff}
}

// clone copies img row by row into a fresh image with the same bounds.
func clone(img *image.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(img.Rect)
	w := img.Rect.Dx() * 4
	for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
		si := img.PixOffset(img.Rect.Min.X, y)
		di := dst.PixOffset(dst.Rect.Min.X, y)
		copy(dst.Pix[di:di+w], img.Pix[si:si+w])
	}

	return dst
}

func clampChannel(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}
