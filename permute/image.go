package permute

import (
	"image"
	"image/draw"
)

// ToNRGBA returns img as a tightly packed *image.NRGBA with bounds starting
// at (0,0) and len(Pix) == 4*Dx*Dy.
//
//   - An *image.NRGBA that already has that shape is returned as is.
//   - Other *image.NRGBA values (sub-images, padded strides) are copied row
//     by row, so straight alpha survives untouched.
//   - Any other image is converted with draw.Src.
func ToNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	n, isNRGBA := img.(*image.NRGBA)
	if isNRGBA && b.Min == (image.Point{}) && n.Stride == Channels*w && len(n.Pix) == Channels*w*h {
		return n
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	if b.Empty() {
		return dst
	}
	if isNRGBA {
		for y := 0; y < h; y++ {
			row := n.PixOffset(b.Min.X, b.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:(y+1)*dst.Stride], n.Pix[row:row+dst.Stride])
		}
		return dst
	}
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)

	return dst
}
