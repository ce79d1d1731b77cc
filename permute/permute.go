package permute

import "image"

// std is the process-wide Engine behind the package-level helpers.
var std = NewEngine()

// Default returns the Engine used by the package-level functions.
func Default() *Engine {
	return std
}

// Encrypt obfuscates a width×height RGBA buffer with the default Engine.
//
// Example:
//
//	out, err := permute.Encrypt(img.Pix, w, h)
//	if err != nil {
//	  // ErrInvalidDimensions, ErrBufferSizeMismatch, ErrUnsupportedChannelLayout
//	}
func Encrypt(pix []uint8, width, height int) ([]uint8, error) {
	return std.Encrypt(pix, width, height)
}

// Decrypt restores a buffer produced by Encrypt with the same dimensions.
func Decrypt(pix []uint8, width, height int) ([]uint8, error) {
	return std.Decrypt(pix, width, height)
}

// EncryptImage obfuscates img with the default Engine.
func EncryptImage(img image.Image) (*image.NRGBA, error) {
	return std.EncryptImage(img)
}

// DecryptImage restores img with the default Engine.
func DecryptImage(img image.Image) (*image.NRGBA, error) {
	return std.DecryptImage(img)
}
