package watermark

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// defaultFace is the built-in fallback face.
func defaultFace() font.Face {
	return basicfont.Face7x13
}

// LoadFace parses a TrueType/OpenType file and returns a face at size
// points (72 DPI, so one point is one pixel).
func LoadFace(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("watermark: read font %q: %w", path, err)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("watermark: parse font %q: %w", path, err)
	}
	if size <= 0 {
		size = DefaultFontSize
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("watermark: face %q: %w", path, err)
	}

	return face, nil
}

// FaceOrDefault returns the face at path, or the built-in face when path is
// empty or cannot be loaded. A load failure is returned alongside the
// fallback face so the caller can report it; it is not fatal.
func FaceOrDefault(path string, size float64) (font.Face, error) {
	if path == "" {
		return defaultFace(), nil
	}
	face, err := LoadFace(path, size)
	if err != nil {
		return defaultFace(), err
	}

	return face, nil
}
