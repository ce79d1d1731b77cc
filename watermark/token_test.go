package watermark_test

import (
	"math/rand"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/katalvlaran/pixshuffle/watermark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

var hexToken = regexp.MustCompile(`^[0-9a-f]+$`)

// TestNewToken_Deterministic verifies the seed policy.
func TestNewToken_Deterministic(t *testing.T) {
	a := watermark.NewToken(rand.New(rand.NewSource(99)), 12)
	b := watermark.NewToken(rand.New(rand.NewSource(99)), 12)
	assert.Equal(t, a, b)
	assert.Len(t, a, 12)
	assert.Regexp(t, hexToken, a)

	assert.Equal(t, watermark.NewToken(nil, 8), watermark.NewToken(nil, 8), "nil RNG uses the fixed default stream")
	assert.Empty(t, watermark.NewToken(nil, 0))
}

// TestRandomToken checks shape only; the value is random.
func TestRandomToken(t *testing.T) {
	tok := watermark.RandomToken(watermark.DefaultTokenLength)
	assert.Len(t, tok, watermark.DefaultTokenLength)
	assert.Regexp(t, hexToken, tok)
}

// TestFaceOrDefault verifies the non-fatal fallback to the built-in face.
func TestFaceOrDefault(t *testing.T) {
	face, err := watermark.FaceOrDefault("", watermark.DefaultFontSize)
	require.NoError(t, err)
	assert.Equal(t, basicfont.Face7x13, face)

	face, err = watermark.FaceOrDefault(filepath.Join(t.TempDir(), "missing.ttf"), 12)
	assert.Error(t, err)
	assert.Equal(t, basicfont.Face7x13, face)

	garbage := filepath.Join(t.TempDir(), "garbage.ttf")
	require.NoError(t, os.WriteFile(garbage, []byte("not a font"), 0o600))
	face, err = watermark.FaceOrDefault(garbage, 12)
	assert.Error(t, err)
	assert.Equal(t, basicfont.Face7x13, face)
}
