package permute

import (
	"fmt"
	"image"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/pixshuffle/gilbert"
)

// Engine applies the transform and memoizes per-size geometry.
// An Engine is safe for concurrent use; the zero value is not usable, call
// NewEngine.
type Engine struct {
	cache *lru.Cache[gilbert.Grid, *Geometry] // nil when caching is disabled
	group singleflight.Group
}

// NewEngine returns an Engine configured by opts.
func NewEngine(opts ...Option) *Engine {
	o := gatherOptions(opts...)
	e := &Engine{}
	if o.cacheSize > 0 {
		// lru.New only fails for non-positive sizes.
		e.cache, _ = lru.New[gilbert.Grid, *Geometry](o.cacheSize)
	}

	return e
}

// Geometry returns the walk and offset for a width×height image, building
// it at most once per size while it stays cached. The result is shared:
// callers must not modify it.
//
// Returns ErrInvalidDimensions if width or height is not positive.
func (e *Engine) Geometry(width, height int) (*Geometry, error) {
	grid, err := gilbert.NewGrid(width, height)
	if err != nil {
		return nil, ErrInvalidDimensions
	}
	if e.cache == nil {
		return NewGeometry(grid.Width, grid.Height)
	}
	if g, ok := e.cache.Get(grid); ok {
		return g, nil
	}

	key := fmt.Sprintf("%dx%d", grid.Width, grid.Height)
	v, err, _ := e.group.Do(key, func() (interface{}, error) {
		if g, ok := e.cache.Get(grid); ok {
			return g, nil
		}
		g, err := NewGeometry(grid.Width, grid.Height)
		if err != nil {
			return nil, err
		}
		e.cache.Add(grid, g)
		return g, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*Geometry), nil
}

// CachedSizes returns the number of geometries currently cached.
func (e *Engine) CachedSizes() int {
	if e.cache == nil {
		return 0
	}
	return e.cache.Len()
}

// Purge drops every cached geometry.
func (e *Engine) Purge() {
	if e.cache != nil {
		e.cache.Purge()
	}
}

// Encrypt obfuscates a width×height RGBA buffer and returns a new buffer.
// See Validate for the error contract.
func (e *Engine) Encrypt(pix []uint8, width, height int) ([]uint8, error) {
	return e.apply(pix, width, height, Forward)
}

// Decrypt restores a buffer produced by Encrypt for the same dimensions.
func (e *Engine) Decrypt(pix []uint8, width, height int) ([]uint8, error) {
	return e.apply(pix, width, height, Inverse)
}

// EncryptImage obfuscates img and returns the result as a tightly packed
// *image.NRGBA anchored at (0,0).
func (e *Engine) EncryptImage(img image.Image) (*image.NRGBA, error) {
	return e.applyImage(img, Forward)
}

// DecryptImage restores an image produced by EncryptImage.
func (e *Engine) DecryptImage(img image.Image) (*image.NRGBA, error) {
	return e.applyImage(img, Inverse)
}

// Apply runs the transform in the given direction.
func (e *Engine) Apply(pix []uint8, width, height int, dir Direction) ([]uint8, error) {
	return e.apply(pix, width, height, dir)
}

func (e *Engine) apply(pix []uint8, width, height int, dir Direction) ([]uint8, error) {
	if err := Validate(pix, width, height); err != nil {
		return nil, err
	}
	if dir != Forward && dir != Inverse {
		return nil, ErrUnknownDirection
	}
	g, err := e.Geometry(width, height)
	if err != nil {
		return nil, err
	}
	shift, _ := signedShift(g.Offset, dir)

	return rotate(pix, g.Path, shift), nil
}

func (e *Engine) applyImage(img image.Image, dir Direction) (*image.NRGBA, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	src := ToNRGBA(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	pix, err := e.apply(src.Pix, w, h, dir)
	if err != nil {
		return nil, err
	}

	return &image.NRGBA{Pix: pix, Stride: Channels * w, Rect: image.Rect(0, 0, w, h)}, nil
}
