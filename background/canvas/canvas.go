// Package canvas provides the drawing surface that background images are
// rasterized onto and the encoders that turn a surface into image bytes.
package canvas

//go:generate mockgen -source=canvas.go -destination=./mock_canvas/surface.go

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/disintegration/imaging"
)

var (
	// ErrAllocated is returned when allocating a Surface that already holds
	// pixels.
	ErrAllocated = errors.New("surface already allocated")

	// ErrNotAllocated is returned when encoding a Surface that has no pixels.
	ErrNotAllocated = errors.New("surface not allocated")

	// ErrEmpty is returned when encoding a Surface with zero width or height.
	// No format is able to represent such an image consistently.
	ErrEmpty = errors.New("surface has no pixels")
)

// Surface is a true-color drawing surface.
type Surface interface {
	// Allocate allocates a width x height raster. A Surface can only be
	// allocated once.
	Allocate(width, height int) error

	// FillRect fills the rectangle from (x0, y0) to (x1, y1), both corners
	// inclusive, with the given color. Reversed corners are swapped and the
	// rectangle is clipped to the raster.
	FillRect(x0, y0, x1, y1 int, c color.Color)

	// Encode encodes the raster in the given format and writes it to w.
	Encode(w io.Writer, format string) error

	// Release frees the raster. Releasing an unallocated Surface is a no-op.
	Release()
}

// Canvas is a Surface backed by an *image.NRGBA.
type Canvas struct {
	enc Encoder
	img *image.NRGBA
}

// New returns an unallocated Canvas that encodes using enc. If enc is nil,
// NewEncoder() is used.
func New(enc Encoder) *Canvas {
	if enc == nil {
		enc = NewEncoder()
	}
	return &Canvas{enc: enc}
}

// Allocate allocates an opaque black width x height raster. Non-positive
// dimensions allocate an empty raster.
func (c *Canvas) Allocate(width, height int) error {
	if c.img != nil {
		return ErrAllocated
	}
	c.img = imaging.New(width, height, color.NRGBA{A: 0xff})
	return nil
}

// FillRect implements Surface. It is a no-op on an unallocated Canvas.
func (c *Canvas) FillRect(x0, y0, x1, y1 int, col color.Color) {
	if c.img == nil {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	r := image.Rect(x0, y0, x1+1, y1+1).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Src)
}

// Encode implements Surface.
func (c *Canvas) Encode(w io.Writer, format string) error {
	if c.img == nil {
		return ErrNotAllocated
	}
	if c.img.Bounds().Empty() {
		return fmt.Errorf("encode %dx%d canvas: %w", c.img.Bounds().Dx(), c.img.Bounds().Dy(), ErrEmpty)
	}
	if err := c.enc.Encode(w, c.img, format); err != nil {
		return fmt.Errorf("encode canvas: %w", err)
	}
	return nil
}

// Release implements Surface.
func (c *Canvas) Release() {
	c.img = nil
}

// Image returns the raster or nil if the Canvas is not allocated.
func (c *Canvas) Image() *image.NRGBA {
	return c.img
}
