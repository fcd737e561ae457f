package canvas_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/modernice/faux/background/canvas"
	"github.com/modernice/faux/internal/imggen"
)

var (
	red   = color.NRGBA{0xff, 0, 0, 0xff}
	black = color.NRGBA{0, 0, 0, 0xff}
)

func TestCanvas_Allocate(t *testing.T) {
	c := canvas.New(nil)

	if c.Image() != nil {
		t.Fatalf("Canvas should not be allocated before Allocate is called")
	}

	if err := c.Allocate(12, 7); err != nil {
		t.Fatalf("Allocate failed with %q", err)
	}

	if b := c.Image().Bounds(); b.Dx() != 12 || b.Dy() != 7 {
		t.Fatalf("Canvas should be 12x7; is %dx%d", b.Dx(), b.Dy())
	}

	if p, ok := imggen.Mismatch(c.Image(), c.Image().Bounds(), black); ok {
		t.Fatalf("fresh Canvas should be opaque black; pixel %v is %v", p, c.Image().At(p.X, p.Y))
	}

	if err := c.Allocate(1, 1); !errors.Is(err, canvas.ErrAllocated) {
		t.Fatalf("second Allocate should fail with %q; got %v", canvas.ErrAllocated, err)
	}
}

func TestCanvas_FillRect(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           image.Rectangle
	}{
		{"inclusive corners", 1, 2, 3, 4, image.Rect(1, 2, 4, 5)},
		{"single pixel", 5, 5, 5, 5, image.Rect(5, 5, 6, 6)},
		{"reversed corners", 3, 4, 1, 2, image.Rect(1, 2, 4, 5)},
		{"clipped", -5, -5, 2, 100, image.Rect(0, 0, 3, 10)},
		{"outside", 20, 20, 30, 30, image.Rectangle{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := canvas.New(nil)
			if err := c.Allocate(10, 10); err != nil {
				t.Fatalf("Allocate failed with %q", err)
			}

			c.FillRect(tt.x0, tt.y0, tt.x1, tt.y1, red)

			img := c.Image()
			for y := 0; y < 10; y++ {
				for x := 0; x < 10; x++ {
					want := black
					if image.Pt(x, y).In(tt.want) {
						want = red
					}
					if got := img.NRGBAAt(x, y); got != want {
						t.Fatalf("pixel (%d,%d) should be %v; is %v", x, y, want, got)
					}
				}
			}
		})
	}
}

func TestCanvas_FillRect_unallocated(t *testing.T) {
	c := canvas.New(nil)
	c.FillRect(0, 0, 10, 10, red)

	if c.Image() != nil {
		t.Fatalf("FillRect should not allocate the Canvas")
	}
}

func TestCanvas_Encode(t *testing.T) {
	c := canvas.New(canvas.NewEncoder())

	var buf bytes.Buffer
	if err := c.Encode(&buf, "png"); !errors.Is(err, canvas.ErrNotAllocated) {
		t.Fatalf("Encode should fail with %q before Allocate; got %v", canvas.ErrNotAllocated, err)
	}

	if err := c.Allocate(6, 3); err != nil {
		t.Fatalf("Allocate failed with %q", err)
	}
	c.FillRect(0, 0, 5, 2, red)

	if err := c.Encode(&buf, "png"); err != nil {
		t.Fatalf("Encode failed with %q", err)
	}

	img, err := imaging.Decode(&buf)
	if err != nil {
		t.Fatalf("decode encoded Canvas: %v", err)
	}

	if p, ok := imggen.Mismatch(img, img.Bounds(), red); ok {
		t.Fatalf("decoded pixel %v should be %v; is %v", p, red, img.At(p.X, p.Y))
	}

	if err := c.Encode(&buf, "bmp"); !errors.Is(err, canvas.ErrUnknownFormat) {
		t.Fatalf("Encode should fail with %q; got %v", canvas.ErrUnknownFormat, err)
	}
}

func TestCanvas_Release(t *testing.T) {
	c := canvas.New(nil)
	c.Release()

	if err := c.Allocate(2, 2); err != nil {
		t.Fatalf("Allocate failed with %q", err)
	}

	c.Release()

	if c.Image() != nil {
		t.Fatalf("Release should free the raster")
	}

	var buf bytes.Buffer
	if err := c.Encode(&buf, "png"); !errors.Is(err, canvas.ErrNotAllocated) {
		t.Fatalf("Encode should fail with %q after Release; got %v", canvas.ErrNotAllocated, err)
	}
}

func TestCanvas_Encode_empty(t *testing.T) {
	for _, format := range []string{"png", "gif", "jpg"} {
		for _, size := range []image.Point{{0, 10}, {10, 0}, {0, 0}} {
			c := canvas.New(canvas.NewEncoder())
			if err := c.Allocate(size.X, size.Y); err != nil {
				t.Fatalf("Allocate(%d, %d) failed with %q", size.X, size.Y, err)
			}

			var buf bytes.Buffer
			if err := c.Encode(&buf, format); !errors.Is(err, canvas.ErrEmpty) {
				t.Fatalf("Encode(%q) of a %dx%d Canvas should fail with %q; got %v", format, size.X, size.Y, canvas.ErrEmpty, err)
			}

			if buf.Len() != 0 {
				t.Fatalf("Encode(%q) should not write anything for an empty Canvas; wrote %d bytes", format, buf.Len())
			}
		}
	}
}
