package imggen

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Solid creates an image with the given dimensions and color and returns it
// together with its PNG encoding.
func Solid(width, height int, c color.Color) (*image.NRGBA, *bytes.Buffer) {
	img := imaging.New(width, height, c)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		panic(fmt.Errorf("encode png: %w", err))
	}
	return img, &buf
}

// Mismatch returns the first pixel within r whose color differs from c. The
// returned bool is false if every pixel within r has the color c.
func Mismatch(img image.Image, r image.Rectangle, c color.Color) (image.Point, bool) {
	want := color.NRGBAModel.Convert(c)
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if color.NRGBAModel.Convert(img.At(x, y)) != want {
				return image.Pt(x, y), true
			}
		}
	}
	return image.Point{}, false
}
