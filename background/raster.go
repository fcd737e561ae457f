package background

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/modernice/faux/background/canvas"
)

// Geometry determines the thickness of border bands.
type Geometry int

const (
	// LegacyGeometry paints border bands one pixel thicker than the border
	// size: a top border of size 2 covers rows 0 to 2. This is the default and
	// produces output identical to the classic faux image generator.
	LegacyGeometry Geometry = iota

	// ExactGeometry paints border bands exactly as thick as the border size.
	ExactGeometry
)

func (g Geometry) String() string {
	switch g {
	case LegacyGeometry:
		return "legacy"
	case ExactGeometry:
		return "exact"
	default:
		return fmt.Sprintf("Geometry(%d)", int(g))
	}
}

// RGB decodes a 6-digit hex color into an opaque color. Each channel is
// decoded from its own pair of hex digits.
func RGB(hex string) (color.NRGBA, error) {
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("%w: %q is not a 6-digit hex color", ErrInvalidColor, hex)
	}

	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: channel %d of %q: %v", ErrInvalidColor, i, hex, err)
		}
		channels[i] = uint8(v)
	}

	return color.NRGBA{R: channels[0], G: channels[1], B: channels[2], A: 0xff}, nil
}

// Rasterize allocates s with the dimensions of req and paints the background
// and, if req has one, the border band. The background is painted first and
// the border band is painted over it.
//
// Border sizes are not checked against the image dimensions. Bands that
// reach beyond the image are clipped by the Surface.
func Rasterize(s canvas.Surface, req Request, geo Geometry) error {
	bg, err := RGB(req.BackgroundColor)
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}

	var bd color.NRGBA
	if req.Border != nil {
		if bd, err = RGB(req.Border.Color); err != nil {
			return fmt.Errorf("border: %w", err)
		}
	}

	if err := s.Allocate(req.Width, req.Height); err != nil {
		return fmt.Errorf("allocate %dx%d surface: %w", req.Width, req.Height, err)
	}

	maxX, maxY := req.Width-1, req.Height-1

	if req.Border == nil {
		s.FillRect(0, 0, maxX, maxY, bg)
		return nil
	}

	size := req.Border.Size

	// reach is the offset of the inner edge of the band from the outer edge.
	reach := size
	if geo == ExactGeometry {
		reach = size - 1
	}

	switch req.Border.Location {
	case Top:
		s.FillRect(0, size, maxX, maxY, bg)
		s.FillRect(0, 0, maxX, reach, bd)
	case Right:
		s.FillRect(0, 0, maxX-size, maxY, bg)
		s.FillRect(maxX-reach, 0, maxX, maxY, bd)
	case Bottom:
		s.FillRect(0, 0, maxX, maxY-size, bg)
		s.FillRect(0, maxY-reach, maxX, maxY, bd)
	case Left:
		s.FillRect(size, 0, maxX, maxY, bg)
		s.FillRect(0, 0, reach, maxY, bd)
	default:
		return fmt.Errorf("%w: unknown location %q", ErrInvalidBorder, req.Border.Location)
	}

	return nil
}
