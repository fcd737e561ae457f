package background

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	hexColor = regexp.MustCompile(`^([0-9a-f]{3}|[0-9a-f]{6})$`)
	digits   = regexp.MustCompile(`^[0-9]+$`)
	integer  = regexp.MustCompile(`^-?[0-9]+$`)
)

var formats = map[string]bool{
	"png": true,
	"gif": true,
	"jpg": true,
}

// Capabilities reports whether an output format can be encoded.
// canvas.Encoder implements Capabilities.
type Capabilities interface {
	Supports(format string) bool
}

// Validate validates and normalizes raw Params into a Request. All values are
// lowercased before they are checked. Zero fields of limits fall back to
// DefaultLimits().
//
// Width and height are limited by the number of characters in their textual
// form, not by their numeric value: "0000" is a valid 4-digit width that
// results in an empty image.
//
// A border is only created if its location, color and size are all given and
// size is greater than 0. A border that is only partially given fails with
// ErrInvalidBorder; a border without any of the three values, or with a size
// of 0 or less, is no border.
func Validate(p Params, caps Capabilities, limits Limits) (Request, error) {
	limits = limits.withDefaults()

	format := strings.ToLower(p.Format)
	if !formats[format] || caps == nil || !caps.Supports(format) {
		return Request{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, p.Format)
	}

	width, err := dimension("width", p.Width, limits.WidthDigits)
	if err != nil {
		return Request{}, err
	}

	height, err := dimension("height", p.Height, limits.HeightDigits)
	if err != nil {
		return Request{}, err
	}

	bg, err := ValidateColor(p.BackgroundColor)
	if err != nil {
		return Request{}, fmt.Errorf("background: %w", err)
	}

	border, err := validateBorder(p, limits.BorderDigits)
	if err != nil {
		return Request{}, err
	}

	return Request{
		Format:          format,
		BackgroundColor: bg,
		Width:           width,
		Height:          height,
		Border:          border,
	}, nil
}

// ValidateColor validates a hex color of 3 or 6 digits (without a leading
// "#") and returns its lowercase 6-digit form. 3-digit colors are expanded by
// duplicating each digit: "f0c" becomes "ff00cc".
func ValidateColor(color string) (string, error) {
	c := strings.ToLower(color)
	if !hexColor.MatchString(c) {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, color)
	}
	if len(c) == 3 {
		c = string([]byte{c[0], c[0], c[1], c[1], c[2], c[2]})
	}
	return c, nil
}

func dimension(name, v string, maxDigits int) (int, error) {
	if len(v) > maxDigits {
		return 0, fmt.Errorf("%w: %s %q exceeds %d digits", ErrInvalidDimensions, name, v, maxDigits)
	}
	if !digits.MatchString(v) {
		return 0, fmt.Errorf("%w: %s %q is not a decimal number", ErrInvalidDimensions, name, v)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q: %v", ErrInvalidDimensions, name, v, err)
	}
	return n, nil
}

func validateBorder(p Params, maxDigits int) (*Border, error) {
	var given int
	for _, v := range []string{p.BorderLocation, p.BorderColor, p.BorderSize} {
		if v != "" {
			given++
		}
	}

	switch given {
	case 0:
		return nil, nil
	case 3:
	default:
		return nil, fmt.Errorf("%w: location, color and size must be given together", ErrInvalidBorder)
	}

	if !integer.MatchString(p.BorderSize) {
		return nil, fmt.Errorf("%w: size %q is not an integer", ErrInvalidBorder, p.BorderSize)
	}

	if strings.HasPrefix(p.BorderSize, "-") {
		return nil, nil
	}

	size, err := strconv.Atoi(p.BorderSize)
	if err != nil && len(p.BorderSize) <= maxDigits {
		return nil, fmt.Errorf("%w: size %q: %v", ErrInvalidBorder, p.BorderSize, err)
	}
	if err == nil && size == 0 {
		return nil, nil
	}

	loc := Location(strings.ToLower(p.BorderLocation))
	if !loc.Valid() {
		return nil, fmt.Errorf("%w: unknown location %q", ErrInvalidBorder, p.BorderLocation)
	}

	color, err := ValidateColor(p.BorderColor)
	if err != nil {
		return nil, fmt.Errorf("%w: color: %v", ErrInvalidBorder, err)
	}

	if len(p.BorderSize) > maxDigits {
		return nil, fmt.Errorf("%w: size %q exceeds %d digits", ErrInvalidBorder, p.BorderSize, maxDigits)
	}

	return &Border{
		Location: loc,
		Color:    color,
		Size:     size,
	}, nil
}
