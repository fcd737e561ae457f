package background

import "errors"

var (
	// ErrUnsupportedFormat is returned when the requested image format is not
	// one of "png", "gif" or "jpg", or cannot be encoded.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrInvalidDimensions is returned when the width or height is not a
	// decimal number or has more digits than allowed.
	ErrInvalidDimensions = errors.New("invalid dimensions")

	// ErrInvalidColor is returned when a color is not a 3 or 6 digit hex
	// string.
	ErrInvalidColor = errors.New("invalid color")

	// ErrInvalidBorder is returned when a border is only partially specified
	// or one of its values is invalid.
	ErrInvalidBorder = errors.New("invalid border")

	// ErrInvalidImage is returned when a rasterized image cannot be encoded
	// into the requested format.
	ErrInvalidImage = errors.New("invalid image")
)

// Kind returns a stable identifier for the error class of err. Errors that
// don't wrap one of the package errors are reported as "internal".
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnsupportedFormat):
		return "unsupported_format"
	case errors.Is(err, ErrInvalidDimensions):
		return "invalid_dimensions"
	case errors.Is(err, ErrInvalidColor):
		return "invalid_color"
	case errors.Is(err, ErrInvalidBorder):
		return "invalid_border"
	case errors.Is(err, ErrInvalidImage):
		return "invalid_image"
	default:
		return "internal"
	}
}
