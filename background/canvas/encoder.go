package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"sort"
	"sync"

	"github.com/disintegration/imaging"
)

var (
	// ErrUnknownFormat is returned when trying to encode an image whose format
	// is not registered in an Encoder.
	ErrUnknownFormat = errors.New("unknown format")
)

// FormatEncoder encodes images of a specific format (JPEG, PNG etc.).
type FormatEncoder interface {
	// Encode encodes the provided Image and writes the result into the
	// specified Writer.
	Encode(io.Writer, image.Image) error
}

// Func allows functions to be used as FormatEncoders.
type Func func(io.Writer, image.Image) error

// Encode returns fn(w, img).
func (fn Func) Encode(w io.Writer, img image.Image) error {
	return fn(w, img)
}

// Encoder is a multi-format image encoder. Formats are the lowercase tokens
// used in requests ("png", "gif", "jpg").
type Encoder interface {
	// Encode encodes an image using the FormatEncoder registered for the
	// specified format. Encode returns ErrUnknownFormat if no FormatEncoder is
	// registered for the format.
	Encode(io.Writer, image.Image, string) error

	// Supports reports whether a FormatEncoder is registered for the format.
	Supports(string) bool

	// Formats returns the registered formats in lexical order.
	Formats() []string
}

type encoder struct {
	mux      sync.RWMutex
	encoders map[string]FormatEncoder
}

// EncoderOption is an Encoder option.
type EncoderOption func(*encoder)

// WithFormat returns an EncoderOption that registers a FormatEncoder for the
// given image format. Passing a nil FormatEncoder removes the format.
func WithFormat(format string, enc FormatEncoder) EncoderOption {
	return func(e *encoder) {
		if enc == nil {
			delete(e.encoders, format)
			return
		}
		e.encoders[format] = enc
	}
}

// WithJPEGQuality returns an EncoderOption that replaces the "jpg" encoder
// with one that encodes using the given quality (1-100).
func WithJPEGQuality(quality int) EncoderOption {
	return WithFormat("jpg", Func(func(w io.Writer, img image.Image) error {
		return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(quality))
	}))
}

// WithPNGCompression returns an EncoderOption that replaces the "png" encoder
// with one that encodes using the given compression level.
func WithPNGCompression(level png.CompressionLevel) EncoderOption {
	return WithFormat("png", Func(func(w io.Writer, img image.Image) error {
		return imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(level))
	}))
}

// NewEncoder returns a new Encoder with default support for JPEGs, GIFs and
// PNGs. Unlike a format-sniffing encoder, unknown formats are never mapped to
// a fallback encoder.
func NewEncoder(opts ...EncoderOption) Encoder {
	return newEncoder(opts...)
}

func newEncoder(opts ...EncoderOption) *encoder {
	enc := encoder{
		encoders: map[string]FormatEncoder{
			"jpg": Func(JPEGEncoder),
			"gif": Func(GIFEncoder),
			"png": Func(PNGEncoder),
		},
	}
	for _, opt := range opts {
		opt(&enc)
	}
	return &enc
}

// JPEGEncoder encodes images as JPEG with maximum quality.
func JPEGEncoder(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(100))
}

// GIFEncoder encodes images as GIF with default options.
func GIFEncoder(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.GIF)
}

// PNGEncoder encodes images as PNG with png.BestCompression as the
// compression level.
func PNGEncoder(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression))
}

// Encode encodes the provided Image using the encoder registered for the
// specified format.
func (enc *encoder) Encode(w io.Writer, img image.Image, format string) error {
	fenc, err := enc.get(format)
	if err != nil {
		return fmt.Errorf("get %q encoder: %w", format, err)
	}

	if err := fenc.Encode(w, img); err != nil {
		return fmt.Errorf("%q encoder: %w", format, err)
	}

	return nil
}

func (enc *encoder) Supports(format string) bool {
	_, err := enc.get(format)
	return err == nil
}

func (enc *encoder) Formats() []string {
	enc.mux.RLock()
	defer enc.mux.RUnlock()
	out := make([]string, 0, len(enc.encoders))
	for format := range enc.encoders {
		out = append(out, format)
	}
	sort.Strings(out)
	return out
}

func (enc *encoder) get(format string) (FormatEncoder, error) {
	enc.mux.RLock()
	defer enc.mux.RUnlock()
	if fenc, ok := enc.encoders[format]; ok {
		return fenc, nil
	}
	return nil, ErrUnknownFormat
}
