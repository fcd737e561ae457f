package background

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/modernice/faux/background/canvas"
)

// ContentType returns the MIME type for an image format ("image/png" etc.).
func ContentType(format string) string {
	return "image/" + format
}

// Filename returns the deterministic file path for req below base. The path
// is the lowercased concatenation of base, background color, width, "x",
// height, the border location, color and size (if req has a border), and the
// format as the extension:
//
//	Filename("/imgs/", req) // "/imgs/ff00cc100x50top0000005.png"
//
// base must never be derived from user input.
func Filename(base string, req Request) string {
	var b strings.Builder
	b.WriteString(base)
	b.WriteString(req.BackgroundColor)
	b.WriteString(strconv.Itoa(req.Width))
	b.WriteString("x")
	b.WriteString(strconv.Itoa(req.Height))
	if req.Border != nil {
		b.WriteString(string(req.Border.Location))
		b.WriteString(req.Border.Color)
		b.WriteString(strconv.Itoa(req.Border.Size))
	}
	b.WriteString(".")
	b.WriteString(req.Format)
	return strings.ToLower(b.String())
}

// Encode encodes the rasterized Surface s into the given format. Encode
// returns ErrInvalidImage if s cannot be encoded into the format.
func Encode(s canvas.Surface, format string) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.Encode(&buf, format); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}
	return buf.Bytes(), nil
}

// Emitter writes encoded images to a StorageDisk under a fixed base path.
type Emitter struct {
	disk StorageDisk
	base string
}

// NewEmitter returns an Emitter that stores images on disk at the paths
// returned by Filename(base, req).
func NewEmitter(disk StorageDisk, base string) *Emitter {
	return &Emitter{
		disk: disk,
		base: base,
	}
}

// Base returns the base path of the Emitter.
func (e *Emitter) Base() string {
	return e.base
}

// Save stores the encoded image of req and returns the path it was stored at.
func (e *Emitter) Save(ctx context.Context, req Request, b []byte) (string, error) {
	path := Filename(e.base, req)
	if err := e.disk.Put(ctx, path, b); err != nil {
		return path, fmt.Errorf("put %q: %w", path, err)
	}
	return path, nil
}

// Load returns the previously saved image of req and the path it was read
// from. Load returns ErrFileNotFound if req was never saved.
func (e *Emitter) Load(ctx context.Context, req Request) ([]byte, string, error) {
	path := Filename(e.base, req)
	b, err := e.disk.Get(ctx, path)
	if err != nil {
		return nil, path, fmt.Errorf("get %q: %w", path, err)
	}
	return b, path, nil
}
