package background

import (
	"context"
	"errors"
	"fmt"

	"github.com/modernice/faux/background/canvas"
)

// Image is a generated image.
type Image struct {
	Request     Request
	ContentType string
	Data        []byte

	// Path is the path the image was saved at or an empty string if the
	// Service has no Emitter.
	Path string

	// Reused reports whether Data was read from an existing file instead of
	// being rasterized.
	Reused bool
}

// Service validates, rasterizes and encodes background images. Every call to
// Generate uses its own Surface; a Service can be used concurrently.
type Service struct {
	enc      canvas.Encoder
	limits   Limits
	geometry Geometry
	surfaces func() canvas.Surface
	emitter  *Emitter
	reuse    bool
}

// Option is a Service option.
type Option func(*Service)

// WithLimits returns an Option that sets the digit limits for dimensions.
func WithLimits(l Limits) Option {
	return func(svc *Service) {
		svc.limits = l
	}
}

// WithGeometry returns an Option that sets the border Geometry.
func WithGeometry(g Geometry) Option {
	return func(svc *Service) {
		svc.geometry = g
	}
}

// WithSurfaces returns an Option that replaces the Surface factory. By
// default, a Service rasterizes onto a canvas.Canvas.
func WithSurfaces(fn func() canvas.Surface) Option {
	return func(svc *Service) {
		svc.surfaces = fn
	}
}

// WithEmitter returns an Option that makes the Service save every generated
// image using the given Emitter.
func WithEmitter(e *Emitter) Option {
	return func(svc *Service) {
		svc.emitter = e
	}
}

// WithReuse returns an Option that makes the Service return the file that the
// Emitter already saved for a request instead of generating it again. It has
// no effect without an Emitter.
func WithReuse() Option {
	return func(svc *Service) {
		svc.reuse = true
	}
}

// NewService returns a Service that encodes images using enc. enc also
// decides which formats are supported. If enc is nil, canvas.NewEncoder() is
// used.
func NewService(enc canvas.Encoder, opts ...Option) *Service {
	if enc == nil {
		enc = canvas.NewEncoder()
	}
	svc := Service{
		enc:    enc,
		limits: DefaultLimits(),
	}
	for _, opt := range opts {
		opt(&svc)
	}
	if svc.surfaces == nil {
		svc.surfaces = func() canvas.Surface {
			return canvas.New(svc.enc)
		}
	}
	return &svc
}

// Formats returns the formats the Service can generate.
func (svc *Service) Formats() []string {
	var out []string
	for _, format := range svc.enc.Formats() {
		if formats[format] {
			out = append(out, format)
		}
	}
	return out
}

// Limits returns the digit limits of the Service.
func (svc *Service) Limits() Limits {
	return svc.limits.withDefaults()
}

// Generate validates p and returns the generated image. If the Service has an
// Emitter, the image is also saved.
//
// The Surface used for the image is released before Generate returns. If
// validation fails or an existing file is reused, the Surface is never
// allocated.
func (svc *Service) Generate(ctx context.Context, p Params) (Image, error) {
	surface := svc.surfaces()
	defer surface.Release()

	req, err := Validate(p, svc.enc, svc.limits)
	if err != nil {
		return Image{}, err
	}

	if svc.reuse && svc.emitter != nil {
		b, path, err := svc.emitter.Load(ctx, req)
		switch {
		case err == nil:
			return Image{
				Request:     req,
				ContentType: ContentType(req.Format),
				Data:        b,
				Path:        path,
				Reused:      true,
			}, nil
		case !errors.Is(err, ErrFileNotFound):
			return Image{}, fmt.Errorf("load image: %w", err)
		}
	}

	if err := Rasterize(surface, req, svc.geometry); err != nil {
		return Image{}, fmt.Errorf("rasterize: %w", err)
	}

	b, err := Encode(surface, req.Format)
	if err != nil {
		return Image{}, err
	}

	img := Image{
		Request:     req,
		ContentType: ContentType(req.Format),
		Data:        b,
	}

	if svc.emitter != nil {
		path, err := svc.emitter.Save(ctx, req, b)
		if err != nil {
			return Image{}, fmt.Errorf("save image: %w", err)
		}
		img.Path = path
	}

	return img, nil
}
