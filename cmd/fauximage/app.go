package main

import (
	"log/slog"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/modernice/faux/background"
	"github.com/modernice/faux/background/bgserver"
	"github.com/modernice/faux/background/bgserver/routes"
	"github.com/modernice/faux/background/canvas"
	"github.com/modernice/faux/internal/config"
)

// newService builds the background.Service described by cfg. Generated images
// are written below base if base is not empty.
func newService(cfg config.Config, base string, log *slog.Logger) (*background.Service, error) {
	level, err := cfg.Encode.CompressionLevel()
	if err != nil {
		return nil, err
	}

	enc := canvas.NewEncoder(
		canvas.WithJPEGQuality(cfg.Encode.JPEGQuality),
		canvas.WithPNGCompression(level),
	)

	opts := []background.Option{
		background.WithLimits(background.Limits{
			WidthDigits:  cfg.Limits.WidthDigits,
			HeightDigits: cfg.Limits.HeightDigits,
			BorderDigits: cfg.Limits.BorderDigits,
		}),
	}

	if cfg.Raster.ExactBorders {
		opts = append(opts, background.WithGeometry(background.ExactGeometry))
	}

	if base != "" {
		opts = append(opts, background.WithEmitter(background.NewEmitter(background.FileDisk(), base)))
		log.Info("writing generated images to disk", "base_path", base, "reuse_existing", cfg.Output.ReuseExisting)
		if cfg.Output.ReuseExisting {
			opts = append(opts, background.WithReuse())
		}
	}

	return background.NewService(enc, opts...), nil
}

// serverOptions returns the bgserver options for the routes configured in cfg.
func serverOptions(cfg config.Config, log *slog.Logger) ([]bgserver.Option, error) {
	disabled, err := routes.Lookup(cfg.Server.DisabledRoutes...)
	if err != nil {
		return nil, err
	}

	var opts []routes.Option
	if len(disabled) > 0 {
		opts = append(opts, routes.Disable(disabled...))
		for _, r := range disabled {
			log.Info("route disabled", "route", r.String())
		}
	}

	if cfg.Server.RequestTimeout > 0 {
		opts = append(opts, routes.Middleware(routes.All, middleware.Timeout(cfg.Server.RequestTimeout)))
	}

	return []bgserver.Option{
		bgserver.WithLogger(log),
		bgserver.WithRoutes(opts...),
	}, nil
}
