package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/modernice/faux/background"
	"github.com/modernice/faux/internal/config"
	"github.com/modernice/faux/internal/logging"
)

func runRender(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)

	var p background.Params
	fs.StringVar(&p.Format, "type", "png", "image format (png, gif or jpg)")
	fs.StringVar(&p.BackgroundColor, "bg", "", "background color (3 or 6 hex digits)")
	fs.StringVar(&p.Width, "w", "", "width in pixels")
	fs.StringVar(&p.Height, "h", "", "height in pixels")
	fs.StringVar(&p.BorderLocation, "bdloc", "", "border location (top, right, bottom or left)")
	fs.StringVar(&p.BorderColor, "bdcolor", "", "border color (3 or 6 hex digits)")
	fs.StringVar(&p.BorderSize, "bdsize", "", "border size in pixels")
	configPath := fs.String("config", os.Getenv("FAUX_CONFIG"), "path to a YAML config file")
	base := fs.String("o", "", "base path of the output file; overrides output.base_path")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		return fmt.Errorf("render: unexpected arguments %q", fs.Args())
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	log, err := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return err
	}

	out := cfg.Output.BasePath
	if *base != "" {
		out = *base
	}

	svc, err := newService(cfg, out, log)
	if err != nil {
		return err
	}

	img, err := svc.Generate(context.Background(), p)
	if err != nil {
		return fmt.Errorf("%s: %w", background.Kind(err), err)
	}

	if img.Path != "" {
		fmt.Fprintln(stdout, img.Path)
		return nil
	}

	_, err = stdout.Write(img.Data)
	return err
}
