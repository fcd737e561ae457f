package config

import (
	"errors"
	"fmt"
	"image/png"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the configuration of the faux image server.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Limits LimitsConfig `yaml:"limits"`
	Raster RasterConfig `yaml:"raster"`
	Encode EncodeConfig `yaml:"encode"`
	Output OutputConfig `yaml:"output"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`

	// RequestTimeout cancels requests that take longer. 0 disables the
	// timeout.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// DisabledRoutes are the names of routes that are not served
	// ("generate", "formats" or "all").
	DisabledRoutes []string `yaml:"disabled_routes"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// LimitsConfig configures the maximum number of digits of the image
// dimensions.
type LimitsConfig struct {
	WidthDigits  int `yaml:"width_digits"`
	HeightDigits int `yaml:"height_digits"`
	BorderDigits int `yaml:"border_digits"`
}

type RasterConfig struct {
	// ExactBorders paints border bands exactly as thick as the requested
	// size instead of one pixel thicker.
	ExactBorders bool `yaml:"exact_borders"`
}

type EncodeConfig struct {
	JPEGQuality int `yaml:"jpeg_quality"`
	// PNGCompression is one of "default", "none", "speed" or "best".
	PNGCompression string `yaml:"png_compression"`
}

type OutputConfig struct {
	// BasePath is prepended to the names of generated files. Files are only
	// written if BasePath is set.
	BasePath string `yaml:"base_path"`

	// ReuseExisting serves files that already exist below BasePath instead
	// of generating them again.
	ReuseExisting bool `yaml:"reuse_existing"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:           ":8080",
			RequestTimeout: 30 * time.Second,
		},
		Log:    LogConfig{Level: "info", Format: "text"},
		Limits: LimitsConfig{
			WidthDigits:  4,
			HeightDigits: 5,
			BorderDigits: 2,
		},
		Encode: EncodeConfig{
			JPEGQuality:    100,
			PNGCompression: "best",
		},
	}
}

// Load returns the configuration. An existing .env file is loaded into the
// environment first. The defaults are then overridden by the YAML file at
// path (if path is not empty) and by FAUX_* environment variables.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %q: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (cfg *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(name); ok {
			*dst = v
		}
	}

	integer := func(name string, dst *int) error {
		v, ok := lookup(name)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*dst = n
		return nil
	}

	str("FAUX_ADDR", &cfg.Server.Addr)
	str("FAUX_LOG_LEVEL", &cfg.Log.Level)
	str("FAUX_LOG_FORMAT", &cfg.Log.Format)
	str("FAUX_PNG_COMPRESSION", &cfg.Encode.PNGCompression)
	str("FAUX_OUTPUT_BASE_PATH", &cfg.Output.BasePath)

	for name, dst := range map[string]*int{
		"FAUX_WIDTH_DIGITS":  &cfg.Limits.WidthDigits,
		"FAUX_HEIGHT_DIGITS": &cfg.Limits.HeightDigits,
		"FAUX_BORDER_DIGITS": &cfg.Limits.BorderDigits,
		"FAUX_JPEG_QUALITY":  &cfg.Encode.JPEGQuality,
	} {
		if err := integer(name, dst); err != nil {
			return err
		}
	}

	for name, dst := range map[string]*bool{
		"FAUX_EXACT_BORDERS":         &cfg.Raster.ExactBorders,
		"FAUX_OUTPUT_REUSE_EXISTING": &cfg.Output.ReuseExisting,
	} {
		if v, ok := lookup(name); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			*dst = b
		}
	}

	if v, ok := lookup("FAUX_REQUEST_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("FAUX_REQUEST_TIMEOUT: %w", err)
		}
		cfg.Server.RequestTimeout = d
	}

	if v, ok := lookup("FAUX_DISABLED_ROUTES"); ok {
		cfg.Server.DisabledRoutes = nil
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				cfg.Server.DisabledRoutes = append(cfg.Server.DisabledRoutes, name)
			}
		}
	}

	return nil
}

// Validate validates the configuration.
func (cfg Config) Validate() error {
	if cfg.Server.Addr == "" {
		return errors.New("server.addr must not be empty")
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("server.request_timeout must not be negative; is %s", cfg.Server.RequestTimeout)
	}

	switch strings.ToLower(cfg.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be \"text\" or \"json\"; is %q", cfg.Log.Format)
	}

	if cfg.Limits.WidthDigits < 1 || cfg.Limits.HeightDigits < 1 || cfg.Limits.BorderDigits < 1 {
		return fmt.Errorf("limits must be positive; are %+v", cfg.Limits)
	}

	if cfg.Encode.JPEGQuality < 1 || cfg.Encode.JPEGQuality > 100 {
		return fmt.Errorf("encode.jpeg_quality must be between 1 and 100; is %d", cfg.Encode.JPEGQuality)
	}

	if _, err := cfg.Encode.CompressionLevel(); err != nil {
		return err
	}

	return nil
}

// CompressionLevel returns the png.CompressionLevel for PNGCompression.
func (cfg EncodeConfig) CompressionLevel() (png.CompressionLevel, error) {
	switch strings.ToLower(cfg.PNGCompression) {
	case "", "default":
		return png.DefaultCompression, nil
	case "none":
		return png.NoCompression, nil
	case "speed":
		return png.BestSpeed, nil
	case "best":
		return png.BestCompression, nil
	default:
		return 0, fmt.Errorf("encode.png_compression must be one of default, none, speed or best; is %q", cfg.PNGCompression)
	}
}
