package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rm-hull/image-transform/internal/img"
	"github.com/rm-hull/image-transform/internal/mimetype"
	"github.com/rm-hull/image-transform/internal/raster"
)

const (
	EnvFilter      = "IMAGE_TRANSFORM_FILTER"
	EnvJPEGQuality = "IMAGE_TRANSFORM_JPEG_QUALITY"
)

type Config struct {
	Filter      raster.Filter
	JPEGQuality int
	Verbose     bool
}

// ConfigFromEnv reads the raster settings from the environment, after any
// .env file has been loaded.
func ConfigFromEnv() (Config, error) {
	cfg := Config{
		Filter:      raster.BiLinear,
		JPEGQuality: raster.DefaultJPEGQuality,
	}

	if value := os.Getenv(EnvFilter); value != "" {
		filter, err := raster.ParseFilter(value)
		if err != nil {
			return cfg, fmt.Errorf("environment variable %s: %w", EnvFilter, err)
		}
		cfg.Filter = filter
	}

	if value := os.Getenv(EnvJPEGQuality); value != "" {
		quality, err := strconv.Atoi(value)
		if err != nil || quality < 1 || quality > 100 {
			return cfg, fmt.Errorf("environment variable %s: expected 1-100, got %q", EnvJPEGQuality, value)
		}
		cfg.JPEGQuality = quality
	}

	return cfg, nil
}

func (c Config) Engine() *raster.Engine {
	return raster.NewEngine(
		raster.WithFilter(c.Filter),
		raster.WithJPEGQuality(c.JPEGQuality),
	)
}

// Adapter sniffs file content before decoding so that mislabelled files
// are reported as unsupported rather than corrupt.
func (c Config) Adapter() *img.Adapter {
	return img.NewAdapter(c.Engine(), img.WithResolver(mimetype.Sniffer{}))
}
