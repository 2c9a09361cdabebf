package cmd

import (
	"log"

	"github.com/rm-hull/image-transform/internal/raster"
	"github.com/rm-hull/image-transform/internal/recipe"
)

// Apply runs every step of a YAML recipe over input. A filter named in the
// recipe overrides the configured one.
func Apply(cfg Config, recipePath, input, output string) error {
	r, err := recipe.Load(recipePath)
	if err != nil {
		return err
	}

	if r.Filter != "" {
		// already validated by recipe.Load
		cfg.Filter, _ = raster.ParseFilter(r.Filter)
	}

	adapter := cfg.Adapter()
	transforms, err := r.Build(adapter)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		log.Printf("Loaded %d steps from %s (filter: %s)", len(transforms), recipePath, cfg.Filter)
	}
	return process(cfg, adapter, input, output, transforms...)
}
