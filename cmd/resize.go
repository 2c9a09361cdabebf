package cmd

import (
	"fmt"

	"github.com/rm-hull/image-transform/internal/raster"
	"github.com/rm-hull/image-transform/internal/transform"
)

func Resize(cfg Config, input, output string, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", raster.ErrInvalidSize, width, height)
	}

	adapter := cfg.Adapter()
	return process(cfg, adapter, input, output, transform.NewResizer(adapter.Library(), width, height))
}
