package cmd

import (
	"fmt"

	"github.com/rm-hull/image-transform/internal/transform"
)

func Pixelize(cfg Config, input, output, size string) error {
	adapter := cfg.Adapter()
	p := transform.NewPixelize(adapter.Library(), nil)
	if size != "" && !p.SetSize(size) {
		return fmt.Errorf("%w: block size %q must be a positive number", transform.ErrInvalidInput, size)
	}
	return process(cfg, adapter, input, output, p)
}
