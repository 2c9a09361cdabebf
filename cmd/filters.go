package cmd

import (
	"fmt"

	"github.com/rm-hull/image-transform/internal/recipe"
	"github.com/rm-hull/image-transform/internal/transform"
)

func Blur(cfg Config, input, output string, sigma float64) error {
	if sigma < 0 {
		return fmt.Errorf("%w: sigma must not be negative", transform.ErrInvalidInput)
	}
	return process(cfg, cfg.Adapter(), input, output, &transform.GaussianBlur{Sigma: sigma})
}

func Greyscale(cfg Config, input, output string, mask bool) error {
	return process(cfg, cfg.Adapter(), input, output, &transform.Greyscale{AsMask: mask})
}

func ReplaceColor(cfg Config, input, output, colour string, tolerance float64) error {
	if tolerance <= 0 {
		return fmt.Errorf("%w: tolerance must be positive", transform.ErrInvalidInput)
	}
	replace, err := recipe.ParseColor(colour)
	if err != nil {
		return err
	}
	return process(cfg, cfg.Adapter(), input, output, &transform.ReplaceColor{Tolerance: tolerance, Replace: replace})
}
