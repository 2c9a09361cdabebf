package cmd

import (
	"fmt"
	"strings"

	"github.com/rm-hull/image-transform/internal/transform"
	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
)

// Placement says where an overlay goes. Position wins over Left and Top,
// which are kept as strings so they can be validated as numbers.
type Placement struct {
	Position string
	Left     string
	Top      string
}

func Overlay(cfg Config, input, overlayPath, output string, placement Placement) error {
	o := transform.NewOverlayAt(nil, nil, 0, 0)
	if placement.Position != "" {
		if !o.SetPosition(placement.Position) {
			return fmt.Errorf("%w: unknown position %q%s", transform.ErrInvalidInput, placement.Position, positionHint(placement.Position))
		}
	} else {
		if placement.Left != "" && !o.SetLeft(placement.Left) {
			return fmt.Errorf("%w: left offset %q is not a number", transform.ErrInvalidInput, placement.Left)
		}
		if placement.Top != "" && !o.SetTop(placement.Top) {
			return fmt.Errorf("%w: top offset %q is not a number", transform.ErrInvalidInput, placement.Top)
		}
	}

	adapter := cfg.Adapter()
	overlay, err := adapter.Open(overlayPath)
	if err != nil {
		return fmt.Errorf("failed to open overlay: %w", err)
	}

	compositor := transform.NewOverlayAt(adapter.Library(), overlay, o.Left(), o.Top())
	if o.Position() != "" {
		compositor.SetPosition(string(o.Position()))
	}
	return process(cfg, adapter, input, output, compositor)
}

func positionHint(label string) string {
	names := lo.Map(transform.Anchors(), func(a transform.Anchor, _ int) string {
		return string(a)
	})
	if matches := fuzzy.Find(strings.ToLower(label), names); len(matches) > 0 {
		return fmt.Sprintf(", did you mean %q?", matches[0].Str)
	}
	return ", expected one of: " + strings.Join(names, ", ")
}
