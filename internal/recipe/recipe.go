// Package recipe reads a pipeline of transforms from YAML, for example:
//
//	filter: lanczos
//	steps:
//	  - resize: {width: 320, height: 200}
//	  - overlay: {image: logo.png, position: bottom-right}
//	  - replace-color: {color: "#ffffff", tolerance: 40}
//	  - pixelize: {size: 8}
//
// Each step holds exactly one operation. Relative overlay paths are taken
// from the directory the recipe was loaded from.
package recipe

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/rm-hull/image-transform/internal/img"
	"github.com/rm-hull/image-transform/internal/raster"
	"github.com/rm-hull/image-transform/internal/transform"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

type Recipe struct {
	Filter string `yaml:"filter,omitempty"`
	Steps  []Step `yaml:"steps"`

	dir string
}

type Step struct {
	Resize       *Resize       `yaml:"resize,omitempty"`
	Overlay      *Overlay      `yaml:"overlay,omitempty"`
	Pixelize     *Pixelize     `yaml:"pixelize,omitempty"`
	Blur         *Blur         `yaml:"blur,omitempty"`
	Greyscale    *Greyscale    `yaml:"greyscale,omitempty"`
	ReplaceColor *ReplaceColor `yaml:"replace-color,omitempty"`
}

type Resize struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Overlay takes either a position or a left/top offset. Offsets may be
// written as numbers or numeric strings.
type Overlay struct {
	Image    string `yaml:"image"`
	Position string `yaml:"position,omitempty"`
	Left     any    `yaml:"left,omitempty"`
	Top      any    `yaml:"top,omitempty"`
}

type Pixelize struct {
	Size any `yaml:"size,omitempty"`
}

type Blur struct {
	Sigma float64 `yaml:"sigma"`
}

type Greyscale struct {
	Mask bool `yaml:"mask,omitempty"`
}

type ReplaceColor struct {
	Color     string  `yaml:"color,omitempty"`
	Tolerance float64 `yaml:"tolerance"`
}

// Loader is the part of img.Adapter a recipe needs to open overlay images.
type Loader interface {
	Library() raster.Library
	Open(path string) (*img.Image, error)
}

var _ Loader = (*img.Adapter)(nil)

func Load(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe: %w", err)
	}

	r, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	r.dir = filepath.Dir(path)
	return r, nil
}

// Parse decodes and validates a recipe. Unknown keys are rejected.
func Parse(rd io.Reader) (*Recipe, error) {
	var r Recipe
	dec := yaml.NewDecoder(rd)
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty recipe", transform.ErrInvalidInput)
		}
		return nil, fmt.Errorf("failed to parse recipe: %w", err)
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *Recipe) Validate() error {
	if r.Filter != "" {
		if _, err := raster.ParseFilter(r.Filter); err != nil {
			return fmt.Errorf("%w: %v", transform.ErrInvalidInput, err)
		}
	}
	for i, step := range r.Steps {
		if err := step.validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func (s Step) validate() error {
	ops := []bool{
		s.Resize != nil,
		s.Overlay != nil,
		s.Pixelize != nil,
		s.Blur != nil,
		s.Greyscale != nil,
		s.ReplaceColor != nil,
	}
	if n := lo.Count(ops, true); n != 1 {
		return fmt.Errorf("%w: expected exactly one operation, got %d", transform.ErrInvalidInput, n)
	}

	switch {
	case s.Resize != nil:
		if s.Resize.Width <= 0 || s.Resize.Height <= 0 {
			return fmt.Errorf("%w: resize needs a positive width and height, got %dx%d",
				transform.ErrInvalidInput, s.Resize.Width, s.Resize.Height)
		}

	case s.Overlay != nil:
		o := s.Overlay
		if o.Image == "" {
			return fmt.Errorf("%w: overlay needs an image", transform.ErrInvalidInput)
		}
		if o.Position != "" {
			if _, ok := transform.ParseAnchor(o.Position); !ok {
				return fmt.Errorf("%w: unknown position %q", transform.ErrInvalidInput, o.Position)
			}
		}
		probe := transform.NewOverlayAt(nil, nil, 0, 0)
		if o.Left != nil && !probe.SetLeft(o.Left) {
			return fmt.Errorf("%w: overlay left %v is not a number", transform.ErrInvalidInput, o.Left)
		}
		if o.Top != nil && !probe.SetTop(o.Top) {
			return fmt.Errorf("%w: overlay top %v is not a number", transform.ErrInvalidInput, o.Top)
		}

	case s.Pixelize != nil:
		if s.Pixelize.Size != nil && !transform.NewPixelize(nil, nil).SetSize(s.Pixelize.Size) {
			return fmt.Errorf("%w: pixelize size %v must be a positive number", transform.ErrInvalidInput, s.Pixelize.Size)
		}

	case s.Blur != nil:
		if s.Blur.Sigma < 0 {
			return fmt.Errorf("%w: blur sigma must not be negative", transform.ErrInvalidInput)
		}

	case s.ReplaceColor != nil:
		if s.ReplaceColor.Tolerance <= 0 {
			return fmt.Errorf("%w: replace-color tolerance must be positive", transform.ErrInvalidInput)
		}
		if _, err := ParseColor(s.ReplaceColor.Color); err != nil {
			return err
		}
	}
	return nil
}

// Build turns the recipe into transforms, opening any overlay images
// through loader.
func (r *Recipe) Build(loader Loader) ([]transform.Transform, error) {
	lib := loader.Library()
	transforms := make([]transform.Transform, 0, len(r.Steps))

	for i, step := range r.Steps {
		t, err := r.build(loader, lib, step)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		transforms = append(transforms, t)
	}
	return transforms, nil
}

func (r *Recipe) build(loader Loader, lib raster.Library, step Step) (transform.Transform, error) {
	switch {
	case step.Resize != nil:
		return transform.NewResizer(lib, step.Resize.Width, step.Resize.Height), nil

	case step.Overlay != nil:
		overlay, err := loader.Open(r.resolve(step.Overlay.Image))
		if err != nil {
			return nil, fmt.Errorf("failed to open overlay: %w", err)
		}
		return newOverlay(lib, overlay, step.Overlay), nil

	case step.Pixelize != nil:
		return transform.NewPixelize(lib, step.Pixelize.Size), nil

	case step.Blur != nil:
		return &transform.GaussianBlur{Sigma: step.Blur.Sigma}, nil

	case step.Greyscale != nil:
		return &transform.Greyscale{AsMask: step.Greyscale.Mask}, nil

	case step.ReplaceColor != nil:
		c, err := ParseColor(step.ReplaceColor.Color)
		if err != nil {
			return nil, err
		}
		return &transform.ReplaceColor{Tolerance: step.ReplaceColor.Tolerance, Replace: c}, nil
	}
	return nil, fmt.Errorf("%w: empty step", transform.ErrInvalidInput)
}

func newOverlay(lib raster.Library, overlay *img.Image, placement *Overlay) *transform.Overlay {
	if placement.Position != "" {
		return transform.NewOverlay(lib, overlay, placement.Position)
	}
	o := transform.NewOverlayAt(lib, overlay, 0, 0)
	if placement.Left != nil {
		o.SetLeft(placement.Left)
	}
	if placement.Top != nil {
		o.SetTop(placement.Top)
	}
	return o
}

func (r *Recipe) resolve(path string) string {
	if filepath.IsAbs(path) || r.dir == "" {
		return path
	}
	return filepath.Join(r.dir, path)
}

// ParseColor reads "#rgb" or "#rrggbb". An empty string is white.
func ParseColor(s string) (color.Color, error) {
	if s == "" {
		return color.White, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid colour %q", transform.ErrInvalidInput, s)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
