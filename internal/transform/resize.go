package transform

import (
	"fmt"

	"github.com/rm-hull/image-transform/internal/img"
	"github.com/rm-hull/image-transform/internal/raster"
)

// Resizer scales images to a target width and height. Aspect ratio is not
// preserved.
type Resizer struct {
	lib    raster.Library
	width  int
	height int
}

var _ Transform = (*Resizer)(nil)

func NewResizer(lib raster.Library, width, height int) *Resizer {
	return &Resizer{
		lib:    lib,
		width:  width,
		height: height,
	}
}

// Resize returns a new image of exactly width x height backed by a fresh
// raster handle. image itself is not modified; the old handle is simply no
// longer referenced by the result.
func (r *Resizer) Resize(image *img.Image, width, height int) (*img.Image, error) {
	if !image.HasHandle() {
		return nil, ErrInvalidSource
	}

	h, err := r.lib.Resample(image.Handle(), width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to resize image: %w", err)
	}
	return image.Rebind(h), nil
}

func (r *Resizer) Apply(image *img.Image) (*img.Image, error) {
	return r.Resize(image, r.width, r.height)
}
