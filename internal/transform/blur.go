package transform

import (
	"github.com/anthonynsimon/bild/blur"
	"github.com/rm-hull/image-transform/internal/img"
	"github.com/rm-hull/image-transform/internal/raster"
)

type GaussianBlur struct {
	Sigma float64
}

var _ Transform = (*GaussianBlur)(nil)

// Apply returns a blurred copy; a Sigma of zero or less is a plain copy.
func (s *GaussianBlur) Apply(image *img.Image) (*img.Image, error) {
	if !image.HasHandle() {
		return nil, ErrInvalidSource
	}
	return image.Rebind(raster.Clone(blur.Gaussian(image.Handle(), s.Sigma))), nil
}
