package transform

import (
	"image/color"

	"github.com/anthonynsimon/bild/effect"
	"github.com/rm-hull/image-transform/internal/img"
	"github.com/rm-hull/image-transform/internal/raster"
)

type Greyscale struct {
	// AsMask turns the image into a white mask whose opacity follows the
	// luminance of each pixel, instead of a plain grey copy.
	AsMask bool
}

var _ Transform = (*Greyscale)(nil)

// Apply uses the Rec. 601 luma weights.
func (s *Greyscale) Apply(in *img.Image) (*img.Image, error) {
	if !in.HasHandle() {
		return nil, ErrInvalidSource
	}
	if s.AsMask {
		return in.Rebind(luminanceMask(in.Handle())), nil
	}
	grey := effect.GrayscaleWithWeights(in.Handle(), 0.299, 0.587, 0.114)
	return in.Rebind(raster.Clone(grey)), nil
}

// luminanceMask paints every visible pixel white with an alpha equal to its
// luma. Transparent pixels stay transparent.
func luminanceMask(src raster.Handle) raster.Handle {
	bounds := src.Bounds()
	out := newNRGBA(bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := src.NRGBAAt(x, y)
			if c.A == 0 {
				continue
			}
			lum := uint8(0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B))
			out.SetNRGBA(x-bounds.Min.X, y-bounds.Min.Y, color.NRGBA{255, 255, 255, lum})
		}
	}
	return out
}
