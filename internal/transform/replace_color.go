package transform

import (
	"image"
	"image/color"
	"math"

	"github.com/rm-hull/image-transform/internal/img"
	"github.com/rm-hull/image-transform/internal/raster"
)

type ReplaceColor struct {
	Tolerance float64
	Replace   color.Color
}

var _ Transform = (*ReplaceColor)(nil)

// Apply fades every pixel within Tolerance (RGB distance) of Replace towards
// transparency: an exact match ends up invisible, a pixel at the tolerance
// edge keeps its alpha.
func (s *ReplaceColor) Apply(in *img.Image) (*img.Image, error) {
	if !in.HasHandle() {
		return nil, ErrInvalidSource
	}

	replace := s.Replace
	if replace == nil {
		replace = color.White
	}
	target := color.NRGBAModel.Convert(replace).(color.NRGBA)
	rR, rG, rB := float64(target.R), float64(target.G), float64(target.B)

	src := in.Handle()
	bounds := src.Bounds()
	out := newNRGBA(bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := src.NRGBAAt(x, y)
			R, G, B, A := float64(c.R), float64(c.G), float64(c.B), float64(c.A)
			dist := math.Sqrt((rR-R)*(rR-R) + (rG-G)*(rG-G) + (rB-B)*(rB-B))
			if dist < s.Tolerance {
				c.A = uint8((dist / s.Tolerance) * A)
			}
			out.SetNRGBA(x-bounds.Min.X, y-bounds.Min.Y, c)
		}
	}
	return in.Rebind(out), nil
}

func newNRGBA(width, height int) raster.Handle {
	return image.NewNRGBA(image.Rect(0, 0, width, height))
}
