package raster

import (
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// Filter names the resampling kernel used by Engine.Resample.
type Filter string

const (
	NearestNeighbor Filter = "nearest"
	ApproxBiLinear  Filter = "approx-bilinear"
	BiLinear        Filter = "bilinear"
	CatmullRom      Filter = "catmull-rom"
	Lanczos         Filter = "lanczos"
)

func ParseFilter(s string) (Filter, error) {
	switch f := Filter(strings.ToLower(strings.TrimSpace(s))); f {
	case NearestNeighbor, ApproxBiLinear, BiLinear, CatmullRom, Lanczos:
		return f, nil
	case "":
		return BiLinear, nil
	default:
		return "", fmt.Errorf("unknown resample filter %q", s)
	}
}

// scale writes src, stretched to fill dst, using the kernel named by f.
func (f Filter) scale(dst Handle, src Handle) Handle {
	if f == Lanczos {
		return imaging.Resize(src, dst.Bounds().Dx(), dst.Bounds().Dy(), imaging.Lanczos)
	}

	var interp draw.Interpolator
	switch f {
	case NearestNeighbor:
		interp = draw.NearestNeighbor
	case ApproxBiLinear:
		interp = draw.ApproxBiLinear
	case CatmullRom:
		interp = draw.CatmullRom
	default:
		interp = draw.BiLinear
	}
	interp.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
