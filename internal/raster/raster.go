// Package raster is the seam between image-transform and the pixel buffers
// it manipulates. Everything above this package treats a Handle as opaque
// and asks a Library to create, decode, encode, scale and composite them.
package raster

import (
	"errors"
	"image"
	"io"

	"github.com/disintegration/imaging"
)

// Handle is a truecolor pixel buffer owned by whoever holds it.
type Handle = *image.NRGBA

var (
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrInvalidHandle     = errors.New("no raster handle bound")
	ErrInvalidSize       = errors.New("invalid image size")
)

type Library interface {
	Create(width, height int) (Handle, error)
	Decode(r io.Reader) (Handle, string, error)
	// Clone returns an independent copy of h.
	Clone(h Handle) (Handle, error)
	Encode(w io.Writer, h Handle, mimeType string) error
	Resample(h Handle, width, height int) (Handle, error)
	Composite(dst, src Handle, x, y int) error
	Pixelate(h Handle, blockSize int) (Handle, error)
	Dimensions(h Handle) (int, int)
}

// Clone copies any image into a new truecolor handle with its origin at (0, 0).
func Clone(src image.Image) Handle {
	return imaging.Clone(src)
}

// Dimensions reports the width and height of h, or zero for a nil handle.
func Dimensions(h Handle) (int, int) {
	if h == nil {
		return 0, 0
	}
	b := h.Bounds()
	return b.Dx(), b.Dy()
}
