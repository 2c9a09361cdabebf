package transform

import (
	"fmt"

	"github.com/rm-hull/image-transform/internal/img"
	"github.com/rm-hull/image-transform/internal/raster"
)

const DefaultBlockSize = 10

// Pixelize reduces detail by flattening square blocks of pixels.
type Pixelize struct {
	lib       raster.Library
	blockSize int
}

var _ Transform = (*Pixelize)(nil)

// NewPixelize uses size as the block size, or DefaultBlockSize if size is
// not a positive number.
func NewPixelize(lib raster.Library, size any) *Pixelize {
	p := &Pixelize{lib: lib, blockSize: DefaultBlockSize}
	p.SetSize(size)
	return p
}

// SetSize accepts a positive numeric block size.
func (p *Pixelize) SetSize(v any) bool {
	n, ok := toInt(v)
	if !ok || n <= 0 {
		return false
	}
	p.blockSize = n
	return true
}

func (p *Pixelize) Size() int {
	return p.blockSize
}

func (p *Pixelize) Apply(image *img.Image) (*img.Image, error) {
	if !image.HasHandle() {
		return nil, ErrInvalidSource
	}

	h, err := p.lib.Pixelate(image.Handle(), p.blockSize)
	if err != nil {
		return nil, fmt.Errorf("failed to pixelize image: %w", err)
	}
	return image.Rebind(h), nil
}
