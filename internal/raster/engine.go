package raster

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

const DefaultJPEGQuality = 75

var _ Library = (*Engine)(nil)

// Engine is the in-process Library implementation.
type Engine struct {
	filter      Filter
	jpegQuality int
}

type Option func(*Engine)

func WithFilter(f Filter) Option {
	return func(e *Engine) {
		e.filter = f
	}
}

// WithJPEGQuality sets the quality used when encoding image/jpeg. Values
// outside 1..100 are ignored.
func WithJPEGQuality(q int) Option {
	return func(e *Engine) {
		if q >= 1 && q <= 100 {
			e.jpegQuality = q
		}
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		filter:      BiLinear,
		jpegQuality: DefaultJPEGQuality,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Filter() Filter {
	return e.filter
}

func (e *Engine) JPEGQuality() int {
	return e.jpegQuality
}

func (e *Engine) Create(width, height int) (Handle, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return image.NewNRGBA(image.Rect(0, 0, width, height)), nil
}

// Decode reads a GIF, JPEG or PNG image from r and converts it to a
// truecolor buffer. The returned string is the mime type of the input.
func (e *Engine) Decode(r io.Reader) (Handle, string, error) {
	src, format, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, "", fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
		}
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}

	mimeType, ok := formats[format]
	if !ok {
		return nil, "", fmt.Errorf("%w: images of type %q are not supported", ErrUnsupportedFormat, format)
	}

	return Clone(src), mimeType, nil
}

func (e *Engine) Clone(h Handle) (Handle, error) {
	if h == nil {
		return nil, ErrInvalidHandle
	}
	return Clone(h), nil
}

func (e *Engine) Encode(w io.Writer, h Handle, mimeType string) error {
	if h == nil {
		return ErrInvalidHandle
	}

	var encode imgio.Encoder
	switch normalizeMime(mimeType) {
	case MimeGIF:
		encode = func(w io.Writer, img image.Image) error {
			return gif.Encode(w, img, nil)
		}
	case MimeJPEG:
		encode = imgio.JPEGEncoder(e.jpegQuality)
	case MimePNG:
		encode = imgio.PNGEncoder()
	default:
		return fmt.Errorf("%w: images of type %q are not supported", ErrUnsupportedFormat, mimeType)
	}

	if err := encode(w, h); err != nil {
		return fmt.Errorf("failed to encode %s: %w", mimeType, err)
	}
	return nil
}

// Resample returns a new buffer of the requested size holding a scaled copy
// of h. The source buffer is left untouched.
func (e *Engine) Resample(h Handle, width, height int) (Handle, error) {
	if h == nil {
		return nil, ErrInvalidHandle
	}
	dst, err := e.Create(width, height)
	if err != nil {
		return nil, err
	}
	return e.filter.scale(dst, h), nil
}

// Composite draws src over dst with its top-left corner at (x, y). Parts of
// src falling outside dst are clipped.
func (e *Engine) Composite(dst, src Handle, x, y int) error {
	if dst == nil || src == nil {
		return ErrInvalidHandle
	}
	sb := src.Bounds()
	r := image.Rect(x, y, x+sb.Dx(), y+sb.Dy()).Add(dst.Bounds().Min)
	draw.Draw(dst, r, src, sb.Min, draw.Over)
	return nil
}

// Pixelate averages each blockSize x blockSize cell of h, anchored at the
// top-left corner, and returns a new buffer of the same size.
func (e *Engine) Pixelate(h Handle, blockSize int) (Handle, error) {
	if h == nil {
		return nil, ErrInvalidHandle
	}
	if blockSize < 1 {
		return nil, fmt.Errorf("%w: block size %d", ErrInvalidSize, blockSize)
	}

	width, height := Dimensions(h)
	if width == 0 || height == 0 {
		return imaging.Clone(h), nil
	}

	cols := (width + blockSize - 1) / blockSize
	rows := (height + blockSize - 1) / blockSize
	cells := imaging.Resize(h, cols, rows, imaging.Box)
	grid := imaging.Resize(cells, cols*blockSize, rows*blockSize, imaging.NearestNeighbor)
	return imaging.Crop(grid, image.Rect(0, 0, width, height)), nil
}

func (e *Engine) Dimensions(h Handle) (int, int) {
	return Dimensions(h)
}
