package transform

import (
	"fmt"

	"github.com/rm-hull/image-transform/internal/img"
	"github.com/rm-hull/image-transform/internal/raster"
)

// Overlay draws one image on top of another, either at an explicit
// (left, top) offset or at a named anchor. An anchor, when set, takes
// precedence and is resolved again against the current image sizes every
// time the overlay is applied.
type Overlay struct {
	lib      raster.Library
	overlay  *img.Image
	left     int
	top      int
	position Anchor
}

var _ Transform = (*Overlay)(nil)

// NewOverlay places overlay at the named position, "top-left" when empty.
// An unknown position leaves the overlay at the explicit offset (0, 0).
func NewOverlay(lib raster.Library, overlay *img.Image, position string) *Overlay {
	o := &Overlay{lib: lib}
	o.SetOverlay(overlay)
	if position == "" {
		position = string(TopLeft)
	}
	o.SetPosition(position)
	return o
}

// NewOverlayAt places overlay at an explicit offset.
func NewOverlayAt(lib raster.Library, overlay *img.Image, left, top int) *Overlay {
	o := &Overlay{lib: lib}
	o.SetOverlay(overlay)
	o.SetLeft(left)
	o.SetTop(top)
	return o
}

func (o *Overlay) SetOverlay(overlay *img.Image) {
	o.overlay = overlay
}

func (o *Overlay) Overlay() *img.Image {
	return o.overlay
}

// SetLeft stores a numeric left offset and reports whether v was accepted.
// A rejected value leaves the previous offset in place.
func (o *Overlay) SetLeft(v any) bool {
	n, ok := toInt(v)
	if ok {
		o.left = n
	}
	return ok
}

func (o *Overlay) Left() int {
	return o.left
}

// SetTop stores a numeric top offset and reports whether v was accepted.
func (o *Overlay) SetTop(v any) bool {
	n, ok := toInt(v)
	if ok {
		o.top = n
	}
	return ok
}

func (o *Overlay) Top() int {
	return o.top
}

// SetPosition stores a named anchor. Unknown labels are rejected and the
// previous position kept.
func (o *Overlay) SetPosition(label string) bool {
	a, ok := ParseAnchor(label)
	if ok {
		o.position = a
	}
	return ok
}

// ClearPosition drops the anchor so the explicit offset is used as is.
func (o *Overlay) ClearPosition() {
	o.position = ""
}

func (o *Overlay) Position() Anchor {
	return o.position
}

// ComputeCoordinates resolves the anchor against canvas and overwrites the
// left and top offsets. It returns false, and changes nothing, when no
// anchor is set.
func (o *Overlay) ComputeCoordinates(canvas *img.Image) bool {
	if o.position == "" {
		return false
	}

	canvasWidth, canvasHeight := o.dimensions(canvas)
	overlayWidth, overlayHeight := o.dimensions(o.overlay)

	pt, ok := Resolve(o.position, canvasWidth, canvasHeight, overlayWidth, overlayHeight)
	if !ok {
		return false
	}
	o.left, o.top = pt.X, pt.Y
	return true
}

// Composite draws the overlay onto canvas's buffer at the current offset.
func (o *Overlay) Composite(canvas *img.Image) error {
	if !canvas.HasHandle() {
		return fmt.Errorf("canvas: %w", img.ErrInvalidState)
	}
	if !o.overlay.HasHandle() {
		return fmt.Errorf("overlay: %w", img.ErrInvalidState)
	}
	if err := o.lib.Composite(canvas.Handle(), o.overlay.Handle(), o.left, o.top); err != nil {
		return fmt.Errorf("failed to composite overlay: %w", err)
	}
	return nil
}

// Apply composites the overlay onto a copy of canvas and returns the copy.
func (o *Overlay) Apply(canvas *img.Image) (*img.Image, error) {
	if !canvas.HasHandle() {
		return nil, ErrInvalidSource
	}

	o.ComputeCoordinates(canvas)

	h, err := o.lib.Clone(canvas.Handle())
	if err != nil {
		return nil, fmt.Errorf("failed to copy canvas: %w", err)
	}
	out := canvas.Rebind(h)
	if err := o.Composite(out); err != nil {
		return nil, err
	}
	return out, nil
}

// dimensions asks the library for the size of image's handle. An image
// without a handle measures 0x0.
func (o *Overlay) dimensions(image *img.Image) (int, int) {
	h := handleOf(image)
	if o.lib == nil || h == nil {
		return raster.Dimensions(h)
	}
	return o.lib.Dimensions(h)
}
