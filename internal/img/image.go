// Package img holds the logical image passed between transforms and the
// adapter that moves it to and from the file system.
package img

import "github.com/rm-hull/image-transform/internal/raster"

// Image is a raster handle plus the metadata that travels with it. The
// zero value is an image with no handle bound.
type Image struct {
	handle   raster.Handle
	width    int
	height   int
	filepath string
	mimeType string
}

// New binds h to a new Image, taking width and height from the handle.
func New(h raster.Handle, mimeType string) *Image {
	w, ht := raster.Dimensions(h)
	return &Image{
		handle:   h,
		width:    w,
		height:   ht,
		mimeType: mimeType,
	}
}

func (i *Image) Handle() raster.Handle {
	return i.handle
}

func (i *Image) HasHandle() bool {
	return i != nil && i.handle != nil
}

func (i *Image) Width() int {
	return i.width
}

func (i *Image) Height() int {
	return i.height
}

// Filepath is the location the image was opened from, if any.
func (i *Image) Filepath() string {
	return i.filepath
}

func (i *Image) MimeType() string {
	return i.mimeType
}

// Rebind returns a copy of i holding h, with width and height taken from h.
// The receiver is left unchanged and the caller should treat the returned
// value as the image of record.
func (i *Image) Rebind(h raster.Handle) *Image {
	out := *i
	out.handle = h
	out.width, out.height = raster.Dimensions(h)
	return &out
}
