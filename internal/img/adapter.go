package img

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"

	"github.com/rm-hull/image-transform/internal/fileaccess"
	"github.com/rm-hull/image-transform/internal/mimetype"
	"github.com/rm-hull/image-transform/internal/raster"
)

var (
	ErrNotReadable  = errors.New("file not readable")
	ErrNotWritable  = errors.New("file not writable")
	ErrNoFilepath   = errors.New("no filepath set on image, use SaveAs instead")
	ErrInvalidState = raster.ErrInvalidHandle
)

// Adapter opens, flushes and saves images through a raster library.
type Adapter struct {
	lib      raster.Library
	fs       fileaccess.Checker
	resolver mimetype.Resolver
}

type AdapterOption func(*Adapter)

func WithFileAccess(fs fileaccess.Checker) AdapterOption {
	return func(a *Adapter) {
		a.fs = fs
	}
}

// WithResolver installs an optional mime resolver consulted before
// decoding. A nil resolver disables the check.
func WithResolver(r mimetype.Resolver) AdapterOption {
	return func(a *Adapter) {
		a.resolver = r
	}
}

func NewAdapter(lib raster.Library, opts ...AdapterOption) *Adapter {
	a := &Adapter{
		lib: lib,
		fs:  fileaccess.OS{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Adapter) Library() raster.Library {
	return a.lib
}

// Create returns a blank truecolor image of the given size.
func (a *Adapter) Create(width, height int) (*Image, error) {
	h, err := a.lib.Create(width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to create image: %w", err)
	}
	return New(h, ""), nil
}

func (a *Adapter) Open(path string) (*Image, error) {
	if !a.fs.IsReadable(path) {
		return nil, fmt.Errorf("%w: %q", ErrNotReadable, path)
	}

	if a.resolver != nil {
		if mimeType, ok := a.resolver.Resolve(path); ok && !raster.Supported(mimeType) {
			return nil, fmt.Errorf("%w: images of type %q are not supported", raster.ErrUnsupportedFormat, mimeType)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotReadable, err)
	}
	defer func() {
		_ = f.Close()
	}()

	h, mimeType, err := a.lib.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	image := New(h, mimeType)
	image.filepath = path
	return image, nil
}

// Flush encodes image to w. An empty mimeType means the image's own.
func (a *Adapter) Flush(w io.Writer, image *Image, mimeType string) error {
	mimeType, err := a.prepare(image, mimeType, "")
	if err != nil {
		return err
	}
	return a.lib.Encode(w, image.Handle(), mimeType)
}

// Save writes image back to the location it was opened from.
func (a *Adapter) Save(image *Image) error {
	if image == nil || image.Filepath() == "" {
		return ErrNoFilepath
	}
	return a.SaveAs(image, image.Filepath(), "")
}

// SaveAs writes image to path. The data is encoded into a temporary file
// next to path and renamed into place, so a failed encode never leaves a
// partial file behind.
func (a *Adapter) SaveAs(image *Image, path string, mimeType string) error {
	if !a.fs.IsWritable(path) {
		return fmt.Errorf("%w: %q", ErrNotWritable, path)
	}

	mimeType, err := a.prepare(image, mimeType, path)
	if err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), "image-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	cleanupTemp := true
	defer func() {
		_ = tmpFile.Close()
		if cleanupTemp {
			_ = os.Remove(tmpFile.Name())
		}
	}()

	if err := a.lib.Encode(tmpFile, image.Handle(), mimeType); err != nil {
		return err
	}

	// CreateTemp always uses 0600
	if err := tmpFile.Chmod(fileaccess.Mode(path)); err != nil {
		return fmt.Errorf("failed to set permissions on temporary file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file before rename: %w", err)
	}

	if err := os.Rename(tmpFile.Name(), path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	cleanupTemp = false
	return nil
}

// prepare checks that image can be encoded and works out the target mime
// type: the explicit one, else the image's own, else one guessed from the
// extension of path.
func (a *Adapter) prepare(image *Image, mimeType, path string) (string, error) {
	if !image.HasHandle() {
		return "", fmt.Errorf("%w: could not read resource", ErrInvalidState)
	}

	if mimeType == "" {
		mimeType = image.MimeType()
	}
	if mimeType == "" && path != "" {
		mimeType = mime.TypeByExtension(filepath.Ext(path))
	}

	if !raster.Supported(mimeType) {
		return "", fmt.Errorf("%w: images of type %q are not supported", raster.ErrUnsupportedFormat, mimeType)
	}
	return mimeType, nil
}
