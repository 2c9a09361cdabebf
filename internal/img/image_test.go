package img

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImage_Rebind(t *testing.T) {
	original := New(image.NewNRGBA(image.Rect(0, 0, 10, 10)), "image/png")
	original.filepath = "/tmp/original.png"

	h := image.NewNRGBA(image.Rect(0, 0, 30, 15))
	rebound := original.Rebind(h)

	assert.Same(t, h, rebound.Handle())
	assert.Equal(t, 30, rebound.Width())
	assert.Equal(t, 15, rebound.Height())
	assert.Equal(t, "/tmp/original.png", rebound.Filepath())
	assert.Equal(t, "image/png", rebound.MimeType())

	assert.Equal(t, 10, original.Width(), "original must not be mutated")
	assert.Equal(t, 10, original.Height(), "original must not be mutated")
	assert.NotSame(t, h, original.Handle())
}

func TestImage_HasHandle(t *testing.T) {
	var missing *Image
	assert.False(t, missing.HasHandle())
	assert.False(t, (&Image{}).HasHandle())
	assert.True(t, New(image.NewNRGBA(image.Rect(0, 0, 1, 1)), "").HasHandle())
}
