package transform

import (
	"errors"
	"testing"

	"github.com/rm-hull/image-transform/internal/img"
	"github.com/rm-hull/image-transform/internal/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingTransform struct{}

func (failingTransform) Apply(*img.Image) (*img.Image, error) {
	return nil, errors.New("nope")
}

func TestRun(t *testing.T) {
	lib := raster.NewEngine(raster.WithFilter(raster.NearestNeighbor))
	source := solidImage(10, 10, white)
	logo := solidImage(4, 4, black)

	out, err := Run(source,
		NewResizer(lib, 20, 20),
		NewOverlay(lib, logo, "center"),
		NewPixelize(lib, 2),
	)
	require.NoError(t, err)
	assert.Equal(t, 20, out.Width())
	assert.Equal(t, 20, out.Height())
	assert.Equal(t, black, out.Handle().NRGBAAt(10, 10))
	assert.Equal(t, white, out.Handle().NRGBAAt(0, 0))
	assert.Equal(t, 10, source.Width(), "source untouched")

	t.Run("no transforms", func(t *testing.T) {
		out, err := Run(source)
		require.NoError(t, err)
		assert.Same(t, source, out)
	})

	t.Run("stops at first failure", func(t *testing.T) {
		_, err := Run(source, NewResizer(lib, 5, 5), failingTransform{}, NewPixelize(lib, 2))
		assert.ErrorContains(t, err, "step 2")
		assert.ErrorContains(t, err, "nope")
	})
}
