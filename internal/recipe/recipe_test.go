package recipe

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/rm-hull/image-transform/internal/img"
	"github.com/rm-hull/image-transform/internal/raster"
	"github.com/rm-hull/image-transform/internal/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullRecipe = `
filter: lanczos
steps:
  - resize: {width: 320, height: 200}
  - overlay: {image: logo.png, position: bottom-right}
  - overlay: {image: /tmp/badge.png, left: 10, top: "12"}
  - pixelize: {size: 8}
  - blur: {sigma: 1.5}
  - greyscale: {mask: true}
  - replace-color: {color: "#ff0000", tolerance: 40}
`

func TestParse(t *testing.T) {
	r, err := Parse(strings.NewReader(fullRecipe))
	require.NoError(t, err)

	expected := &Recipe{
		Filter: "lanczos",
		Steps: []Step{
			{Resize: &Resize{Width: 320, Height: 200}},
			{Overlay: &Overlay{Image: "logo.png", Position: "bottom-right"}},
			{Overlay: &Overlay{Image: "/tmp/badge.png", Left: 10, Top: "12"}},
			{Pixelize: &Pixelize{Size: 8}},
			{Blur: &Blur{Sigma: 1.5}},
			{Greyscale: &Greyscale{Mask: true}},
			{ReplaceColor: &ReplaceColor{Color: "#ff0000", Tolerance: 40}},
		},
	}
	if diff := cmp.Diff(expected, r, cmpopts.IgnoreUnexported(Recipe{})); diff != "" {
		t.Errorf("recipe mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty document", ""},
		{"unknown filter", "filter: sharpest\nsteps: []"},
		{"empty step", "steps:\n  - {}"},
		{"two operations in one step", "steps:\n  - {blur: {sigma: 1}, greyscale: {}}"},
		{"zero resize", "steps:\n  - resize: {width: 0, height: 10}"},
		{"overlay without image", "steps:\n  - overlay: {position: top}"},
		{"unknown position", "steps:\n  - overlay: {image: a.png, position: middle}"},
		{"non-numeric left", "steps:\n  - overlay: {image: a.png, left: abc}"},
		{"negative pixel size", "steps:\n  - pixelize: {size: -2}"},
		{"negative sigma", "steps:\n  - blur: {sigma: -1}"},
		{"zero tolerance", "steps:\n  - replace-color: {tolerance: 0}"},
		{"bad colour", "steps:\n  - replace-color: {color: red, tolerance: 10}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.yaml))
			assert.ErrorIs(t, err, transform.ErrInvalidInput)
		})
	}

	t.Run("unknown key", func(t *testing.T) {
		_, err := Parse(strings.NewReader("steps:\n  - resize: {width: 1, height: 1, depth: 3}"))
		assert.ErrorContains(t, err, "failed to parse recipe")
	})
}

func TestParse_StepNumberInError(t *testing.T) {
	_, err := Parse(strings.NewReader("steps:\n  - blur: {sigma: 1}\n  - pixelize: {size: zero}"))
	assert.ErrorContains(t, err, "step 2")
}

func writePNG(t *testing.T, path string, width, height int, c color.NRGBA) {
	t.Helper()
	m := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.SetNRGBA(x, y, c)
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() {
		_ = f.Close()
	}()
	require.NoError(t, png.Encode(f, m))
}

func TestLoadAndBuild(t *testing.T) {
	dir := t.TempDir()
	black := color.NRGBA{0, 0, 0, 255}
	white := color.NRGBA{255, 255, 255, 255}
	writePNG(t, filepath.Join(dir, "logo.png"), 2, 2, black)

	recipePath := filepath.Join(dir, "recipe.yaml")
	require.NoError(t, os.WriteFile(recipePath, []byte(`
steps:
  - resize: {width: 12, height: 8}
  - overlay: {image: logo.png, position: bottom-right}
  - overlay: {image: logo.png, left: "1", top: 1.4}
`), 0o644))

	r, err := Load(recipePath)
	require.NoError(t, err)

	adapter := img.NewAdapter(raster.NewEngine(raster.WithFilter(raster.NearestNeighbor)))
	transforms, err := r.Build(adapter)
	require.NoError(t, err)
	require.Len(t, transforms, 3)
	assert.IsType(t, &transform.Resizer{}, transforms[0])
	assert.IsType(t, &transform.Overlay{}, transforms[1])

	explicit := transforms[2].(*transform.Overlay)
	assert.Equal(t, 1, explicit.Left())
	assert.Equal(t, 1, explicit.Top())

	canvas, err := adapter.Create(4, 4)
	require.NoError(t, err)
	canvas, err = transform.Run(canvas, transform.NewOverlay(adapter.Library(), mustSolid(4, 4, white), "top-left"))
	require.NoError(t, err)

	out, err := transform.Run(canvas, transforms...)
	require.NoError(t, err)
	assert.Equal(t, 12, out.Width())
	assert.Equal(t, 8, out.Height())
	assert.Equal(t, black, out.Handle().NRGBAAt(11, 7))
	assert.Equal(t, black, out.Handle().NRGBAAt(1, 1))
	assert.Equal(t, white, out.Handle().NRGBAAt(5, 4))
}

func mustSolid(width, height int, c color.NRGBA) *img.Image {
	m := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.SetNRGBA(x, y, c)
		}
	}
	return img.New(m, raster.MimePNG)
}

func TestBuild_MissingOverlay(t *testing.T) {
	r, err := Parse(strings.NewReader("steps:\n  - overlay: {image: nowhere.png}"))
	require.NoError(t, err)

	_, err = r.Build(img.NewAdapter(raster.NewEngine()))
	assert.ErrorIs(t, err, img.ErrNotReadable)
	assert.ErrorContains(t, err, "step 1")
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in       string
		expected color.Color
	}{
		{"", color.White},
		{"#ff0000", color.NRGBA{255, 0, 0, 255}},
		{"#0f0", color.NRGBA{0, 255, 0, 255}},
		{"#123456", color.NRGBA{0x12, 0x34, 0x56, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c)
		})
	}

	_, err := ParseColor("blue")
	assert.ErrorIs(t, err, transform.ErrInvalidInput)
}
