package transform

import (
	"image"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	// canvas 100x80, overlay 30x21: dx = 70, dy = 59 (odd, so halves round up to 30)
	const W, H, w, h = 100, 80, 30, 21

	tests := []struct {
		anchor   Anchor
		expected image.Point
	}{
		{Top, image.Pt(0, 0)},
		{TopLeft, image.Pt(0, 0)},
		{Bottom, image.Pt(0, 59)},
		{BottomLeft, image.Pt(0, 59)},
		{Left, image.Pt(0, 30)},
		{Right, image.Pt(70, 30)},
		{TopRight, image.Pt(70, 0)},
		{BottomRight, image.Pt(70, 59)},
		{BottomCenter, image.Pt(35, 59)},
		{Center, image.Pt(35, 30)},
		{MiddleCenter, image.Pt(35, 30)},
		{MiddleLeft, image.Pt(0, 30)},
		{MiddleRight, image.Pt(70, 30)},
		{TopCenter, image.Pt(0, 59)},
	}

	for _, tt := range tests {
		t.Run(string(tt.anchor), func(t *testing.T) {
			pt, ok := Resolve(tt.anchor, W, H, w, h)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, pt)
		})
	}
}

func TestResolve_CoversEveryAnchor(t *testing.T) {
	for _, a := range Anchors() {
		_, ok := Resolve(a, 10, 10, 1, 1)
		assert.True(t, ok, "anchor %s", a)
	}
}

func TestResolve_RoundsHalvesAwayFromZero(t *testing.T) {
	t.Run("odd difference centres up", func(t *testing.T) {
		pt, ok := Resolve(Center, 11, 11, 2, 2)
		assert.True(t, ok)
		assert.Equal(t, image.Pt(5, 5), pt)
	})

	t.Run("even difference is exact", func(t *testing.T) {
		pt, _ := Resolve(Center, 12, 12, 2, 2)
		assert.Equal(t, image.Pt(5, 5), pt)
	})

	t.Run("negative odd difference centres away from zero", func(t *testing.T) {
		pt, _ := Resolve(Center, 2, 2, 5, 5)
		assert.Equal(t, image.Pt(-2, -2), pt)
	})

	t.Run("overlay larger than canvas", func(t *testing.T) {
		pt, _ := Resolve(BottomRight, 10, 10, 15, 12)
		assert.Equal(t, image.Pt(-5, -2), pt)
	})
}

func TestResolve_Unresolved(t *testing.T) {
	pt, ok := Resolve("", 10, 10, 2, 2)
	assert.False(t, ok)
	assert.Equal(t, image.Point{}, pt)
}

func TestResolve_CaseInsensitive(t *testing.T) {
	pt, ok := Resolve("Bottom-Right", 10, 10, 2, 2)
	assert.True(t, ok)
	assert.Equal(t, image.Pt(8, 8), pt)
}

func TestResolve_UnknownFallsBackToBottomLeft(t *testing.T) {
	pt, ok := Resolve("somewhere", 10, 10, 2, 4)
	assert.True(t, ok)
	assert.Equal(t, image.Pt(0, 6), pt)
}

func TestParseAnchor(t *testing.T) {
	for _, a := range Anchors() {
		parsed, ok := ParseAnchor(strings.ToUpper(string(a)))
		assert.True(t, ok)
		assert.Equal(t, a, parsed)
	}

	for _, s := range []string{"", "middle", "centre", "top left", " top", "top-left ", "left-top"} {
		_, ok := ParseAnchor(s)
		assert.False(t, ok, "%q should be rejected", s)
	}
}

func TestParseAnchor_RejectsRandomStrings(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := []rune("abcdefghijklmnopqrstuvwxyz-ABCDEFGHIJKLMNOPQRSTUVWXYZ _0123456789")

	o := NewOverlay(nil, nil, "center")
	for i := 0; i < 5000; i++ {
		n := rng.Intn(16)
		b := make([]rune, n)
		for j := range b {
			b[j] = alphabet[rng.Intn(len(alphabet))]
		}
		s := string(b)
		known := slices.Contains(anchors, Anchor(strings.ToLower(s)))

		_, ok := ParseAnchor(s)
		assert.Equal(t, known, ok, "%q", s)

		if !known {
			assert.False(t, o.SetPosition(s), "%q", s)
			assert.Equal(t, Center, o.Position())
		}
	}
}

func FuzzParseAnchor(f *testing.F) {
	for _, a := range anchors {
		f.Add(string(a))
	}
	f.Add("middle")
	f.Add("TOP-CENTER")
	f.Add("")

	f.Fuzz(func(t *testing.T, s string) {
		a, ok := ParseAnchor(s)
		known := slices.Contains(anchors, Anchor(strings.ToLower(s)))
		if ok != known {
			t.Fatalf("ParseAnchor(%q) = %v, want %v", s, ok, known)
		}
		if ok && a != Anchor(strings.ToLower(s)) {
			t.Fatalf("ParseAnchor(%q) = %q, want lower-cased input", s, a)
		}
		if !ok && a != "" {
			t.Fatalf("ParseAnchor(%q) returned %q on rejection", s, a)
		}
	})
}
