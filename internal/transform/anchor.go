package transform

import (
	"image"
	"math"
	"slices"
	"strings"
)

// Anchor is a named placement of an overlay relative to its canvas.
type Anchor string

const (
	Top          Anchor = "top"
	Bottom       Anchor = "bottom"
	Left         Anchor = "left"
	Right        Anchor = "right"
	Center       Anchor = "center"
	TopLeft      Anchor = "top-left"
	TopRight     Anchor = "top-right"
	TopCenter    Anchor = "top-center"
	MiddleLeft   Anchor = "middle-left"
	MiddleRight  Anchor = "middle-right"
	MiddleCenter Anchor = "middle-center"
	BottomLeft   Anchor = "bottom-left"
	BottomRight  Anchor = "bottom-right"
	BottomCenter Anchor = "bottom-center"
)

var anchors = []Anchor{
	Top, Bottom, Left, Right, Center,
	TopLeft, TopRight, TopCenter,
	MiddleLeft, MiddleRight, MiddleCenter,
	BottomLeft, BottomRight, BottomCenter,
}

// Anchors lists every accepted anchor label.
func Anchors() []Anchor {
	return slices.Clone(anchors)
}

// ParseAnchor matches s, ignoring case, against the known labels.
func ParseAnchor(s string) (Anchor, bool) {
	a := Anchor(strings.ToLower(s))
	if slices.Contains(anchors, a) {
		return a, true
	}
	return "", false
}

// Resolve computes the top-left offset at which an overlay of size
// (overlayWidth, overlayHeight) is placed on a canvas of size
// (canvasWidth, canvasHeight). It returns false only for the empty anchor.
//
// Halves are rounded half away from zero. "top" behaves as "top-left" and
// "top-center" has no placement of its own, so it falls through to the
// bottom-left default along with any unrecognised value.
func Resolve(a Anchor, canvasWidth, canvasHeight, overlayWidth, overlayHeight int) (image.Point, bool) {
	if a == "" {
		return image.Point{}, false
	}

	dx := canvasWidth - overlayWidth
	dy := canvasHeight - overlayHeight

	switch Anchor(strings.ToLower(string(a))) {
	case Top, TopLeft:
		return image.Pt(0, 0), true
	case Bottom, BottomLeft:
		return image.Pt(0, dy), true
	case Left, MiddleLeft:
		return image.Pt(0, half(dy)), true
	case Right, MiddleRight:
		return image.Pt(dx, half(dy)), true
	case TopRight:
		return image.Pt(dx, 0), true
	case BottomRight:
		return image.Pt(dx, dy), true
	case BottomCenter:
		return image.Pt(half(dx), dy), true
	case Center, MiddleCenter:
		return image.Pt(half(dx), half(dy)), true
	default:
		return image.Pt(0, dy), true
	}
}

func half(n int) int {
	return int(math.Round(float64(n) / 2))
}
