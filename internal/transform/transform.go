// Package transform contains the operations that can be applied to an
// img.Image: resizing, overlay composition, pixelization and a few filters.
//
// Every transform satisfies Transform. Apply never mutates the image it is
// given; it returns the image that the caller should use from then on.
package transform

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rm-hull/image-transform/internal/img"
	"github.com/rm-hull/image-transform/internal/raster"
)

var (
	// ErrInvalidInput is never returned by the setters themselves, which
	// report rejection with a false result. Callers that want a strict
	// API wrap a false result with it.
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidSource = fmt.Errorf("invalid source: %w", raster.ErrInvalidHandle)
)

type Transform interface {
	Apply(image *img.Image) (*img.Image, error)
}

// Run threads image through each transform in turn, stopping at the first
// failure. The input image is returned unchanged when no transforms are given.
func Run(image *img.Image, transforms ...Transform) (*img.Image, error) {
	current := image
	for i, t := range transforms {
		next, err := t.Apply(current)
		if err != nil {
			return nil, fmt.Errorf("step %d (%T): %w", i+1, t, err)
		}
		current = next
	}
	return current, nil
}

// toInt accepts any Go integer or float kind, or a string holding a decimal
// number, and rounds it to the nearest int. Every kind is held to the same
// magnitude limit.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return fromFloat(float64(n))
	case int8:
		return fromFloat(float64(n))
	case int16:
		return fromFloat(float64(n))
	case int32:
		return fromFloat(float64(n))
	case int64:
		return fromFloat(float64(n))
	case uint:
		return fromFloat(float64(n))
	case uint8:
		return fromFloat(float64(n))
	case uint16:
		return fromFloat(float64(n))
	case uint32:
		return fromFloat(float64(n))
	case uint64:
		return fromFloat(float64(n))
	case float32:
		return fromFloat(float64(n))
	case float64:
		return fromFloat(n)
	case string:
		return parseDecimal(n)
	}
	return 0, false
}

// parseDecimal rejects the hexadecimal and underscore forms that
// strconv.ParseFloat would otherwise accept.
func parseDecimal(s string) (int, bool) {
	s = strings.TrimSpace(s)
	digits := strings.TrimLeft(s, "+-")
	if len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0, false
	}
	if strings.ContainsRune(s, '_') {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return fromFloat(f)
}

const maxCoordinate = 1 << 31

func fromFloat(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) >= maxCoordinate {
		return 0, false
	}
	return int(math.Round(f)), true
}

func handleOf(image *img.Image) raster.Handle {
	if image == nil {
		return nil
	}
	return image.Handle()
}
