// Package mimetype resolves the mime type of a file from its content.
//
// A Resolver is an optional collaborator: callers must treat a nil Resolver,
// or a false result, as "unknown" and fall back to their own detection.
package mimetype

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

type Resolver interface {
	// Resolve returns the mime type of the file at path, or false when it
	// cannot be determined.
	Resolve(path string) (string, bool)
}

// Sniffer detects mime types from the leading bytes of a file.
type Sniffer struct{}

var _ Resolver = Sniffer{}

func (Sniffer) Resolve(path string) (string, bool) {
	m, err := mimetype.DetectFile(path)
	if err != nil || m == nil {
		return "", false
	}
	// strip parameters such as "; charset=utf-8"
	mimeType, _, _ := strings.Cut(m.String(), ";")
	return strings.TrimSpace(mimeType), true
}

// Func adapts a plain function to the Resolver interface.
type Func func(path string) (string, bool)

func (f Func) Resolve(path string) (string, bool) {
	return f(path)
}
