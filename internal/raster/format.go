package raster

import "strings"

const (
	MimeGIF  = "image/gif"
	MimeJPEG = "image/jpeg"
	MimeJPG  = "image/jpg"
	MimePNG  = "image/png"
)

// formats maps the decoder names registered with the image package to the
// mime type reported for them. Registered decoders missing from here (bmp is
// pulled in by bild/imgio) are treated as unsupported.
var formats = map[string]string{
	"gif":  MimeGIF,
	"jpeg": MimeJPEG,
	"png":  MimePNG,
}

// Supported reports whether mimeType can be decoded and encoded.
func Supported(mimeType string) bool {
	switch normalizeMime(mimeType) {
	case MimeGIF, MimeJPEG, MimePNG:
		return true
	}
	return false
}

func normalizeMime(mimeType string) string {
	m := strings.ToLower(strings.TrimSpace(mimeType))
	if m == MimeJPG {
		return MimeJPEG
	}
	return m
}
