package cmd

import (
	"fmt"
	"io"

	"github.com/rm-hull/image-transform/internal/mimetype"
)

func Info(cfg Config, input string, w io.Writer) error {
	image, err := cfg.Adapter().Open(input)
	if err != nil {
		return err
	}

	sniffed, ok := mimetype.Sniffer{}.Resolve(input)
	if !ok {
		sniffed = "unknown"
	}

	_, err = fmt.Fprintf(w, "File:     %s\nFormat:   %s\nContent:  %s\nSize:     %dx%d\n",
		image.Filepath(), image.MimeType(), sniffed, image.Width(), image.Height())
	return err
}
