package cmd

import (
	"fmt"
	"log"
	"mime"
	"os"
	"path/filepath"

	"github.com/rm-hull/image-transform/internal/img"
	"github.com/rm-hull/image-transform/internal/transform"
)

// Stdout is the output name that streams the result instead of saving it.
const Stdout = "-"

// process opens input, runs the transforms over it and writes the result.
// An empty output overwrites input.
func process(cfg Config, adapter *img.Adapter, input, output string, transforms ...transform.Transform) error {
	source, err := adapter.Open(input)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		log.Printf("Opened %s (%dx%d %s)", input, source.Width(), source.Height(), source.MimeType())
	}

	result, err := transform.Run(source, transforms...)
	if err != nil {
		return fmt.Errorf("failed to transform %s: %w", input, err)
	}

	return write(cfg, adapter, result, output)
}

func write(cfg Config, adapter *img.Adapter, image *img.Image, output string) error {
	var err error
	switch output {
	case "":
		output = image.Filepath()
		err = adapter.Save(image)
	case Stdout:
		err = adapter.Flush(os.Stdout, image, "")
	default:
		err = adapter.SaveAs(image, output, mime.TypeByExtension(filepath.Ext(output)))
	}
	if err != nil {
		return err
	}

	if cfg.Verbose && output != Stdout {
		log.Printf("Wrote %s (%dx%d)", output, image.Width(), image.Height())
	}
	return nil
}
