package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/rm-hull/image-transform/cmd"
	"github.com/rm-hull/image-transform/internal"
	"github.com/rm-hull/image-transform/internal/fileaccess"
	"github.com/rm-hull/image-transform/internal/raster"
	"github.com/spf13/cobra"
)

func main() {
	var cfg cmd.Config
	var output string
	var filter string
	var verbose bool

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	rootCmd := &cobra.Command{
		Use:           "image-transform",
		Long:          `Resize, overlay, pixelize and filter GIF, JPEG and PNG images`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, args []string) error {
			var err error
			if cfg, err = cmd.ConfigFromEnv(); err != nil {
				return err
			}
			cfg.Verbose = verbose

			// flag overrides environment
			if filter != "" {
				if cfg.Filter, err = raster.ParseFilter(filter); err != nil {
					return err
				}
			}

			if cfg.Verbose {
				internal.ShowVersion()
				internal.EnvironmentVars()
				internal.AccessReport(fileaccess.OS{}, append(args, output)...)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log version, environment and file access details")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output file, '-' for stdout (default: overwrite the input)")
	rootCmd.PersistentFlags().StringVar(&filter, "filter", "", "Resampling filter: nearest, approx-bilinear, bilinear, catmull-rom, lanczos")

	var width, height int
	resizeCmd := &cobra.Command{
		Use:   "resize <input> --width <w> --height <h> [--output <path>]",
		Short: "Scale an image to an exact size",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return cmd.Resize(cfg, args[0], output, width, height)
		},
	}
	resizeCmd.Flags().IntVar(&width, "width", 0, "Target width in pixels")
	resizeCmd.Flags().IntVar(&height, "height", 0, "Target height in pixels")
	_ = resizeCmd.MarkFlagRequired("width")
	_ = resizeCmd.MarkFlagRequired("height")

	var placement cmd.Placement
	overlayCmd := &cobra.Command{
		Use:   "overlay <input> <overlay> [--position <anchor> | --left <x> --top <y>] [--output <path>]",
		Short: "Draw one image on top of another",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return cmd.Overlay(cfg, args[0], args[1], output, placement)
		},
	}
	overlayCmd.Flags().StringVar(&placement.Position, "position", "", "Named anchor, e.g. top-left, center, bottom-right")
	overlayCmd.Flags().StringVar(&placement.Left, "left", "", "Left offset in pixels, used when no position is given")
	overlayCmd.Flags().StringVar(&placement.Top, "top", "", "Top offset in pixels, used when no position is given")
	overlayCmd.MarkFlagsMutuallyExclusive("position", "left")
	overlayCmd.MarkFlagsMutuallyExclusive("position", "top")

	var blockSize string
	pixelizeCmd := &cobra.Command{
		Use:   "pixelize <input> [--size <pixels>] [--output <path>]",
		Short: "Flatten square blocks of pixels",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return cmd.Pixelize(cfg, args[0], output, blockSize)
		},
	}
	pixelizeCmd.Flags().StringVar(&blockSize, "size", "", "Block size in pixels (default 10)")

	var sigma float64
	blurCmd := &cobra.Command{
		Use:   "blur <input> [--sigma <value>] [--output <path>]",
		Short: "Apply a gaussian blur",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return cmd.Blur(cfg, args[0], output, sigma)
		},
	}
	blurCmd.Flags().Float64Var(&sigma, "sigma", 1.0, "Blur radius, higher is blurrier")

	var mask bool
	greyscaleCmd := &cobra.Command{
		Use:     "greyscale <input> [--mask] [--output <path>]",
		Aliases: []string{"grayscale"},
		Short:   "Convert an image to shades of grey",
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return cmd.Greyscale(cfg, args[0], output, mask)
		},
	}
	greyscaleCmd.Flags().BoolVar(&mask, "mask", false, "Produce a white luminance mask instead of a grey copy")

	var colour string
	var tolerance float64
	replaceColorCmd := &cobra.Command{
		Use:   "replace-color <input> [--color <hex>] [--tolerance <distance>] [--output <path>]",
		Short: "Fade pixels close to a colour into transparency",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return cmd.ReplaceColor(cfg, args[0], output, colour, tolerance)
		},
	}
	replaceColorCmd.Flags().StringVar(&colour, "color", "#ffffff", "Colour to remove, as #rgb or #rrggbb")
	replaceColorCmd.Flags().Float64Var(&tolerance, "tolerance", 50, "Colour distance within which pixels are faded")

	applyCmd := &cobra.Command{
		Use:   "apply <recipe.yaml> <input> [--output <path>]",
		Short: "Run the steps of a YAML recipe over an image",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return cmd.Apply(cfg, args[0], args[1], output)
		},
	}

	infoCmd := &cobra.Command{
		Use:   "info <input>",
		Short: "Show the format and size of an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return cmd.Info(cfg, args[0], c.OutOrStdout())
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			internal.ShowVersion()
		},
	}

	rootCmd.AddCommand(resizeCmd, overlayCmd, pixelizeCmd, blurCmd, greyscaleCmd, replaceColorCmd, applyCmd, infoCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

