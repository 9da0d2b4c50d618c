package main

import (
	"fmt"

	"github.com/davesmith10/image2pgf/internal/imageio"
	"github.com/davesmith10/image2pgf/internal/pipeline"
	"github.com/spf13/cobra"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Inspect image format and color count",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	info, err := imageio.Info(path)
	if err != nil {
		return err
	}

	img, err := imageio.Load(path, imageio.LoadOptions{AutoOrient: true})
	if err != nil {
		return err
	}
	reg, err := pipeline.Palette(img, "")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:        %s\n", path)
	fmt.Fprintf(out, "Format:      %s\n", info.Format)
	fmt.Fprintf(out, "Dimensions:  %d x %d\n", info.Width, info.Height)
	fmt.Fprintf(out, "Color model: %s\n", info.ColorModel)
	fmt.Fprintf(out, "File size:   %d bytes (%.1f MB)\n", info.Size, float64(info.Size)/(1024*1024))
	fmt.Fprintf(out, "Colors:      %d distinct\n", reg.Len())
	fmt.Fprintf(out, "Cells:       %d\n", img.Width*img.Height)
	return nil
}
