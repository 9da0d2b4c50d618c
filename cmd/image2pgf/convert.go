package main

import (
	"fmt"
	"io"

	"github.com/davesmith10/image2pgf/internal/grid"
	"github.com/davesmith10/image2pgf/internal/imageio"
	"github.com/davesmith10/image2pgf/internal/pgf"
	"github.com/davesmith10/image2pgf/internal/pipeline"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert an image to a .pgf TikZ picture",
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().StringP("input", "i", "", "Input image file")
	convertCmd.Flags().StringP("output-dir", "o", ".", "Directory for the generated .pgf file")
	convertCmd.Flags().String("cell-size", pgf.DefaultCellSize, "Edge length of one pixel cell (TeX length)")
	convertCmd.Flags().Int("max-size", 0, "Downscale so neither side exceeds this many pixels (0 = keep)")
	convertCmd.Flags().Bool("auto-orient", true, "Apply the EXIF orientation tag")
	convertCmd.Flags().BoolP("quiet", "q", false, "Suppress progress output")
	convertCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputDir, _ := cmd.Flags().GetString("output-dir")
	cellSize, _ := cmd.Flags().GetString("cell-size")
	maxSize, _ := cmd.Flags().GetInt("max-size")
	autoOrient, _ := cmd.Flags().GetBool("auto-orient")
	quiet, _ := cmd.Flags().GetBool("quiet")

	if err := pgf.ValidateCellSize(cellSize); err != nil {
		return err
	}
	if maxSize < 0 {
		return fmt.Errorf("--max-size must be >= 0, got %d", maxSize)
	}

	out := cmd.OutOrStdout()
	opts := pipeline.FileOptions{
		Options: pipeline.Options{
			CellSize: cellSize,
		},
		Load: imageio.LoadOptions{
			AutoOrient: autoOrient,
			MaxSize:    maxSize,
		},
		OutputDir: outputDir,
	}
	if !quiet {
		opts.Log = out
		opts.Progress = percentReporter(out)
	}

	result, err := pipeline.ConvertFile(inputPath, opts)
	if err != nil {
		return fmt.Errorf("conversion: %w", err)
	}

	if !quiet {
		fmt.Fprintf(out, "Converted %dx%d image: %d colors, %d cells\n",
			result.Width, result.Height, result.Colors, result.Pixels)
		fmt.Fprintf(out, "Finished Converting: %s (%d bytes)\n", result.OutputPath, result.Bytes)
	}
	return nil
}

// percentReporter prints scan progress each time the whole percentage changes.
func percentReporter(w io.Writer) grid.ProgressFunc {
	last := -1
	return func(done, total int) {
		p := done * 100 / total
		if p == last {
			return
		}
		last = p
		fmt.Fprintf(w, "Extracting pixel %d/%d: %d%%\n", done, total, p)
	}
}
