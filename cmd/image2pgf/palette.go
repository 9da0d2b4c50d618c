package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/davesmith10/image2pgf/internal/imageio"
	"github.com/davesmith10/image2pgf/internal/naming"
	"github.com/davesmith10/image2pgf/internal/pipeline"
	"github.com/spf13/cobra"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "List the color map an image would declare",
	RunE:  runPalette,
}

func init() {
	paletteCmd.Flags().StringP("input", "i", "", "Input image file")
	paletteCmd.Flags().Int("top", 0, "Only list the N most frequent colors (0 = all, in declaration order)")
	paletteCmd.Flags().Bool("json", false, "Print JSON instead of a table")
	paletteCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(paletteCmd)
}

type paletteEntry struct {
	Index      int      `json:"index"`
	Identifier string   `json:"identifier"`
	RGB        [3]uint8 `json:"rgb"`
	Hex        string   `json:"hex"`
	Count      int      `json:"count"`
}

func runPalette(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	top, _ := cmd.Flags().GetInt("top")
	asJSON, _ := cmd.Flags().GetBool("json")

	img, err := imageio.Load(inputPath, imageio.LoadOptions{AutoOrient: true})
	if err != nil {
		return err
	}
	reg, err := pipeline.Palette(img, naming.Namespace(inputPath))
	if err != nil {
		return err
	}

	entries := make([]paletteEntry, reg.Len())
	for i := range entries {
		c := reg.At(i)
		entries[i] = paletteEntry{
			Index:      i,
			Identifier: reg.Identifier(i),
			RGB:        [3]uint8{c.R, c.G, c.B},
			Hex:        c.Hex(),
			Count:      reg.Count(i),
		}
	}
	if top > 0 {
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].Count > entries[j].Count })
		if len(entries) > top {
			entries = entries[:top]
		}
	}

	out := cmd.OutOrStdout()
	if asJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding palette: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(out, "%6d  %s  %3d,%3d,%3d  %8d  %s\n", e.Index, e.Hex, e.RGB[0], e.RGB[1], e.RGB[2], e.Count, e.Identifier)
	}
	fmt.Fprintf(out, "%d colors, %d pixels\n", reg.Len(), img.Width*img.Height)
	return nil
}
