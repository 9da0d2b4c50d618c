package grid

import (
	"fmt"

	"github.com/davesmith10/image2pgf/internal/color"
	"github.com/davesmith10/image2pgf/internal/ir"
)

// Pixel references a registry color and carries its output coordinates.
// Output space has its origin at the bottom-left, so Y is the flipped row.
type Pixel struct {
	Index int
	X     int
	Y     int
}

// Grid holds one Pixel per source pixel in scan order: rows top to bottom,
// columns left to right.
type Grid struct {
	Width  int
	Height int
	Pixels []Pixel
}

// Len is the number of pixels in the grid.
func (g *Grid) Len() int { return len(g.Pixels) }

// ProgressFunc is called after each scanned pixel.
type ProgressFunc func(done, total int)

// FlipY maps a source row to the output y coordinate for an image of height rows.
func FlipY(row, height int) int {
	return height - 1 - row
}

// Scan walks img once, registering every pixel's color in reg and recording
// its flipped coordinates. The raster's channel order is honoured so that
// colors are always registered as canonical red, green, blue.
func Scan(img *ir.RGBImage, reg *color.Registry, progress ProgressFunc) (*Grid, error) {
	if err := img.Validate(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	total := img.Width * img.Height
	g := &Grid{
		Width:  img.Width,
		Height: img.Height,
		Pixels: make([]Pixel, 0, total),
	}

	done := 0
	for row := 0; row < img.Height; row++ {
		y := FlipY(row, img.Height)
		for col := 0; col < img.Width; col++ {
			r, gr, b := img.RGB(col, row)
			idx := reg.Register(color.Color{R: r, G: gr, B: b})
			g.Pixels = append(g.Pixels, Pixel{Index: idx, X: col, Y: y})

			done++
			if progress != nil {
				progress(done, total)
			}
		}
	}
	return g, nil
}
