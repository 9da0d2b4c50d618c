package pipeline

import (
	"fmt"
	"io"

	"github.com/davesmith10/image2pgf/internal/color"
	"github.com/davesmith10/image2pgf/internal/grid"
	"github.com/davesmith10/image2pgf/internal/ir"
	"github.com/davesmith10/image2pgf/internal/pgf"
)

// Options controls the raster → PGF conversion.
type Options struct {
	Namespace string            // mixed into every color identifier
	CellSize  string            // TeX length of one cell; pgf.DefaultCellSize if empty
	Progress  grid.ProgressFunc // optional, called once per scanned pixel
	Log       io.Writer         // optional status messages
}

// Result summarizes a conversion.
type Result struct {
	Width  int
	Height int
	Colors int // distinct colors declared
	Pixels int // cells drawn
}

func (o Options) logf(format string, args ...any) {
	if o.Log != nil {
		fmt.Fprintf(o.Log, format, args...)
	}
}

// Run executes the full conversion pipeline: scan → color map → pixels.
func Run(img *ir.RGBImage, w io.Writer, opts Options) (*Result, error) {
	// 1. Validate output settings before doing any work
	em, err := pgf.NewEmitter(w, pgf.Options{CellSize: opts.CellSize})
	if err != nil {
		return nil, err
	}

	// 2. Build registry and grid in one pass
	reg := color.NewRegistry(opts.Namespace)
	g, err := grid.Scan(img, reg, opts.Progress)
	if err != nil {
		return nil, err
	}

	// 3. Emit document
	em.Open()
	opts.logf("Writing Color Map...\n")
	em.ColorMap(reg)
	opts.logf("Writing image...\n")
	if err := em.Pixels(reg, g); err != nil {
		return nil, fmt.Errorf("writing pixels: %w", err)
	}
	if err := em.Close(); err != nil {
		return nil, fmt.Errorf("writing document: %w", err)
	}

	return &Result{
		Width:  g.Width,
		Height: g.Height,
		Colors: reg.Len(),
		Pixels: g.Len(),
	}, nil
}

// Palette scans img and returns its color registry without emitting a document.
func Palette(img *ir.RGBImage, namespace string) (*color.Registry, error) {
	reg := color.NewRegistry(namespace)
	if _, err := grid.Scan(img, reg, nil); err != nil {
		return nil, err
	}
	return reg, nil
}
