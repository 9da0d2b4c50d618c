// Package pgf writes a color registry and pixel grid as a TikZ picture that
// can be \input into a LaTeX document.
package pgf

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/davesmith10/image2pgf/internal/color"
	"github.com/davesmith10/image2pgf/internal/grid"
)

const (
	openMarker    = "\\begin{tikzpicture}\n"
	closeMarker   = "\\end{tikzpicture}\n"
	colorMapTitle = "\n\t%COLOR MAP\n"
	pixelsTitle   = "\n\n\t%IMAGE PIXEL\n"

	// DefaultCellSize is the edge length of one drawn pixel.
	DefaultCellSize = "1cm"
)

var cellSizeRe = regexp.MustCompile(`^[0-9]*\.?[0-9]+(cm|mm|pt|in|em|ex|bp)$`)

// Options controls document rendering.
type Options struct {
	CellSize string // TeX dimension, DefaultCellSize when empty
}

// ValidateCellSize reports whether s is a TeX dimension the emitter accepts.
func ValidateCellSize(s string) error {
	if !cellSizeRe.MatchString(s) {
		return fmt.Errorf("invalid cell size %q (want a TeX length such as 1cm or 2.5pt)", s)
	}
	return nil
}

// Emitter writes the sections of a document in order. Callers must call
// Close to complete the document and flush buffered output.
type Emitter struct {
	w    *bufio.Writer
	cell string
	err  error
}

// NewEmitter validates opts and returns an Emitter writing to w.
func NewEmitter(w io.Writer, opts Options) (*Emitter, error) {
	cell := opts.CellSize
	if cell == "" {
		cell = DefaultCellSize
	}
	if err := ValidateCellSize(cell); err != nil {
		return nil, err
	}
	return &Emitter{w: bufio.NewWriter(w), cell: cell}, nil
}

func (e *Emitter) write(s string) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.WriteString(s)
}

// Open writes the document-open marker.
func (e *Emitter) Open() {
	e.write(openMarker)
}

// ColorMap declares every registry color in index order.
func (e *Emitter) ColorMap(reg *color.Registry) {
	e.write(colorMapTitle)
	for i := 0; i < reg.Len(); i++ {
		c := reg.At(i)
		e.write("\t\\definecolor{" + reg.Identifier(i) + "}{RGB}{" + c.String() + "}\n")
	}
}

// BeginPixels writes the heading of the pixel section.
func (e *Emitter) BeginPixels() {
	e.write(pixelsTitle)
}

// Cell draws one borderless filled unit square centred at (x, y).
func (e *Emitter) Cell(id string, x, y int) {
	e.write("\t\\node[draw=none, fill=" + id +
		", minimum width=" + e.cell + ", minimum height=" + e.cell +
		"] at (" + strconv.Itoa(x) + "," + strconv.Itoa(y) + ") {};\n")
}

// Pixels draws every grid pixel in grid order, resolving names through reg.
func (e *Emitter) Pixels(reg *color.Registry, g *grid.Grid) error {
	ids := make([]string, reg.Len())
	for i := range ids {
		ids[i] = reg.Identifier(i)
	}
	e.BeginPixels()
	for _, p := range g.Pixels {
		if p.Index < 0 || p.Index >= len(ids) {
			return fmt.Errorf("pixel (%d,%d) references color %d, registry has %d", p.X, p.Y, p.Index, len(ids))
		}
		e.Cell(ids[p.Index], p.X, p.Y)
	}
	return e.err
}

// Close writes the document-close marker and flushes.
func (e *Emitter) Close() error {
	e.write(closeMarker)
	if e.err != nil {
		return e.err
	}
	return e.w.Flush()
}

// Emit writes the complete document for reg and g to w.
func Emit(w io.Writer, reg *color.Registry, g *grid.Grid, opts Options) error {
	e, err := NewEmitter(w, opts)
	if err != nil {
		return err
	}
	e.Open()
	e.ColorMap(reg)
	if err := e.Pixels(reg, g); err != nil {
		return fmt.Errorf("writing pixels: %w", err)
	}
	if err := e.Close(); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}
