package ir

import "fmt"

// ChannelOrder describes how the three channel bytes of a pixel are laid out
// in RGBImage.Pixels.
type ChannelOrder int

const (
	OrderRGB ChannelOrder = iota
	OrderBGR
)

func (o ChannelOrder) String() string {
	switch o {
	case OrderRGB:
		return "RGB"
	case OrderBGR:
		return "BGR"
	default:
		return fmt.Sprintf("ChannelOrder(%d)", int(o))
	}
}

// RGBImage is the intermediate representation passed between the image
// loader and the pixel scan. Pixels are stored as interleaved 3-byte triples
// (row-major order, top row first) in the channel order given by Order.
type RGBImage struct {
	Width  int
	Height int
	Order  ChannelOrder
	Pixels []byte // len = Width * Height * 3
}

// NewRGBImage allocates a zeroed width x height raster in RGB order.
func NewRGBImage(width, height int) *RGBImage {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &RGBImage{
		Width:  width,
		Height: height,
		Order:  OrderRGB,
		Pixels: make([]byte, width*height*3),
	}
}

// Validate checks that the pixel buffer matches the declared dimensions.
func (m *RGBImage) Validate() error {
	if m.Width < 0 || m.Height < 0 {
		return fmt.Errorf("invalid raster dimensions %dx%d", m.Width, m.Height)
	}
	if m.Order != OrderRGB && m.Order != OrderBGR {
		return fmt.Errorf("unsupported channel order %s", m.Order)
	}
	expected := m.Width * m.Height * 3
	if len(m.Pixels) != expected {
		return fmt.Errorf("expected %d pixel bytes for %dx%d, got %d", expected, m.Width, m.Height, len(m.Pixels))
	}
	return nil
}

// RGB returns the canonical red, green, blue values at column x, row y,
// reordering from the storage order if needed.
func (m *RGBImage) RGB(x, y int) (r, g, b uint8) {
	off := (y*m.Width + x) * 3
	p := m.Pixels[off : off+3 : off+3]
	if m.Order == OrderBGR {
		return p[2], p[1], p[0]
	}
	return p[0], p[1], p[2]
}

// Set stores a canonical red, green, blue triple at column x, row y using the
// raster's storage order.
func (m *RGBImage) Set(x, y int, r, g, b uint8) {
	off := (y*m.Width + x) * 3
	if m.Order == OrderBGR {
		m.Pixels[off], m.Pixels[off+1], m.Pixels[off+2] = b, g, r
		return
	}
	m.Pixels[off], m.Pixels[off+1], m.Pixels[off+2] = r, g, b
}
