package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"os"

	// Decoders registered with the image package.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/disintegration/imaging"

	"github.com/davesmith10/image2pgf/internal/ir"
)

var (
	// ErrInputNotFound is returned when the input path does not exist.
	ErrInputNotFound = errors.New("input image not found")
	// ErrDecode is returned when the input exists but is not a decodable image.
	ErrDecode = errors.New("cannot decode image")
)

// LoadOptions controls how an image file is turned into a raster.
type LoadOptions struct {
	AutoOrient bool // apply the EXIF orientation tag
	MaxSize    int  // if > 0, downscale so neither side exceeds MaxSize
}

// Load decodes the image at path into an RGB raster. Any alpha channel is
// discarded without compositing.
func Load(path string, opts LoadOptions) (*ir.RGBImage, error) {
	if err := checkExists(path); err != nil {
		return nil, err
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(opts.AutoOrient))
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrDecode, path, err)
	}

	if opts.MaxSize > 0 {
		b := img.Bounds()
		if b.Dx() > opts.MaxSize || b.Dy() > opts.MaxSize {
			// Nearest neighbour keeps the output palette a subset of the input.
			img = imaging.Fit(img, opts.MaxSize, opts.MaxSize, imaging.NearestNeighbor)
		}
	}

	return FromImage(img), nil
}

func checkExists(path string) error {
	st, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return fmt.Errorf("reading input: %w", err)
	}
	if st.IsDir() {
		return fmt.Errorf("%w %s: is a directory", ErrDecode, path)
	}
	return nil
}

// FromImage copies img into a raster with canonical RGB channel order.
// Go decoders expose R,G,B through color.Color; the NRGBA and RGBA fast
// paths read the Pix buffers, whose storage order is R,G,B,A.
func FromImage(img image.Image) *ir.RGBImage {
	b := img.Bounds()
	out := ir.NewRGBImage(b.Dx(), b.Dy())

	switch src := img.(type) {
	case *image.NRGBA:
		for y := 0; y < out.Height; y++ {
			i := src.PixOffset(b.Min.X, b.Min.Y+y)
			for x := 0; x < out.Width; x++ {
				p := src.Pix[i : i+4 : i+4]
				out.Set(x, y, p[0], p[1], p[2])
				i += 4
			}
		}
	case *image.RGBA:
		for y := 0; y < out.Height; y++ {
			i := src.PixOffset(b.Min.X, b.Min.Y+y)
			for x := 0; x < out.Width; x++ {
				p := src.Pix[i : i+4 : i+4]
				if p[3] == 0xff {
					out.Set(x, y, p[0], p[1], p[2])
				} else {
					c := color.NRGBAModel.Convert(color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}).(color.NRGBA)
					out.Set(x, y, c.R, c.G, c.B)
				}
				i += 4
			}
		}
	default:
		for y := 0; y < out.Height; y++ {
			for x := 0; x < out.Width; x++ {
				c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				out.Set(x, y, c.R, c.G, c.B)
			}
		}
	}
	return out
}
