package imageio

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/davesmith10/image2pgf/internal/ir"
)

var testColors = []color.NRGBA{
	{R: 255, A: 255},
	{G: 255, A: 255},
	{B: 255, A: 255},
	{R: 12, G: 34, B: 56, A: 255},
}

// fixture returns a 2x2 opaque image: red, green on the top row and
// blue, (12,34,56) on the bottom row.
func fixture() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i, c := range testColors {
		img.SetNRGBA(i%2, i/2, c)
	}
	return img
}

func writeFile(t *testing.T, name string, encode func(f *os.File) error) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, encode(f))
	require.NoError(t, f.Close())
	return path
}

func assertFixture(t *testing.T, rgb *ir.RGBImage) {
	t.Helper()
	require.Equal(t, 2, rgb.Width)
	require.Equal(t, 2, rgb.Height)
	assert.Equal(t, ir.OrderRGB, rgb.Order)
	for i, c := range testColors {
		r, g, b := rgb.RGB(i%2, i/2)
		assert.Equal(t, [3]uint8{c.R, c.G, c.B}, [3]uint8{r, g, b}, "pixel %d", i)
	}
}

func TestLoadFormats(t *testing.T) {
	encoders := map[string]func(f *os.File) error{
		"img.png":  func(f *os.File) error { return png.Encode(f, fixture()) },
		"img.bmp":  func(f *os.File) error { return bmp.Encode(f, fixture()) },
		"img.tiff": func(f *os.File) error { return tiff.Encode(f, fixture(), nil) },
	}
	for name, enc := range encoders {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, name, enc)
			rgb, err := Load(path, LoadOptions{AutoOrient: true})
			require.NoError(t, err)
			assertFixture(t, rgb)
		})
	}
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"), LoadOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInputNotFound)
	assert.NotErrorIs(t, err, ErrDecode)
}

func TestLoadNotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.png")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a png"), 0644))

	_, err := Load(path, LoadOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecode)
	assert.Contains(t, err.Error(), "notes.png")

	_, err = Load(t.TempDir(), LoadOptions{})
	assert.ErrorIs(t, err, ErrDecode)
}

func TestLoadMaxSize(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 10, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 10; x++ {
			src.SetNRGBA(x, y, testColors[(x+y)%len(testColors)])
		}
	}
	path := writeFile(t, "wide.png", func(f *os.File) error { return png.Encode(f, src) })

	rgb, err := Load(path, LoadOptions{MaxSize: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, rgb.Width)
	assert.Equal(t, 2, rgb.Height)

	// Nearest neighbour never invents colors.
	allowed := map[[3]uint8]bool{}
	for _, c := range testColors {
		allowed[[3]uint8{c.R, c.G, c.B}] = true
	}
	for y := 0; y < rgb.Height; y++ {
		for x := 0; x < rgb.Width; x++ {
			r, g, b := rgb.RGB(x, y)
			assert.True(t, allowed[[3]uint8{r, g, b}], "unexpected color %d,%d,%d", r, g, b)
		}
	}

	rgb, err = Load(path, LoadOptions{MaxSize: 64})
	require.NoError(t, err)
	assert.Equal(t, 10, rgb.Width)
	assert.Equal(t, 4, rgb.Height)
}

func TestFromImageSubImageAndPremultiplied(t *testing.T) {
	full := image.NewRGBA(image.Rect(0, 0, 4, 4))
	full.SetRGBA(2, 3, color.RGBA{R: 200, G: 100, B: 50, A: 255})
	full.SetRGBA(3, 3, color.RGBA{R: 64, G: 32, B: 0, A: 128})

	sub := full.SubImage(image.Rect(2, 3, 4, 4))
	rgb := FromImage(sub)
	require.Equal(t, 2, rgb.Width)
	require.Equal(t, 1, rgb.Height)

	r, g, b := rgb.RGB(0, 0)
	assert.Equal(t, [3]uint8{200, 100, 50}, [3]uint8{r, g, b})

	r, g, b = rgb.RGB(1, 0)
	assert.Equal(t, [3]uint8{127, 63, 0}, [3]uint8{r, g, b})
}

func TestFromImagePaletted(t *testing.T) {
	pal := color.Palette{color.RGBA{A: 255}, color.RGBA{R: 9, G: 8, B: 7, A: 255}}
	img := image.NewPaletted(image.Rect(0, 0, 2, 1), pal)
	img.SetColorIndex(1, 0, 1)

	rgb := FromImage(img)
	r, g, b := rgb.RGB(1, 0)
	assert.Equal(t, [3]uint8{9, 8, 7}, [3]uint8{r, g, b})
	r, g, b = rgb.RGB(0, 0)
	assert.Equal(t, [3]uint8{0, 0, 0}, [3]uint8{r, g, b})
}

func TestFromImageEmpty(t *testing.T) {
	rgb := FromImage(image.NewNRGBA(image.Rect(0, 0, 0, 0)))
	assert.Zero(t, rgb.Width)
	assert.Zero(t, rgb.Height)
	assert.Empty(t, rgb.Pixels)
}

func TestInfo(t *testing.T) {
	path := writeFile(t, "info.png", func(f *os.File) error { return png.Encode(f, fixture()) })

	info, err := Info(path)
	require.NoError(t, err)
	assert.Equal(t, 2, info.Width)
	assert.Equal(t, 2, info.Height)
	assert.Equal(t, "png", info.Format)
	assert.NotEmpty(t, info.ColorModel)
	assert.Positive(t, info.Size)

	_, err = Info(filepath.Join(t.TempDir(), "none.png"))
	assert.ErrorIs(t, err, ErrInputNotFound)
}

func TestColorModelName(t *testing.T) {
	assert.Equal(t, "YCbCr", colorModelName(color.YCbCrModel))
	assert.Equal(t, "Paletted(3)", colorModelName(color.Palette{color.Black, color.White, color.Black}))
}
