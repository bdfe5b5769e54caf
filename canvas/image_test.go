// Package canvas_test: the image bridge — NRGBA adapter, PNG round trip
// and preview upscaling.
package canvas_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glintlab/glint/canvas"
	"github.com/glintlab/glint/tuple"
)

func TestImage(t *testing.T) {
	t.Parallel()

	c, err := canvas.New(3, 2)
	require.NoError(t, err)
	require.NoError(t, c.WritePixel(0, 0, tuple.NewColor(1, 0, 0)))
	require.NoError(t, c.WritePixel(2, 1, tuple.NewColor(1.5, -0.25, 0.5)))

	img := c.Image()
	require.Equal(t, 3, img.Bounds().Dx())
	require.Equal(t, 2, img.Bounds().Dy())

	r, g, b, a := img.At(0, 0).RGBA()
	require.Equal(t, uint32(0xffff), r)
	require.Zero(t, g)
	require.Zero(t, b)
	require.Equal(t, uint32(0xffff), a)

	// Clamp-on-output applies to the image bridge exactly as to PPM.
	px := img.NRGBAAt(2, 1)
	require.Equal(t, uint8(255), px.R)
	require.Equal(t, uint8(0), px.G)
	require.Equal(t, uint8(128), px.B)
	require.Equal(t, uint8(255), px.A)

	// The image owns its pixels; later canvas writes must not show through.
	require.NoError(t, c.WritePixel(0, 0, tuple.NewColor(0, 1, 0)))
	require.Equal(t, uint8(255), img.NRGBAAt(0, 0).R)
}

func TestEncodePNGRoundTrip(t *testing.T) {
	t.Parallel()

	c, err := canvas.New(4, 4)
	require.NoError(t, err)
	require.NoError(t, c.WritePixel(1, 2, tuple.NewColor(0, 0, 1)))

	var buf bytes.Buffer
	require.NoError(t, c.EncodePNG(&buf))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, 4, decoded.Bounds().Dx())
	require.Equal(t, 4, decoded.Bounds().Dy())

	_, _, b, _ := decoded.At(1, 2).RGBA()
	require.Equal(t, uint32(0xffff), b)
	r, g, _, _ := decoded.At(0, 0).RGBA()
	require.Zero(t, r)
	require.Zero(t, g)
}

func TestPreview(t *testing.T) {
	t.Parallel()

	c, err := canvas.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, c.WritePixel(0, 0, tuple.NewColor(1, 0, 0)))
	require.NoError(t, c.WritePixel(1, 1, tuple.NewColor(0, 0, 1)))

	img, err := c.Preview(3)
	require.NoError(t, err)
	require.Equal(t, 6, img.Bounds().Dx())
	require.Equal(t, 6, img.Bounds().Dy())

	// Nearest-neighbor keeps each pixel a crisp 3×3 block.
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			require.Equal(t, uint8(255), img.NRGBAAt(x, y).R, "red block at (%d,%d)", x, y)
			require.Equal(t, uint8(255), img.NRGBAAt(3+x, 3+y).B, "blue block at (%d,%d)", 3+x, 3+y)
			require.Equal(t, uint8(0), img.NRGBAAt(3+x, y).R, "black block at (%d,%d)", 3+x, y)
		}
	}
}

func TestPreviewIdentityAndErrors(t *testing.T) {
	t.Parallel()

	c, err := canvas.New(2, 2)
	require.NoError(t, err)

	img, err := c.Preview(1)
	require.NoError(t, err)
	require.Equal(t, 2, img.Bounds().Dx())

	_, err = c.Preview(0)
	require.ErrorIs(t, err, canvas.ErrBadScale)
	_, err = c.Preview(-2)
	require.ErrorIs(t, err, canvas.ErrBadScale)
}
