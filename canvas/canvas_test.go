// Package canvas_test: canvas construction, pixel access and bounds
// behavior.
package canvas_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glintlab/glint/canvas"
	"github.com/glintlab/glint/tuple"
)

func TestNewCanvasAllBlack(t *testing.T) {
	t.Parallel()

	c, err := canvas.New(10, 20)
	require.NoError(t, err)
	require.Equal(t, 10, c.Width())
	require.Equal(t, 20, c.Height())

	for y := 0; y < 20; y++ {
		for x := 0; x < 10; x++ {
			px, err := c.PixelAt(x, y)
			require.NoError(t, err)
			require.True(t, px.Equal(tuple.Black()))
		}
	}
}

func TestNewCanvasBadSize(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ w, h int }{
		{0, 5},
		{5, 0},
		{-1, 5},
		{0, 0},
	} {
		_, err := canvas.New(tc.w, tc.h)
		require.ErrorIs(t, err, canvas.ErrBadSize)
	}
}

func TestWriteAndReadPixel(t *testing.T) {
	t.Parallel()

	c, err := canvas.New(10, 20)
	require.NoError(t, err)

	red := tuple.NewColor(1, 0, 0)
	require.NoError(t, c.WritePixel(2, 3, red))

	px, err := c.PixelAt(2, 3)
	require.NoError(t, err)
	require.True(t, px.Equal(red))

	// Neighbors stay untouched.
	px, err = c.PixelAt(3, 3)
	require.NoError(t, err)
	require.True(t, px.Equal(tuple.Black()))
}

func TestPixelBounds(t *testing.T) {
	t.Parallel()

	const w, h = 8, 5
	c, err := canvas.New(w, h)
	require.NoError(t, err)
	col := tuple.NewColor(1, 1, 1)

	// One past each edge fails, including negatives.
	require.ErrorIs(t, c.WritePixel(w, 0, col), canvas.ErrOutOfRange)
	require.ErrorIs(t, c.WritePixel(0, h, col), canvas.ErrOutOfRange)
	require.ErrorIs(t, c.WritePixel(-1, 0, col), canvas.ErrOutOfRange)
	require.ErrorIs(t, c.WritePixel(0, -1, col), canvas.ErrOutOfRange)
	_, err = c.PixelAt(w, 0)
	require.ErrorIs(t, err, canvas.ErrOutOfRange)
	_, err = c.PixelAt(0, h)
	require.ErrorIs(t, err, canvas.ErrOutOfRange)

	// The far corner is valid.
	require.NoError(t, c.WritePixel(w-1, h-1, col))
	px, err := c.PixelAt(w-1, h-1)
	require.NoError(t, err)
	require.True(t, px.Equal(col))
}

func TestFill(t *testing.T) {
	t.Parallel()

	c, err := canvas.New(4, 3)
	require.NoError(t, err)

	amber := tuple.NewColor(1, 0.8, 0.6)
	c.Fill(amber)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			px, err := c.PixelAt(x, y)
			require.NoError(t, err)
			require.True(t, px.Equal(amber))
		}
	}
}
