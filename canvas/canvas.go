package canvas

import (
	"fmt"

	"github.com/glintlab/glint/tuple"
)

// Canvas is a dense, exclusively-owned grid of colors. The zero value is
// not usable; construct via New.
type Canvas struct {
	w, h int
	pix  []tuple.Color // flat row-major storage, length == w*h
}

// New creates a width×height canvas with every pixel black.
// Returns ErrBadSize when either dimension is below 1.
// Complexity: O(w*h) time and memory.
func New(width, height int) (*Canvas, error) {
	if width < 1 || height < 1 {
		return nil, ErrBadSize
	}

	// Zero value of tuple.Color is black, so the fresh slice is the
	// initialized grid.
	return &Canvas{w: width, h: height, pix: make([]tuple.Color, width*height)}, nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.w }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.h }

// indexOf computes the flat index for (x, y) or returns ErrOutOfRange.
// Negative coordinates are out of range like any other.
func (c *Canvas) indexOf(method string, x, y int) (int, error) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return 0, fmt.Errorf("Canvas.%s(%d,%d): valid coordinates are (0,0)..(%d,%d): %w",
			method, x, y, c.w-1, c.h-1, ErrOutOfRange)
	}

	return y*c.w + x, nil
}

// WritePixel stores col at (x, y).
// Returns ErrOutOfRange when the coordinate misses the canvas.
// Complexity: O(1).
func (c *Canvas) WritePixel(x, y int, col tuple.Color) error {
	idx, err := c.indexOf("WritePixel", x, y)
	if err != nil {
		return err
	}
	c.pix[idx] = col

	return nil
}

// PixelAt reads the color at (x, y).
// Returns ErrOutOfRange when the coordinate misses the canvas.
// Complexity: O(1).
func (c *Canvas) PixelAt(x, y int) (tuple.Color, error) {
	idx, err := c.indexOf("PixelAt", x, y)
	if err != nil {
		return tuple.Color{}, err
	}

	return c.pix[idx], nil
}

// Fill sets every pixel to col.
// Complexity: O(w*h).
func (c *Canvas) Fill(col tuple.Color) {
	for i := range c.pix {
		c.pix[i] = col
	}
}
