// Package canvas: the image bridge — image.Image adapter, PNG encoding,
// and integer-factor preview scaling.
package canvas

import (
	"image"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"
)

// Image converts the canvas to an 8-bit NRGBA image using the same
// clamp-on-output rule as PPM serialization; alpha is fully opaque.
// The returned image owns its pixels; later canvas writes do not show
// through.
// Complexity: O(w*h).
func (c *Canvas) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.w, c.h))
	var x, y, off int
	var r, g, b uint8
	for y = 0; y < c.h; y++ {
		for x = 0; x < c.w; x++ {
			r, g, b = c.pix[y*c.w+x].Bytes()
			off = img.PixOffset(x, y)
			img.Pix[off+0] = r
			img.Pix[off+1] = g
			img.Pix[off+2] = b
			img.Pix[off+3] = 0xff
		}
	}

	return img
}

// EncodePNG writes the canvas to w as a PNG image. Unlike PPM, PNG is a
// convenience surface for viewers, not a byte-exact contract.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.Image())
}

// Preview returns the canvas upscaled by an integer factor using
// nearest-neighbor sampling, so each canvas pixel becomes a crisp
// factor×factor block. Meant for inspecting small renders.
// Returns ErrBadScale for factor < 1.
// Complexity: O(w*h*factor²).
func (c *Canvas) Preview(factor int) (*image.NRGBA, error) {
	if factor < 1 {
		return nil, ErrBadScale
	}

	src := c.Image()
	if factor == 1 {
		return src, nil
	}
	dst := image.NewNRGBA(image.Rect(0, 0, c.w*factor, c.h*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	return dst, nil
}
