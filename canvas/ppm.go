// Package canvas: PPM ("P3" plain-text) serialization — the module's one
// byte-exact wire contract.
package canvas

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// maxPPMLine is the column budget for PPM body lines. Many PPM readers
// reject lines longer than this, so the writer wraps greedily below it.
const maxPPMLine = 70

// PPM serializes the canvas as a plain-text P3 image:
//
//	P3\n{width} {height}\n255\n
//
// followed by the body: for each canvas row top-to-bottom, every pixel's
// clamped R G B channels left-to-right as space-separated decimal tokens.
//
// Line-wrap contract:
//   - a token joins the current line only when the line stays ≤ 70
//     characters (counting the joining space; a token on an empty line
//     needs no space);
//   - otherwise the line is flushed and the token starts a new one;
//   - every canvas row flushes its line, so rows never merge.
//
// Output is a fresh buffer, byte-for-byte reproducible for identical
// pixel data.
// Complexity: O(w*h) time and output size.
func (c *Canvas) PPM() []byte {
	var buf bytes.Buffer
	// Rough capacity: 12 bytes per pixel plus header.
	buf.Grow(c.w*c.h*12 + 32)

	// Header: magic, dimensions, maximum channel value.
	fmt.Fprintf(&buf, "P3\n%d %d\n255\n", c.w, c.h)

	// Body: greedy wrap against the 70-column budget.
	line := make([]byte, 0, maxPPMLine+4)
	var x, y int
	var r, g, b uint8
	for y = 0; y < c.h; y++ {
		for x = 0; x < c.w; x++ {
			r, g, b = c.pix[y*c.w+x].Bytes()
			line = appendToken(&buf, line, strconv.Itoa(int(r)))
			line = appendToken(&buf, line, strconv.Itoa(int(g)))
			line = appendToken(&buf, line, strconv.Itoa(int(b)))
		}
		// Row boundary always forces a line break.
		buf.Write(line)
		buf.WriteByte('\n')
		line = line[:0]
	}

	return buf.Bytes()
}

// appendToken joins tok onto line within the column budget, flushing the
// line to buf first when it would overflow. Returns the updated line.
func appendToken(buf *bytes.Buffer, line []byte, tok string) []byte {
	need := len(tok)
	if len(line) > 0 {
		need++ // joining space
	}
	if len(line)+need > maxPPMLine {
		buf.Write(line)
		buf.WriteByte('\n')
		line = line[:0]

		return append(line, tok...)
	}
	if len(line) > 0 {
		line = append(line, ' ')
	}

	return append(line, tok...)
}

// WritePPMTo streams the PPM serialization into w, returning the number of
// bytes written. I/O failure is the caller's recoverable condition; the
// serialization itself cannot fail.
func (c *Canvas) WritePPMTo(w io.Writer) (int, error) {
	return w.Write(c.PPM())
}
