package tuple

import "math"

// Color is a linear-RGB triple stored in a Tuple with W fixed at 0.
// Channels are conceptually in [0,1] but never clamped internally;
// clamping happens only at the 8-bit output boundary (Bytes).
type Color struct {
	t Tuple
}

// NewColor builds a color from linear red, green and blue channels.
func NewColor(r, g, b float64) Color { return Color{t: Tuple{X: r, Y: g, Z: b}} }

// Black is the zero color (0,0,0), the canvas default.
func Black() Color { return Color{} }

// R returns the red channel.
func (c Color) R() float64 { return c.t.X }

// G returns the green channel.
func (c Color) G() float64 { return c.t.Y }

// B returns the blue channel.
func (c Color) B() float64 { return c.t.Z }

// Equal reports channel-wise approximate equality with o.
func (c Color) Equal(o Color) bool { return c.t.Equal(o.t) }

// Add returns the channel-wise sum c + o.
func (c Color) Add(o Color) Color { return Color{t: c.t.Add(o.t)} }

// Sub returns the channel-wise difference c − o.
func (c Color) Sub(o Color) Color { return Color{t: c.t.Sub(o.t)} }

// Scale returns c with every channel multiplied by k.
func (c Color) Scale(k float64) Color { return Color{t: c.t.Scale(k)} }

// Mul returns the Hadamard (channel-wise) product of c and o, the blend
// operation used when a light color filters a surface color.
func (c Color) Mul(o Color) Color {
	return NewColor(c.R()*o.R(), c.G()*o.G(), c.B()*o.B())
}

// Bytes converts c to clamped 8-bit channels: round(channel·255) pinned to
// [0,255]. Out-of-range inputs are legal and simply saturate (−0.5 → 0,
// 1.5 → 255). This is the only place the [0,1] range is enforced.
func (c Color) Bytes() (r, g, b uint8) {
	return clampByte(c.R()), clampByte(c.G()), clampByte(c.B())
}

// clampByte maps one linear channel to its clamped 8-bit value.
func clampByte(v float64) uint8 {
	scaled := math.Round(v * 255)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}

	return uint8(scaled)
}
