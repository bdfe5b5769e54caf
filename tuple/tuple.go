package tuple

import (
	"math"

	"github.com/glintlab/glint/scalar"
)

// Tuple is a homogeneous 4-component value. W=1 marks a point, W=0 a free
// vector. Pass-by-value; all operations return fresh values.
type Tuple struct {
	X, Y, Z, W float64
}

// New builds a raw tuple with explicit components.
func New(x, y, z, w float64) Tuple { return Tuple{X: x, Y: y, Z: z, W: w} }

// NewPoint builds a point (W=1).
func NewPoint(x, y, z float64) Tuple { return Tuple{X: x, Y: y, Z: z, W: 1} }

// NewVector builds a free vector (W=0).
func NewVector(x, y, z float64) Tuple { return Tuple{X: x, Y: y, Z: z, W: 0} }

// IsPoint reports whether W is approximately 1.
func (t Tuple) IsPoint() bool { return scalar.Equal(t.W, 1) }

// IsVector reports whether W is approximately 0.
func (t Tuple) IsVector() bool { return scalar.Equal(t.W, 0) }

// Equal reports component-wise approximate equality with o.
func (t Tuple) Equal(o Tuple) bool {
	return scalar.Equal(t.X, o.X) &&
		scalar.Equal(t.Y, o.Y) &&
		scalar.Equal(t.Z, o.Z) &&
		scalar.Equal(t.W, o.W)
}

// Add returns the component-wise sum t + o.
func (t Tuple) Add(o Tuple) Tuple {
	return Tuple{X: t.X + o.X, Y: t.Y + o.Y, Z: t.Z + o.Z, W: t.W + o.W}
}

// Sub returns the component-wise difference t − o.
func (t Tuple) Sub(o Tuple) Tuple {
	return Tuple{X: t.X - o.X, Y: t.Y - o.Y, Z: t.Z - o.Z, W: t.W - o.W}
}

// Neg returns the component-wise negation of t.
func (t Tuple) Neg() Tuple { return Tuple{X: -t.X, Y: -t.Y, Z: -t.Z, W: -t.W} }

// Scale returns t with every component multiplied by k.
func (t Tuple) Scale(k float64) Tuple {
	return Tuple{X: t.X * k, Y: t.Y * k, Z: t.Z * k, W: t.W * k}
}

// Div returns t with every component divided by k.
func (t Tuple) Div(k float64) Tuple {
	return Tuple{X: t.X / k, Y: t.Y / k, Z: t.Z / k, W: t.W / k}
}

// Magnitude returns the Euclidean norm over all four components.
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns t divided by its magnitude. A zero tuple produces
// non-finite components; the caller owns that precondition.
func (t Tuple) Normalize() Tuple { return t.Div(t.Magnitude()) }

// Dot returns the 4-component dot product of t and o.
func (t Tuple) Dot(o Tuple) float64 {
	return t.X*o.X + t.Y*o.Y + t.Z*o.Z + t.W*o.W
}

// Cross returns the 3-D cross product of t and o as a vector (W=0).
// Defined for vectors; W components of the inputs are ignored.
func (t Tuple) Cross(o Tuple) Tuple {
	return NewVector(
		t.Y*o.Z-t.Z*o.Y,
		t.Z*o.X-t.X*o.Z,
		t.X*o.Y-t.Y*o.X,
	)
}

// Components returns the tuple as a fixed [x y z w] array, the column
// vector form consumed by matrix×tuple multiplication.
func (t Tuple) Components() [4]float64 { return [4]float64{t.X, t.Y, t.Z, t.W} }
