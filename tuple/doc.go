// Package tuple provides the homogeneous 4-component value algebra the
// renderer is built on, plus the linear-RGB Color type that reuses its
// storage.
//
// A Tuple is (X, Y, Z, W) where W distinguishes a point (W=1) from a free
// vector (W=0). W may take other values as an intermediate result of
// matrix multiplication; callers check IsPoint/IsVector before relying on
// the distinction.
//
// All types are immutable value types: every operation returns a new value
// and never mutates its receiver or arguments. None of the operations can
// fail — malformed use (Cross on points, Normalize on a zero vector) is not
// guarded and yields whatever the formula produces.
package tuple
