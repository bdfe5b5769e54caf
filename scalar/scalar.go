// Package scalar provides the single floating-point tolerance policy used
// by every equality check in glint (tuples, colors, matrices).
//
// Two float64 values compare equal when their absolute difference is within
// Epsilon, or when they are within MaxULPs representable steps of each
// other. The ULP branch absorbs rounding drift from chained arithmetic
// (normalization, cofactor expansion) that a fixed epsilon alone misses for
// large magnitudes.
package scalar

import "math"

// Epsilon is the absolute tolerance for approximate equality.
const Epsilon = 1e-5

// MaxULPs is the maximum distance, in representable float64 steps, at which
// two same-signed values still compare equal.
const MaxULPs = 16

// Equal reports whether a and b are approximately equal under the package
// tolerance policy.
//
// Rules, in order:
//   - exact equality (covers equal infinities and ±0) → true
//   - NaN on either side → false
//   - |a−b| ≤ Epsilon → true
//   - differing signs → false (only the epsilon branch may bridge zero)
//   - ULP distance ≤ MaxULPs → true
//
// Complexity: O(1).
func Equal(a, b float64) bool {
	if a == b {
		return true
	}
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if math.Abs(a-b) <= Epsilon {
		return true
	}
	if math.Signbit(a) != math.Signbit(b) {
		return false
	}

	return ulpsDiff(a, b) <= MaxULPs
}

// ulpsDiff returns the number of representable float64 values between a and
// b. Callers must ensure a and b are finite, non-NaN and same-signed.
func ulpsDiff(a, b float64) uint64 {
	ua, ub := math.Float64bits(a), math.Float64bits(b)
	if ua > ub {
		return ua - ub
	}

	return ub - ua
}
