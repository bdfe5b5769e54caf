// Package scalar_test verifies the tolerance policy that underpins every
// equality check in the module.
package scalar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glintlab/glint/scalar"
)

func TestEqual_Exact(t *testing.T) {
	t.Parallel()

	require.True(t, scalar.Equal(1.0, 1.0))
	require.True(t, scalar.Equal(0.0, 0.0))
	require.True(t, scalar.Equal(0.0, math.Copysign(0, -1)), "+0 and -0 must compare equal")
	require.True(t, scalar.Equal(math.Inf(1), math.Inf(1)))
	require.False(t, scalar.Equal(math.Inf(1), math.Inf(-1)))
}

func TestEqual_Epsilon(t *testing.T) {
	t.Parallel()

	// Inside the absolute tolerance.
	require.True(t, scalar.Equal(1.0, 1.0+5e-6))
	require.True(t, scalar.Equal(-1.0, -1.0-5e-6))
	// Epsilon bridges zero; ULPs never do.
	require.True(t, scalar.Equal(4e-6, -4e-6))
	// Just outside the tolerance for small magnitudes.
	require.False(t, scalar.Equal(1.0, 1.0001))
	require.False(t, scalar.Equal(0.0, 2e-5))
}

func TestEqual_ULP(t *testing.T) {
	t.Parallel()

	// Ten additions of 0.1 drift from 1.0 by a few ULPs only.
	var sum float64
	for i := 0; i < 10; i++ {
		sum += 0.1
	}
	require.True(t, scalar.Equal(sum, 1.0))

	// Large magnitudes: epsilon is useless, ULP tolerance must carry.
	big := 1e12
	next := big
	for i := 0; i < scalar.MaxULPs; i++ {
		next = math.Nextafter(next, math.Inf(1))
	}
	require.True(t, scalar.Equal(big, next))
	// One step past the ULP budget fails.
	require.False(t, scalar.Equal(big, math.Nextafter(next, math.Inf(1))))
}

func TestEqual_NaN(t *testing.T) {
	t.Parallel()

	require.False(t, scalar.Equal(math.NaN(), math.NaN()))
	require.False(t, scalar.Equal(math.NaN(), 0))
	require.False(t, scalar.Equal(1.0, math.NaN()))
}

func TestEqual_SignSplit(t *testing.T) {
	t.Parallel()

	// Bit patterns of 1.0 and -1.0 are one sign flip apart, which a naive
	// bit-distance would call close; the sign guard must reject it.
	require.False(t, scalar.Equal(1.0, -1.0))
}
