// Package matrix_test: shared helpers for the matrix test suite.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glintlab/glint/matrix"
)

// mustFromRows builds a Dense from a literal or fails the test.
func mustFromRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(tb, err)

	return m
}

// mustAt reads one element or fails the test.
func mustAt(tb testing.TB, m matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// hide wraps a Matrix to conceal its concrete type, forcing kernels onto
// their generic interface fallback paths.
type hide struct{ matrix.Matrix }
