// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// approximate equality, matrix multiplication, matrix×tuple multiplication,
// and transpose. All kernels perform strict fail-fast validation and return
// clear errors on dimension mismatches.
//
// Notes:
//   - All kernels use the central validators and wrap sentinels uniformly
//     via matrixErrorf at the facade.
//   - Each kernel has a *Dense fast path over flat storage and a generic
//     At/Set fallback with a fixed loop order.

package matrix

import (
	"fmt"

	"github.com/glintlab/glint/scalar"
	"github.com/glintlab/glint/tuple"
)

// ZeroSum is the initial accumulator value for sum-of-products loops.
const ZeroSum = 0.0

// tupleWidth is the column/row count a matrix must expose to act as a
// homogeneous transform over a 4-component tuple.
const tupleWidth = 4

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opMulTuple  = "MulTuple"
	opTranspose = "Transpose"
	opSubmatrix = "Submatrix"
	opDet       = "Det"
	opMinor     = "Minor"
	opCofactor  = "Cofactor"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w so errors.Is/As still match the sentinel.
// Use only when err != nil.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Equal reports whether a and b have the same shape and approximately equal
// elements under the scalar tolerance policy.
//
// Behavior highlights:
//   - Equality is a predicate, not a kernel: it has no error surface.
//     Two nil matrices are equal; nil against non-nil is not.
//   - Shape mismatch → false, no element comparison.
//   - Element scan short-circuits on the first mismatch, fixed i→j order.
//
// Complexity: O(r*c) worst case, O(1) on shape mismatch.
func Equal(a, b Matrix) bool {
	// Nil handling: predicates cannot fail, they decide.
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	// Shape gate
	rows, cols := a.Rows(), a.Cols()
	if rows != b.Rows() || cols != b.Cols() {
		return false
	}

	// Fast path: both *Dense → single flat scan.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			n := rows * cols
			for idx := 0; idx < n; idx++ { // deterministic 0..n-1
				if !scalar.Equal(da.data[idx], db.data[idx]) {
					return false
				}
			}

			return true
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return false
			}
			if bv, err = b.At(i, j); err != nil {
				return false
			}
			if !scalar.Equal(av, bv) {
				return false
			}
		}
	}

	return true
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and
//     skip zeros; otherwise use i→j→k with a fixed order.
//
// Inputs:
//   - a: left matrix with shape (r × n).
//   - b: right matrix with shape (n × c).
//
// Returns:
//   - Matrix: new Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate result Dense
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int // loop iterators
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// row-major multiplication into res.data
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue // skip zero for performance
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv // accumulate product
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// MulTuple computes m × t, treating the tuple as a 4×1 column vector.
//
// Contract: m non-nil, m.Cols() == 4, m.Rows() ≤ 4. A matrix with fewer
// than 4 rows yields a result whose trailing components stay zero — that
// partial result is part of the contract, not silently reshaped. More than
// 4 rows cannot fit a 4-component result and is rejected.
//
// Inputs:
//   - m: homogeneous transform, up to 4×4.
//   - t: tuple consumed as the column (x, y, z, w).
//
// Returns:
//   - tuple.Tuple: the four row-dot-products of m against t.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (cols != 4 or rows > 4).
//
// Complexity: O(1) (at most 16 multiply-adds).
func MulTuple(m Matrix, t tuple.Tuple) (tuple.Tuple, error) {
	// Validate shape: exactly 4 columns, at most 4 rows.
	if err := ValidateNotNil(m); err != nil {
		return tuple.Tuple{}, matrixErrorf(opMulTuple, err)
	}
	rows := m.Rows()
	if m.Cols() != tupleWidth || rows > tupleWidth {
		return tuple.Tuple{}, matrixErrorf(opMulTuple, ErrDimensionMismatch)
	}

	vec := t.Components()
	var out [tupleWidth]float64
	var i, k int // loop iterators

	// Fast path: *Dense flat row-major dot products.
	if dm, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			base = i * tupleWidth
			for k = 0; k < tupleWidth; k++ {
				out[i] += dm.data[base+k] * vec[k]
			}
		}

		return tuple.New(out[0], out[1], out[2], out[3]), nil
	}

	// Fallback: interface path.
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for k = 0; k < tupleWidth; k++ {
			v, err = m.At(i, k)
			if err != nil {
				return tuple.Tuple{}, matrixErrorf(opMulTuple, fmt.Errorf("At(%d,%d): %w", i, k, err))
			}
			out[i] += v * vec[k]
		}
	}

	return tuple.New(out[0], out[1], out[2], out[3]), nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated non-nil; the original matrix is never mutated.
// Transpose(Identity()) equals Identity().
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: If m is *Dense, use contiguous slice mapping; else generic
//     i→j loop via At/Set.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
func Transpose(m Matrix) (Matrix, error) {
	// Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Allocate result Dense with flipped dimensions
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Fast-path for Dense → Dense
	var i, j int // loop iterators
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	// Fallback: generic interface loop
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	return res, nil
}
