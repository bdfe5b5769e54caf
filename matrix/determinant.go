// SPDX-License-Identifier: MIT
// Package matrix: the recursive determinant family — Submatrix, Minor,
// Cofactor, and Det via Laplace expansion along the first row.
//
// Purpose:
//   - Complete cofactor machinery for square matrices of any size ≥ 1,
//     bottoming out at the closed-form 2×2 base case.
//   - Keep the sign rule (−1)^(row+col) in exactly one place.
//
// Notes:
//   - Naive expansion is exponential in N. The intended operating range is
//     2×2..4×4 homogeneous transforms, where it is exact and more than
//     fast enough.

package matrix

import "fmt"

// Submatrix returns a new (R−1)×(C−1) matrix with the given row and column
// removed, preserving the relative order of the remaining rows and columns.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m), ValidateIndex(m,row,col); reject shapes
//     that would shrink to zero rows or columns.
//   - Stage 2: copy with skip loops; *Dense fast path copies row segments
//     around the dropped column.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (bad indices), ErrBadShape (1×C or R×1).
//
// Complexity:
//   - Time O(r*c), Space O((r−1)*(c−1)).
func Submatrix(m Matrix, row, col int) (Matrix, error) {
	// Validate input and indices
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if err := ValidateIndex(m, row, col); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}

	// Allocate shrunken result
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows-1, cols-1)
	if err != nil {
		return nil, matrixErrorf(opSubmatrix, err) // ErrBadShape when a dimension hits zero
	}

	// Fast path: *Dense → copy row segments around the dropped column.
	if dm, ok := m.(*Dense); ok {
		var src, dst int // flat cursors over source and result
		for i := 0; i < rows; i++ {
			if i == row {
				continue
			}
			src = i * cols
			copy(res.data[dst:dst+col], dm.data[src:src+col])
			copy(res.data[dst+col:dst+cols-1], dm.data[src+col+1:src+cols])
			dst += cols - 1
		}

		return res, nil
	}

	// Fallback: generic skip loops with fixed i→j order.
	var i, j, ri, rj int
	var v float64
	for i = 0; i < rows; i++ {
		if i == row {
			continue
		}
		rj = 0
		for j = 0; j < cols; j++ {
			if j == col {
				continue
			}
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opSubmatrix, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(ri, rj, v); err != nil {
				return nil, matrixErrorf(opSubmatrix, fmt.Errorf("Set(%d,%d): %w", ri, rj, err))
			}
			rj++
		}
		ri++
	}

	return res, nil
}

// Minor returns the determinant of Submatrix(m, row, col).
//
// Errors: those of Submatrix and Det (notably ErrNonSquare via Det when m
// itself is not square).
// Complexity: that of Det on an (n−1)×(n−1) matrix.
func Minor(m Matrix, row, col int) (float64, error) {
	sub, err := Submatrix(m, row, col)
	if err != nil {
		return 0, matrixErrorf(opMinor, err)
	}
	d, err := Det(sub)
	if err != nil {
		return 0, matrixErrorf(opMinor, err)
	}

	return d, nil
}

// Cofactor returns Minor(m, row, col) with the Laplace sign applied:
// negated exactly when (row+col) is odd, i.e. (−1)^(row+col).
//
// The parity test is kept as an explicit sum with parentheses — the folk
// spelling `row + col%2` binds the modulo to col alone and silently flips
// signs for half the index pairs.
//
// Errors: those of Minor.
// Complexity: that of Minor.
func Cofactor(m Matrix, row, col int) (float64, error) {
	minor, err := Minor(m, row, col)
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	if (row+col)%2 == 1 {
		return -minor, nil
	}

	return minor, nil
}

// Det computes the determinant of a square matrix.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m), ValidateSquare(m).
//   - Stage 2: closed forms for 1×1 (the element) and 2×2 (ad − bc);
//     otherwise Laplace expansion along row 0:
//     Σ_j m[0][j] · Cofactor(m, 0, j), recursing through Submatrix down
//     to the 2×2 base case. Zero leading entries skip their cofactor.
//
// Inputs:
//   - m: square matrix, any n ≥ 1.
//
// Returns:
//   - float64: the determinant. Zero for singular matrices is a legitimate
//     value, not an error.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Determinism:
//   - Fixed expansion row (0) and fixed j order; identical inputs give
//     bit-identical results.
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion level. Intended for n ≤ 4.
func Det(m Matrix) (float64, error) {
	// Validate input non-nil and square
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	n := m.Rows()

	// Base cases: closed forms, no recursion.
	switch n {
	case 1:
		v, err := m.At(0, 0)
		if err != nil {
			return 0, matrixErrorf(opDet, fmt.Errorf("At(0,0): %w", err))
		}

		return v, nil
	case 2:
		if dm, ok := m.(*Dense); ok {
			return dm.data[0]*dm.data[3] - dm.data[1]*dm.data[2], nil
		}
		var a, b, c, d float64
		var err error
		if a, err = m.At(0, 0); err != nil {
			return 0, matrixErrorf(opDet, fmt.Errorf("At(0,0): %w", err))
		}
		if b, err = m.At(0, 1); err != nil {
			return 0, matrixErrorf(opDet, fmt.Errorf("At(0,1): %w", err))
		}
		if c, err = m.At(1, 0); err != nil {
			return 0, matrixErrorf(opDet, fmt.Errorf("At(1,0): %w", err))
		}
		if d, err = m.At(1, 1); err != nil {
			return 0, matrixErrorf(opDet, fmt.Errorf("At(1,1): %w", err))
		}

		return a*d - b*c, nil
	}

	// General case: first-row cofactor expansion.
	var (
		det, lead, cof float64
		j              int
		err            error
	)
	for j = 0; j < n; j++ {
		lead, err = m.At(0, j)
		if err != nil {
			return 0, matrixErrorf(opDet, fmt.Errorf("At(0,%d): %w", j, err))
		}
		if lead == 0 {
			continue // zero leading entry contributes nothing
		}
		cof, err = Cofactor(m, 0, j)
		if err != nil {
			return 0, matrixErrorf(opDet, err)
		}
		det += lead * cof
	}

	return det, nil
}
