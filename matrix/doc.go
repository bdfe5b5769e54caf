// Package matrix provides dense linear-algebra primitives for the
// renderer: construction, approximate equality, multiplication
// (matrix×matrix and matrix×tuple), transpose, and the recursive
// determinant family (submatrix, minor, cofactor, Laplace expansion).
//
// The package follows one contract everywhere:
//
//   - matrices are immutable through the public API: every kernel
//     allocates a fresh Dense result and never mutates its operands
//   - shape violations are caller bugs and fail fast with sentinel
//     errors (errors.Is-matchable), never silent coercion
//   - element equality uses the module-wide scalar tolerance
//
// Determinants use plain Laplace expansion along the first row, bottoming
// out at the 2×2 base case. That is exponential in N and intentional: the
// operating range is homogeneous transforms, 2×2 through 4×4.
//
// Matrix inversion is not implemented here yet; it will sit on top of the
// cofactor machinery once needed.
package matrix
