// Package glint is the math and raster foundation of a renderer in
// progress — homogeneous tuples, dense matrix algebra and a pixel
// canvas with a byte-exact PPM serializer.
//
// 🚀 What is glint?
//
//	A small, deterministic library that brings together:
//		• Tuples: 4-component points & vectors with dot/cross/normalize
//		• Colors: linear RGB with clamp-on-output 8-bit conversion
//		• Matrices: multiplication, transpose, recursive determinants
//		  via cofactor expansion (minors, submatrices, sign rule)
//		• Canvas: bounds-checked pixel grid + PPM (P3) / PNG output
//		• Projectile: a gravity+wind trajectory driver for demos
//
// ✨ Why choose glint?
//
//   - Value semantics – tuples and colors are immutable pass-by-value structs
//   - Predictable numerics – one tolerance policy (epsilon + ULPs) everywhere
//   - Fail-fast contracts – sentinel errors, no silent coercion of bad shapes
//   - Byte-exact artifacts – PPM output is reproducible, golden-file friendly
//
// Under the hood, everything is organized under five subpackages:
//
//	scalar/     — approximate float64 equality (epsilon + ULP tolerance)
//	tuple/      — Tuple & Color value algebra
//	matrix/     — dense R×C matrices & the determinant/cofactor family
//	canvas/     — Color grid, PPM serialization, image bridge
//	projectile/ — tick-based trajectory simulation onto a canvas
//
// Quick sketch of the data flow:
//
//	tuple ──▶ matrix ──▶ pixel coords ──▶ canvas ──▶ PPM bytes
//
// Matrix inversion is intentionally out of scope for now; the cofactor
// machinery it depends on lives here and is covered by exact unit tests.
//
//	go get github.com/glintlab/glint
package glint
