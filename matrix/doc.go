// Package matrix provides the dense linear-algebra primitives used by the
// correlation-propagation engine.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with strict bounds checking and
//     deep Clone for immutability guarantees in computation pipelines.
//   - Deterministic kernels (Add, Scale, DivScalar, Transpose, Mul,
//     Hadamard, Outer, Kron) that allocate fresh results and never mutate
//     their operands.
//   - Centralized validators and package-level sentinel errors so every
//     shape violation fails fast and matches via errors.Is.
//
// Dense storage is best for the small, fully materialized matrices of this
// domain (flat channel counts in the tens to low hundreds), where O(n²)
// memory and cache-friendly flat loops beat any sparse representation.
//
// See the examples in corrcov for end-to-end usage patterns.
package matrix
