// Package corrprop augments per-exposure interferometric measurements with
// covariance matrices describing the statistical correlations among their
// spectral-channel × baseline and spectral-channel × closure-triangle
// channels.
//
// 🚀 What is corrprop?
//
//	A small, deterministic library that brings together:
//		• Dense primitives: row-major float64 matrices with strict validation
//		• Correlation models: identity structure for independent channels
//		• Linear propagation: C' = (T·C·Tᵀ)/norm through a fixed block transform
//		• Covariance assembly: correlation ⊙ outer(σ, σ) per exposure
//		• Batch processing: one correlation structure per file, reused across
//		  every exposure in that file
//
// ✨ Why choose corrprop?
//
//   - Predictable – fixed loop orders, no global state, reproducible output
//   - Fail-fast – sentinel errors for every shape or dimension violation
//   - Pure Go – no cgo, no I/O; operates purely on numeric arrays
//   - Composable – the caller owns file parsing and persistence; corrprop
//     owns only the correlation→covariance mathematics
//
// Everything is organized under two subpackages:
//
//	matrix/  — Dense storage, validators and linear-algebra kernels
//	corrcov/ — correlation structures, propagation and per-exposure covariance
//
// A typical round trip: parse an instrument file externally, hand its
// geometry, incidence coefficients and per-exposure uncertainty arrays to
// corrcov.ProcessExposures, and attach the returned stack to the output file
// under the matching extension label (corrcov.LabelBaseline / LabelTriangle).
//
//	go get github.com/fringekit/corrprop
package corrprop
