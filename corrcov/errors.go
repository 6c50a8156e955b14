// SPDX-License-Identifier: MIT
// Package corrcov: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// corrcov package. All operations MUST return these sentinels and tests MUST
// check them via errors.Is. Every violation is a programming/data-contract
// error, surfaced to the caller immediately and never silently corrected.

package corrcov

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "corrcov: ..." for consistency and to allow
// easy grepping across logs. If context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary — callers will still use
// errors.Is to match.

var (
	// ErrInvalidDimension is returned when a declared size (wavelength count,
	// baseline count, triangle count, flat channel count, normalization) is
	// zero or negative.
	ErrInvalidDimension = errors.New("corrcov: dimension must be > 0")

	// ErrShapeMismatch indicates that two arrays which must align in a given
	// axis do not: a ragged incidence table, a transform whose column count
	// disagrees with the base correlation, or an uncertainty vector whose
	// length disagrees with the correlation dimension.
	ErrShapeMismatch = errors.New("corrcov: array shapes do not align")

	// ErrInconsistentGeometry indicates that an exposure's data (or the
	// incidence table) disagrees with the file-level declared geometry.
	ErrInconsistentGeometry = errors.New("corrcov: exposure data disagrees with file geometry")
)
