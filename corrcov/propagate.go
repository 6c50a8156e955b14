// SPDX-License-Identifier: MIT

// Package corrcov: linear propagation of a correlation structure through a
// fixed transform. This is standard error propagation (Cov(Ax) = A·Cov(x)·Aᵀ)
// applied to a correlation rather than covariance input, followed by a fixed
// normalization so derived channels keep a unit self-correlation.

package corrcov

import (
	"fmt"
	"math"

	"github.com/fringekit/corrprop/matrix"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opIdentity   = "IdentityCorrelation"
	opTransform  = "TriangleTransform"
	opDerive     = "DeriveNormalization"
	opPropagate  = "Propagate"
	opCovariance = "Covariance"
	opProcess    = "ProcessExposures"
)

// covErrorf wraps err with an operation tag, preserving the original error
// via %w so callers still match sentinels with errors.Is. Call only when
// err != nil. Complexity: O(1).
func covErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Propagate computes the induced correlation of a derived quantity:
// C_derived = (T · C_base · Tᵀ) / norm, where T maps the elementary channel
// space into the derived channel space and norm is the number of elementary
// channels contributing to each derived channel. Neither input is mutated;
// a fresh matrix is returned.
//
// Contract: base square; transform.Cols() == base.Rows(); norm finite, > 0.
// Determinism: fixed kernel loop orders; output depends only on inputs.
// Errors: ErrShapeMismatch (column/dimension disagreement, non-square base),
// ErrInvalidDimension (norm <= 0 or non-finite); matrix sentinels propagate
// from the underlying kernels.
// Complexity: Time O(d·n²+d²·n) for T of shape d×n, Space O(d²).
func Propagate(base, transform matrix.Matrix, norm float64) (*matrix.Dense, error) {
	// Validate operands exist.
	if err := matrix.ValidateNotNil(base); err != nil {
		return nil, covErrorf(opPropagate, err)
	}
	if err := matrix.ValidateNotNil(transform); err != nil {
		return nil, covErrorf(opPropagate, err)
	}
	// A correlation structure is square by definition.
	if base.Rows() != base.Cols() {
		return nil, covErrorf(opPropagate, ErrShapeMismatch)
	}
	// The transform's columns must span the base correlation's space.
	if transform.Cols() != base.Rows() {
		return nil, covErrorf(opPropagate, ErrShapeMismatch)
	}
	// The normalization must be a usable positive constant.
	if math.IsNaN(norm) || math.IsInf(norm, 0) || norm <= 0 {
		return nil, covErrorf(opPropagate, ErrInvalidDimension)
	}

	// Tᵀ, then C·Tᵀ, then T·(C·Tᵀ). Each kernel allocates fresh storage, so
	// base and transform stay untouched.
	tT, err := matrix.Transpose(transform)
	if err != nil {
		return nil, covErrorf(opPropagate, err)
	}
	right, err := matrix.Mul(base, tT)
	if err != nil {
		return nil, covErrorf(opPropagate, err)
	}
	prod, err := matrix.Mul(transform, right)
	if err != nil {
		return nil, covErrorf(opPropagate, err)
	}

	// Normalize by division (not reciprocal multiplication) so a derived
	// channel combining exactly `norm` unit coefficients lands on 1 exactly.
	derived, err := matrix.DivScalar(prod, norm)
	if err != nil {
		return nil, covErrorf(opPropagate, err)
	}

	return derived, nil
}
