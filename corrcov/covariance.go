// SPDX-License-Identifier: MIT

// Package corrcov: per-exposure covariance assembly. A correlation structure
// describes only the SHAPE of statistical dependence; combining it with one
// exposure's uncertainty vector yields that exposure's concrete covariance.

package corrcov

import "github.com/fringekit/corrprop/matrix"

// Covariance combines a correlation matrix C with a flattened uncertainty
// vector u into Cov = C ⊙ (u·uᵀ): the Hadamard product of the correlation
// with the outer product of the uncertainties. The result is symmetric
// whenever C is, and its diagonal equals u[i]² exactly regardless of C's
// off-diagonal structure (C[i,i] is 1 by construction upstream). Neither
// input is mutated.
//
// Contract: corr square of size N; len(sigma) == N.
// Determinism: fixed kernel loop orders.
// Errors: ErrShapeMismatch (non-square corr, or len(sigma) != N); matrix
// sentinels propagate from the underlying kernels.
// Complexity: Time O(N²), Space O(N²).
func Covariance(corr matrix.Matrix, sigma []float64) (*matrix.Dense, error) {
	// Validate the correlation structure.
	if err := matrix.ValidateNotNil(corr); err != nil {
		return nil, covErrorf(opCovariance, err)
	}
	if corr.Rows() != corr.Cols() {
		return nil, covErrorf(opCovariance, ErrShapeMismatch)
	}
	// The uncertainty vector must cover every flattened channel.
	if err := matrix.ValidateVecLen(sigma, corr.Rows()); err != nil {
		return nil, covErrorf(opCovariance, ErrShapeMismatch)
	}

	// Outer product u·uᵀ carries the absolute noise magnitudes.
	outer, err := matrix.Outer(sigma, sigma)
	if err != nil {
		return nil, covErrorf(opCovariance, err)
	}
	// Hadamard: shape of dependence × magnitude of noise.
	cov, err := matrix.Hadamard(corr, outer)
	if err != nil {
		return nil, covErrorf(opCovariance, err)
	}

	return cov, nil
}
