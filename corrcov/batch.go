// SPDX-License-Identifier: MIT

// Package corrcov: per-file batch processing. The correlation structure
// depends only on file geometry, never on the exposure, so it is computed
// exactly once per file and reused for every exposure's covariance.

package corrcov

import "github.com/fringekit/corrprop/matrix"

// ProcessExposures computes one covariance matrix per exposure for a single
// file and observable kind, preserving exposure order.
//
// Stage 1 (Validate): check the declared geometry and, for KindTriangle, that
// the incidence table matches it.
// Stage 2 (Correlate): build the file's correlation structure once —
// identity for KindBaseline; incidence ⊗ I propagated through the identity
// base for KindTriangle — and self-check its symmetry.
// Stage 3 (Assemble): flatten each exposure's uncertainty array and combine
// it with the shared correlation structure.
//
// The incidence argument is ignored for KindBaseline and required for
// KindTriangle. Inputs are never mutated; every returned matrix is freshly
// allocated, so independent files may be processed concurrently.
//
// Errors: ErrInvalidDimension (non-positive geometry), ErrInconsistentGeometry
// (incidence or an exposure's Sigma disagrees with the declared geometry);
// sentinels from the underlying operations propagate unchanged.
// Complexity: Time O(N³) for the one-time propagation plus O(Nexp·N²) for
// assembly, with N the flat channel count.
func ProcessExposures(geom Geometry, kind Kind, incidence [][]float64, exposures []Exposure, opts ...Option) (*CovarianceStack, error) {
	o := gatherOptions(opts...)

	// Validate the declared geometry for the requested kind.
	if err := validateGeometry(geom, kind); err != nil {
		return nil, covErrorf(opProcess, err)
	}

	// Build the correlation structure once per file.
	corr, err := correlationFor(geom, kind, incidence, o)
	if err != nil {
		return nil, covErrorf(opProcess, err)
	}
	// Self-check: a correlation structure must be symmetric. This catches
	// malformed custom inputs before any covariance is assembled.
	if err = matrix.ValidateSymmetric(corr, o.eps); err != nil {
		return nil, covErrorf(opProcess, err)
	}

	// Assemble one covariance per exposure, preserving order.
	n := geom.flatSize(kind)
	stack := &CovarianceStack{
		Kind: kind,
		N:    n,
		Covs: make([]*matrix.Dense, 0, len(exposures)),
	}
	var (
		flat []float64     // reused name only; a fresh slice per exposure
		cov  *matrix.Dense // current exposure's covariance
	)
	for _, exp := range exposures {
		flat, err = flattenSigma(exp.Sigma, geom, kind)
		if err != nil {
			return nil, covErrorf(opProcess, err)
		}
		cov, err = Covariance(corr, flat)
		if err != nil {
			return nil, covErrorf(opProcess, err)
		}
		stack.Covs = append(stack.Covs, cov)
	}

	return stack, nil
}

// validateGeometry checks the declared per-file sizes for the given kind.
// Returns plain sentinels so the facade wraps uniformly.
func validateGeometry(geom Geometry, kind Kind) error {
	if geom.Nwave < 1 || geom.Nbase < 1 {
		return ErrInvalidDimension
	}
	if kind == KindTriangle && geom.Ntria < 1 {
		return ErrInvalidDimension
	}

	return nil
}

// correlationFor builds the file-level correlation structure for one kind.
// KindBaseline: identity over Nwave·Nbase flattened channels.
// KindTriangle: the incidence transform propagated through the identity base,
// normalized by the option override or the structure-derived constant.
func correlationFor(geom Geometry, kind Kind, incidence [][]float64, o Options) (*matrix.Dense, error) {
	// Baseline quantities are independent per channel: identity correlation.
	if kind == KindBaseline {
		return IdentityCorrelation(geom.Nwave * geom.Nbase)
	}

	// The incidence table is file geometry too; it must match the declaration.
	if len(incidence) != geom.Ntria {
		return nil, ErrInconsistentGeometry
	}
	for _, row := range incidence {
		if len(row) != geom.Nbase {
			return nil, ErrInconsistentGeometry
		}
	}

	// T = incidence ⊗ I_Nwave.
	trafo, err := TriangleTransform(geom.Nwave, incidence)
	if err != nil {
		return nil, err
	}
	// Elementary channels are independent: identity base correlation.
	base, err := IdentityCorrelation(geom.Nwave * geom.Nbase)
	if err != nil {
		return nil, err
	}
	// Resolve the normalization: explicit override wins, otherwise derive it
	// from the incidence structure.
	norm := o.norm
	if norm == 0 {
		if norm, err = DeriveNormalization(incidence); err != nil {
			return nil, err
		}
	}

	return Propagate(base, trafo, norm)
}

// flattenSigma validates one exposure's uncertainty array against the file
// geometry and flattens it row-major: measurement channel l occupies indices
// [l·Nwave, (l+1)·Nwave).
// Errors: ErrInconsistentGeometry on any shape disagreement.
// Complexity: Time O(M·Nwave), Space O(M·Nwave).
func flattenSigma(sigma [][]float64, geom Geometry, kind Kind) ([]float64, error) {
	// Expected measurement-channel count for this kind.
	m := geom.Nbase
	if kind == KindTriangle {
		m = geom.Ntria
	}
	if len(sigma) != m {
		return nil, ErrInconsistentGeometry
	}

	// Copy row by row into the flat layout, validating each row's length.
	flat := make([]float64, 0, m*geom.Nwave)
	for _, row := range sigma {
		if len(row) != geom.Nwave {
			return nil, ErrInconsistentGeometry
		}
		flat = append(flat, row...)
	}

	return flat, nil
}
