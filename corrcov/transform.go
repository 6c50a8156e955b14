// SPDX-License-Identifier: MIT

// Package corrcov: construction of the baseline→triangle linear transform.
// A closure triangle's quantity at a given spectral channel is a fixed linear
// combination of the corresponding baselines' quantities at the SAME channel,
// and only that channel — cross-channel contributions are never produced.

package corrcov

import "github.com/fringekit/corrprop/matrix"

// TriangleTransform builds the transform T of shape
// (Nwave·Ntria) × (Nwave·Nbase) from the per-file incidence table: for
// triangle k and baseline l, the Nwave×Nwave sub-block at (k, l) equals
// incidence[k][l] times the identity. Equivalently T = incidence ⊗ I_Nwave.
//
// Contract: nwave ≥ 1; incidence rectangular with ≥ 1 row and ≥ 1 column.
// Determinism: fixed block order via the Kron kernel.
// Errors: ErrInvalidDimension (nwave < 1, or empty incidence),
// ErrShapeMismatch (ragged incidence rows).
// Complexity: Time O(Ntria·Nbase·Nwave²), Space O(Nwave²·Ntria·Nbase).
func TriangleTransform(nwave int, incidence [][]float64) (*matrix.Dense, error) {
	// Validate the spectral grid length first.
	if nwave < 1 {
		return nil, covErrorf(opTransform, ErrInvalidDimension)
	}
	// Validate the incidence table shape.
	t3mat, err := incidenceMatrix(incidence)
	if err != nil {
		return nil, covErrorf(opTransform, err)
	}

	// Per-channel identity block: same coefficients apply at every wavelength.
	block, err := matrix.NewIdentity(nwave)
	if err != nil {
		return nil, covErrorf(opTransform, err)
	}

	// T = incidence ⊗ I_nwave.
	trafo, err := matrix.Kron(t3mat, block)
	if err != nil {
		return nil, covErrorf(opTransform, err)
	}

	return trafo, nil
}

// DeriveNormalization resolves the propagation normalization constant from
// the incidence structure: the count of nonzero coefficients per triangle
// row, so that a triangle combining k unit-magnitude baselines keeps a unit
// self-correlation after propagation. When the rows disagree on that count
// (mixed closure orders in one file) the literal three-baseline constant
// DefaultClosureNorm is kept instead.
//
// Contract: incidence rectangular with ≥ 1 row and ≥ 1 column.
// Errors: ErrInvalidDimension (empty), ErrShapeMismatch (ragged rows).
// Complexity: Time O(Ntria·Nbase), Space O(1).
func DeriveNormalization(incidence [][]float64) (float64, error) {
	// Shape validation shares the canonical helper with TriangleTransform.
	if _, err := incidenceMatrix(incidence); err != nil {
		return 0, covErrorf(opDerive, err)
	}

	var (
		row     []float64 // current triangle row
		count   int       // nonzero coefficients in the current row
		uniform = -1      // agreed per-row count; -1 until the first row is seen
	)
	for _, row = range incidence {
		count = 0
		for _, c := range row {
			if c != 0 {
				count++
			}
		}
		if uniform == -1 {
			uniform = count
			continue
		}
		if count != uniform {
			// Mixed closure orders: keep the observed literal constant.
			return DefaultClosureNorm, nil
		}
	}
	// A degenerate all-zero table normalizes nothing; keep the default.
	if uniform < 1 {
		return DefaultClosureNorm, nil
	}

	return float64(uniform), nil
}

// incidenceMatrix validates the raw incidence table (non-empty, rectangular)
// and materializes it as a Dense. Returns plain sentinels so call sites can
// wrap uniformly.
func incidenceMatrix(incidence [][]float64) (*matrix.Dense, error) {
	// An incidence table needs at least one triangle and one baseline.
	if len(incidence) == 0 || len(incidence[0]) == 0 {
		return nil, ErrInvalidDimension
	}
	// Ragged rows mean the input is not a 2-D table.
	nbase := len(incidence[0])
	for i := 1; i < len(incidence); i++ {
		if len(incidence[i]) != nbase {
			return nil, ErrShapeMismatch
		}
	}

	// Rectangularity re-checked by NewFromRows; dimension errors cannot occur here.
	return matrix.NewFromRows(incidence)
}
