// SPDX-License-Identifier: MIT

package corrcov

import "github.com/fringekit/corrprop/matrix"

// IdentityCorrelation returns the n×n identity correlation matrix for n
// flattened channels. It encodes the modeling assumption that elementary
// measurements at different spectral channels or different baselines are
// statistically independent: unit self-correlation on the diagonal, zero
// everywhere else.
//
// Contract: n ≥ 1.
// Determinism: fixed diagonal loop; output depends only on n.
// Errors: ErrInvalidDimension when n < 1.
// Complexity: Time O(n²) (zero-init), Space O(n²).
func IdentityCorrelation(n int) (*matrix.Dense, error) {
	// Validate the flat channel count before any allocation.
	if n < 1 {
		return nil, covErrorf(opIdentity, ErrInvalidDimension)
	}

	// Delegate to the matrix constructor; n >= 1 makes failure impossible here.
	id, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, covErrorf(opIdentity, err)
	}

	return id, nil
}
