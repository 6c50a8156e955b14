// SPDX-License-Identifier: MIT
// Package matrix — public constructor facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common constructions.
//   - Avoid any logic duplication — each facade delegates to NewDense.
//   - Keep function names explicit and intention-revealing.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c) zero-init by the runtime.
//
// Note: Returns (*Dense, error) to surface ErrInvalidDimensions.
func NewZeros(rows, cols int) (*Dense, error) {
	// Delegate directly to the strict constructor (single allocation).
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n²) zeroing (constructor) + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	// Allocate an n×n zero matrix via the constructor.
	id, err := NewDense(n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal deterministically in a single loop.
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1.0
	}

	return id, nil
}

// NewFromRows builds a Dense from a rectangular [][]float64.
// Stage 1 (Validate): at least one row, at least one column, all rows equal length.
// Stage 2 (Execute): copy rows into flat row-major storage.
// Errors: ErrInvalidDimensions (empty input), ErrDimensionMismatch (ragged rows).
// Complexity: O(r*c) time and memory.
func NewFromRows(rows [][]float64) (*Dense, error) {
	// Validate outer dimension.
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf("NewFromRows", ErrInvalidDimensions)
	}
	cols := len(rows[0])
	// Validate rectangularity before any allocation.
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, matrixErrorf("NewFromRows", ErrDimensionMismatch)
		}
	}

	// Allocate and fill row by row.
	res, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, matrixErrorf("NewFromRows", err)
	}
	for i := range rows {
		copy(res.data[i*cols:(i+1)*cols], rows[i])
	}

	return res, nil
}
