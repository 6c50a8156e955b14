// SPDX-License-Identifier: MIT
// Package matrix: universal kernels over any Matrix implementation —
// element-wise addition, scalar scaling, transpose, matrix multiplication,
// Hadamard product, rank-1 outer product and Kronecker product. All kernels
// perform strict fail-fast validation, allocate a fresh Dense result, never
// mutate their operands, and keep fixed loop orders for reproducibility.
// A *Dense fast-path operates on the flat backing slices; a generic At/Set
// fallback serves any other Matrix implementation.

package matrix

import "fmt"

// ZeroSum is the initial accumulator value for dot-product style loops.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opScale     = "Scale"
	opDivScalar = "DivScalar"
	opTranspose = "Transpose"
	opMul       = "Mul"
	opHadamard  = "Hadamard"
	opOuter     = "Outer"
	opKron      = "Kron"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so callers still match sentinels with errors.Is. Call only when
// err != nil. Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense.
//
// Contract: a, b non-nil with identical shapes; operands are not mutated.
// Determinism: flat 0..n-1 for *Dense operands; i→j for the generic path.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) {
	// Validate both operands are non-nil and have identical shapes.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	// Allocate the result Dense with the same shape.
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			n := rows * cols
			for idx := 0; idx < n; idx++ { // deterministic 0..n-1
				res.data[idx] = da.data[idx] + db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int       // loop iterators
	var av, bv float64 // element temporaries
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opAdd, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			bv, err = b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opAdd, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, av+bv); err != nil {
				return nil, matrixErrorf(opAdd, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
//
// Contract: m non-nil; the original matrix is never mutated.
// Determinism: flat loop for *Dense; i→j for the generic path.
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	// Validate input non-nil.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Allocate result Dense.
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Fast path: multiply the flat backing slice in one pass.
	if dm, ok := m.(*Dense); ok {
		n := rows * cols
		for idx := 0; idx < n; idx++ {
			res.data[idx] = dm.data[idx] * alpha
		}

		return res, nil
	}

	// Fallback: generic interface loop.
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, v*alpha); err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// DivScalar returns a new matrix whose elements are m[i,j] / alpha.
// Division (rather than multiplication by the reciprocal) keeps results exact
// when elements are integer multiples of alpha — the case for normalized
// correlation diagonals.
//
// Contract: m non-nil; the original matrix is never mutated. A zero or
// non-finite alpha propagates ±Inf/NaN into the result, mirroring Scale;
// callers guarding against that must validate alpha upstream.
// Determinism: flat loop for *Dense; i→j for the generic path.
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func DivScalar(m Matrix, alpha float64) (*Dense, error) {
	// Validate input non-nil.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDivScalar, err)
	}

	// Allocate result Dense.
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opDivScalar, err)
	}

	// Fast path: divide the flat backing slice in one pass.
	if dm, ok := m.(*Dense); ok {
		n := rows * cols
		for idx := 0; idx < n; idx++ {
			res.data[idx] = dm.data[idx] / alpha
		}

		return res, nil
	}

	// Fallback: generic interface loop.
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opDivScalar, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, v/alpha); err != nil {
				return nil, matrixErrorf(opDivScalar, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
//
// Contract: m non-nil; the original matrix is never mutated.
// Determinism: fixed traversal orders independent of data values.
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	// Validate input non-nil.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Allocate result Dense with flipped dimensions.
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int // loop iterators
	// Fast path: data[i*cols+j] → res.data[j*rows+i].
	if dm, ok := m.(*Dense); ok {
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	// Fallback: generic interface loop.
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Contract: A is (r×n), B is (n×c); inner dimensions must agree.
// Determinism: fixed i→k→j order on the fast path (row-major strides, zero
// skip on A[i,k]); i→j→k on the generic fallback.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	// Validate inputs via the canonical validator.
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate result Dense.
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k         int // loop iterators
		av, bv, current float64
	)
	// Fast path for two Dense matrices: row-major i→k→j with flat offsets.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i→j→k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue // skip zero for performance
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv // accumulate product
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Hadamard computes the elementwise product (a ⊙ b) with a fresh Dense result.
//
// Contract: a, b non-nil with identical shapes; operands are not mutated.
// Determinism: flat 0..(r*c−1) on the fast path; i→j on the fallback.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r*c).
func Hadamard(a, b Matrix) (*Dense, error) {
	// Validate both operands are non-nil and have identical shapes.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	// Allocate the result Dense with the same shape.
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	// Fast path: both operands are *Dense → operate on flat slices directly.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			n := rows * cols
			for idx := 0; idx < n; idx++ { // fixed order ensures deterministic output
				res.data[idx] = da.data[idx] * db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: generic interface loop using At/Set.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opHadamard, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			bv, err = b.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opHadamard, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, av*bv); err != nil {
				return nil, matrixErrorf(opHadamard, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Outer computes the rank-1 outer product u·vᵀ as a len(u)×len(v) Dense.
//
// Contract: u, v non-nil and non-empty; inputs are never mutated.
// Determinism: fixed i→j order; result[i,j] = u[i]*v[j].
// Errors: ErrNilMatrix (nil vector), ErrInvalidDimensions (empty vector).
// Complexity: Time O(len(u)*len(v)), Space O(len(u)*len(v)).
func Outer(u, v []float64) (*Dense, error) {
	// Reuse the vector validator against each vector's own length to reject nil.
	if err := ValidateVecLen(u, len(u)); err != nil {
		return nil, matrixErrorf(opOuter, err)
	}
	if err := ValidateVecLen(v, len(v)); err != nil {
		return nil, matrixErrorf(opOuter, err)
	}

	// NewDense rejects empty vectors via ErrInvalidDimensions.
	res, err := NewDense(len(u), len(v))
	if err != nil {
		return nil, matrixErrorf(opOuter, err)
	}

	// Single pass: row i is u[i] * v.
	var i, j, base int
	var ui float64
	for i = 0; i < len(u); i++ {
		ui = u[i]
		base = i * len(v)
		if ui == 0 {
			continue // row stays zero; skip the multiplications
		}
		for j = 0; j < len(v); j++ {
			res.data[base+j] = ui * v[j]
		}
	}

	return res, nil
}

// Kron computes the Kronecker product A ⊗ B as a fresh Dense of shape
// (A.Rows*B.Rows) × (A.Cols*B.Cols): block (i,j) equals A[i,j] * B.
//
// Contract: a, b non-nil; inputs are never mutated.
// Determinism: fixed (i,j) block order, then (p,q) within each block.
// Errors: ErrNilMatrix; allocation errors from NewDense.
// Complexity: Time O(ra*ca*rb*cb), Space O(ra*rb*ca*cb).
func Kron(a, b Matrix) (*Dense, error) {
	// Validate both operands are present.
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opKron, err)
	}

	// Allocate the full block matrix.
	ra, ca := a.Rows(), a.Cols()
	rb, cb := b.Rows(), b.Cols()
	res, err := NewDense(ra*rb, ca*cb)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}

	resCols := ca * cb // row stride of the result
	var (
		i, j, p, q int     // block indices (i,j) and within-block indices (p,q)
		aij, bpq   float64 // element temporaries
		rowBase    int     // flat offset of result row i*rb+p
	)
	for i = 0; i < ra; i++ {
		for j = 0; j < ca; j++ {
			aij, err = a.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opKron, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if aij == 0 {
				continue // zero coefficient leaves the whole block zero
			}
			for p = 0; p < rb; p++ {
				rowBase = (i*rb+p)*resCols + j*cb
				for q = 0; q < cb; q++ {
					bpq, err = b.At(p, q)
					if err != nil {
						return nil, matrixErrorf(opKron, fmt.Errorf("At(%d,%d): %w", p, q, err))
					}
					res.data[rowBase+q] = aij * bpq
				}
			}
		}
	}

	return res, nil
}
