// SPDX-License-Identifier: MIT
// Package corrcov_test contains test helpers.

package corrcov_test

import (
	"math"
	"testing"

	"github.com/fringekit/corrprop/matrix"
)

const epsTight = 1e-12

// hide WRAPS any Matrix to hide its concrete type from type assertions,
// forcing the generic (non-*Dense) paths in the underlying kernels.
type hide struct{ matrix.Matrix }

// mustAt reads m(i,j) or fails the test.
func mustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// mustFromRows builds a Dense from row data or fails the test.
func mustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		t.Fatalf("NewFromRows: %v", err)
	}

	return m
}

// requireClose asserts |a[i,j]-b[i,j]| ≤ tol element-wise with equal shapes.
func requireClose(t *testing.T, a, b matrix.Matrix, tol float64) {
	t.Helper()
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		t.Fatalf("shape mismatch: %dx%d vs %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
	var i, j int
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, bv := mustAt(t, a, i, j), mustAt(t, b, i, j)
			if math.Abs(av-bv) > tol {
				t.Fatalf("element [%d,%d]: %g vs %g (tol %g)", i, j, av, bv, tol)
			}
		}
	}
}

// requireSymmetric asserts ||M - Mᵀ||_max ≤ tol.
func requireSymmetric(t *testing.T, m matrix.Matrix, tol float64) {
	t.Helper()
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = i + 1; j < m.Cols(); j++ {
			d := math.Abs(mustAt(t, m, i, j) - mustAt(t, m, j, i))
			if d > tol {
				t.Fatalf("asymmetry at [%d,%d]: |Δ|=%g (tol %g)", i, j, d, tol)
			}
		}
	}
}
