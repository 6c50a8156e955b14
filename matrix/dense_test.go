// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense storage and constructors.

package matrix_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fringekit/corrprop/matrix"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{3, 3},
		{2, 5},
		{6, 6},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			// immediately after creation all elements should be 0
			var i, j int // loop iterators
			for i = 0; i < tc.rows; i++ {
				for j = 0; j < tc.cols; j++ {
					if v := MustAt(t, m, i, j); v != 0.0 {
						t.Fatalf("element [%d,%d] of a new Dense(%dx%d) must be 0", i, j, tc.rows, tc.cols)
					}
				}
			}
		})
	}
}

func TestNewDenseInvalidDimensions(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ rows, cols int }{
		{0, 3},
		{3, 0},
		{-1, 3},
		{0, 0},
	} {
		if _, err := matrix.NewDense(tc.rows, tc.cols); !errors.Is(err, matrix.ErrInvalidDimensions) {
			t.Fatalf("NewDense(%d,%d): want ErrInvalidDimensions, got %v", tc.rows, tc.cols, err)
		}
	}
}

func TestDenseAtSetBounds(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 3)
	MustSet(t, m, 1, 2, 4.5)
	if v := MustAt(t, m, 1, 2); v != 4.5 {
		t.Fatalf("round-trip mismatch: got %g", v)
	}

	// Out-of-range reads and writes must surface the sentinel, never panic.
	if _, err := m.At(2, 0); !errors.Is(err, matrix.ErrIndexOutOfBounds) {
		t.Fatalf("At(2,0): want ErrIndexOutOfBounds, got %v", err)
	}
	if _, err := m.At(0, -1); !errors.Is(err, matrix.ErrIndexOutOfBounds) {
		t.Fatalf("At(0,-1): want ErrIndexOutOfBounds, got %v", err)
	}
	if err := m.Set(-1, 0, 1); !errors.Is(err, matrix.ErrIndexOutOfBounds) {
		t.Fatalf("Set(-1,0): want ErrIndexOutOfBounds, got %v", err)
	}
}

func TestDenseCloneIndependence(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	c := m.Clone()
	// mutate the original; the clone must not observe the write
	MustSet(t, m, 0, 0, 99)
	if v := MustAt(t, c, 0, 0); v != 1 {
		t.Fatalf("clone observed mutation of original: got %g", v)
	}
}

func TestDenseRawIsACopy(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	raw := m.Raw()
	raw[0] = 42
	if v := MustAt(t, m, 0, 0); v != 1 {
		t.Fatalf("Raw must copy, not alias: got %g", v)
	}
}

func TestNewIdentity(t *testing.T) {
	t.Parallel()

	const n = 4
	id, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity: %v", err)
	}
	var i, j int
	var want float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			want = 0.0
			if i == j {
				want = 1.0
			}
			if v := MustAt(t, id, i, j); v != want {
				t.Fatalf("I[%d,%d] = %g, want %g", i, j, v, want)
			}
		}
	}

	if _, err = matrix.NewIdentity(0); !errors.Is(err, matrix.ErrInvalidDimensions) {
		t.Fatalf("NewIdentity(0): want ErrInvalidDimensions, got %v", err)
	}
}

func TestNewFromRows(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	if err != nil {
		t.Fatalf("NewFromRows: %v", err)
	}
	if m.Rows() != 2 || m.Cols() != 3 {
		t.Fatalf("shape: got %dx%d", m.Rows(), m.Cols())
	}
	if v := MustAt(t, m, 1, 2); v != 6 {
		t.Fatalf("element [1,2]: got %g", v)
	}

	// ragged input is a dimension mismatch
	if _, err = matrix.NewFromRows([][]float64{{1, 2}, {3}}); !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("ragged: want ErrDimensionMismatch, got %v", err)
	}
	// empty input is invalid dimensions
	if _, err = matrix.NewFromRows(nil); !errors.Is(err, matrix.ErrInvalidDimensions) {
		t.Fatalf("empty: want ErrInvalidDimensions, got %v", err)
	}
}
