// SPDX-License-Identifier: MIT

package corrcov_test

import (
	"errors"
	"testing"

	"github.com/fringekit/corrprop/corrcov"
)

func TestIdentityCorrelationIsIdentity(t *testing.T) {
	t.Parallel()

	// Property: M[i][j] = 1 iff i = j, else 0, for a spread of sizes.
	for _, n := range []int{1, 2, 5, 12} {
		m, err := corrcov.IdentityCorrelation(n)
		if err != nil {
			t.Fatalf("IdentityCorrelation(%d): %v", n, err)
		}
		if m.Rows() != n || m.Cols() != n {
			t.Fatalf("shape: got %dx%d, want %dx%d", m.Rows(), m.Cols(), n, n)
		}
		var i, j int
		var want float64
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				want = 0.0
				if i == j {
					want = 1.0
				}
				if v := mustAt(t, m, i, j); v != want {
					t.Fatalf("n=%d: M[%d,%d] = %g, want %g", n, i, j, v, want)
				}
			}
		}
	}
}

func TestIdentityCorrelationInvalidDimension(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, -1, -7} {
		if _, err := corrcov.IdentityCorrelation(n); !errors.Is(err, corrcov.ErrInvalidDimension) {
			t.Fatalf("IdentityCorrelation(%d): want ErrInvalidDimension, got %v", n, err)
		}
	}
}
