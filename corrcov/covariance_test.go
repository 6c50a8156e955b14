// SPDX-License-Identifier: MIT

package corrcov_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fringekit/corrprop/corrcov"
)

func TestCovarianceDiagonalIsSquaredSigma(t *testing.T) {
	t.Parallel()

	corr, err := corrcov.IdentityCorrelation(4)
	require.NoError(t, err)

	sigma := []float64{0.1, 0.2, 0.3, 0.4}
	cov, err := corrcov.Covariance(corr, sigma)
	require.NoError(t, err)

	wantDiag := []float64{0.01, 0.04, 0.09, 0.16}
	for i := 0; i < 4; i++ {
		got := mustAt(t, cov, i, i)
		require.InDelta(t, wantDiag[i], got, epsTight, "diag[%d]", i)
		for j := 0; j < 4; j++ {
			if j == i {
				continue
			}
			require.Zero(t, mustAt(t, cov, i, j), "off-diag[%d][%d]", i, j)
		}
	}
}

func TestCovarianceScalesCorrelationEntrywise(t *testing.T) {
	t.Parallel()

	corr := mustFromRows(t, [][]float64{
		{1, 0.5, 0},
		{0.5, 1, -0.25},
		{0, -0.25, 1},
	})
	sigma := []float64{2, 3, 4}

	cov, err := corrcov.Covariance(corr, sigma)
	require.NoError(t, err)

	// cov[i][j] = corr[i][j] * sigma[i] * sigma[j]
	want := mustFromRows(t, [][]float64{
		{4, 3, 0},
		{3, 9, -3},
		{0, -3, 16},
	})
	requireClose(t, cov, want, epsTight)
}

func TestCovariancePreservesSymmetry(t *testing.T) {
	t.Parallel()

	corr := mustFromRows(t, [][]float64{
		{1, 1.0 / 3.0, 0},
		{1.0 / 3.0, 1, 1.0 / 3.0},
		{0, 1.0 / 3.0, 1},
	})
	cov, err := corrcov.Covariance(corr, []float64{0.7, 1.1, 0.05})
	require.NoError(t, err)
	requireSymmetric(t, cov, epsTight)
}

func TestCovarianceShapeMismatch(t *testing.T) {
	t.Parallel()

	corr, err := corrcov.IdentityCorrelation(4)
	require.NoError(t, err)

	_, err = corrcov.Covariance(corr, []float64{0.1, 0.2, 0.3})
	require.ErrorIs(t, err, corrcov.ErrShapeMismatch)

	rect := mustFromRows(t, [][]float64{{1, 0}})
	_, err = corrcov.Covariance(rect, []float64{0.1, 0.2})
	require.ErrorIs(t, err, corrcov.ErrShapeMismatch)

	_, err = corrcov.Covariance(nil, []float64{0.1})
	require.Error(t, err)
}
