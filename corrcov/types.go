// SPDX-License-Identifier: MIT

// Package corrcov: domain types shared by the correlation-propagation engine.
// This file intentionally contains ONLY domain-facing types; errors and
// options live in dedicated files (errors.go, options.go) per the global
// conventions.

package corrcov

import "github.com/fringekit/corrprop/matrix"

// Kind selects the observable family processed for one file: elementary
// baseline quantities or derived closure-triangle quantities.
type Kind int

const (
	// KindBaseline processes elementary per-baseline quantities, assumed
	// statistically independent across channels (identity correlation).
	KindBaseline Kind = iota

	// KindTriangle processes derived closure-triangle quantities, each a fixed
	// linear combination of baseline quantities (propagated correlation).
	KindTriangle
)

// Extension labels under which external writers attach covariance stacks.
const (
	// LabelBaseline names the squared-visibility covariance extension.
	LabelBaseline = "VIS2COV"

	// LabelTriangle names the closure-phase covariance extension.
	LabelTriangle = "T3COV"
)

// String returns a stable human-readable name for the observable kind.
func (k Kind) String() string {
	switch k {
	case KindBaseline:
		return "baseline"
	case KindTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// Label returns the output extension label conventionally used for this kind.
func (k Kind) Label() string {
	if k == KindTriangle {
		return LabelTriangle
	}

	return LabelBaseline
}

// Geometry declares the per-file measurement layout. It is fixed for every
// exposure in a file: Nwave spectral samples, Nbase elementary baselines and
// Ntria closure triangles. Ntria is ignored for KindBaseline processing.
type Geometry struct {
	Nwave int // spectral samples per measurement channel
	Nbase int // elementary baseline channels
	Ntria int // derived triangle channels
}

// flatSize returns the flattened channel count for the given kind
// (Nwave*Nbase or Nwave*Ntria). Geometry validation is the caller's job.
func (g Geometry) flatSize(kind Kind) int {
	if kind == KindTriangle {
		return g.Nwave * g.Ntria
	}

	return g.Nwave * g.Nbase
}

// Exposure carries one observation's per-channel one-sigma uncertainties.
// Sigma has one row per measurement channel (Nbase or Ntria, depending on the
// observable kind) and one column per spectral sample, mirroring the layout
// instrument loaders produce. Exposures are read-only: the engine never
// mutates them.
type Exposure struct {
	Sigma [][]float64 // shape (M, Nwave); flattened row-major during assembly
}

// CovarianceStack is the ordered sequence of per-exposure covariance
// matrices computed for one file and one observable kind. Covs preserves
// exposure order; every matrix is N×N with N = Nwave*Nbase or Nwave*Ntria.
type CovarianceStack struct {
	Kind Kind            // observable family this stack describes
	N    int             // flat channel count (side length of each matrix)
	Covs []*matrix.Dense // one covariance matrix per exposure, in order
}

// Len returns the number of exposures in the stack.
func (s *CovarianceStack) Len() int {
	return len(s.Covs)
}

// Label returns the extension label external writers attach this stack under.
func (s *CovarianceStack) Label() string {
	return s.Kind.Label()
}

// Raw returns the stack as flat row-major matrices, one []float64 of length
// N*N per exposure, for writers that persist plain numeric blocks.
// Complexity: O(len(Covs) * N²).
func (s *CovarianceStack) Raw() [][]float64 {
	out := make([][]float64, len(s.Covs))
	for i, cov := range s.Covs {
		out[i] = cov.Raw()
	}

	return out
}
