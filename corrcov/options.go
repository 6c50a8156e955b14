// SPDX-License-Identifier: MIT

// Package corrcov: functional configuration for the propagation engine.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package corrcov

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultClosureNorm is the normalization constant for three-baseline
	// closure triangles: each derived channel combines three elementary
	// channels, so the propagated diagonal equals one after dividing by it.
	// Used as the fallback when DeriveNormalization finds a non-uniform
	// incidence structure.
	DefaultClosureNorm = 3.0

	// DefaultEpsilon is the non-negative tolerance used by the propagated
	// correlation's symmetry self-check.
	DefaultEpsilon = 1e-9
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNormalizationInvalid = "corrcov: WithNormalization: norm must be finite and > 0"
	panicEpsilonInvalid       = "corrcov: WithEpsilon: eps must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and resolve them via gatherOptions.
type Options struct {
	norm float64 // normalization override; 0 means "derive from incidence"
	eps  float64 // symmetry self-check tolerance; DefaultEpsilon
}

// ---------- Constructors (WithX) ----------

// WithNormalization overrides the normalization constant applied during
// correlation propagation. Use it only when the incidence structure's derived
// value (DeriveNormalization) does not match the intended statistical model.
// Panics with a stable message when norm is non-finite or <= 0.
// Complexity: O(1).
func WithNormalization(norm float64) Option {
	if math.IsNaN(norm) || math.IsInf(norm, 0) || norm <= 0 {
		panic(panicNormalizationInvalid)
	}

	// Assign validated normalization
	return func(o *Options) { o.norm = norm }
}

// WithEpsilon sets the tolerance used by the propagated correlation's
// symmetry self-check. Panics when eps is non-finite or negative.
// Complexity: O(1).
//
// Note: larger eps relaxes the self-check; the default suits double-precision
// products of unit-magnitude coefficients.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	// Assign validated epsilon
	return func(o *Options) { o.eps = eps }
}

// ---------- Option Resolution ----------

// gatherOptions applies user-provided Option setters on top of defaults.
// Last-writer-wins semantics; stable for a given sequence of setters.
// Complexity: O(k) for k = len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		norm: 0, // derive from the incidence structure unless overridden
		eps:  DefaultEpsilon,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
