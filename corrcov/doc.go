// Package corrcov implements the correlation-propagation engine: it models
// the correlation structure induced when a derived quantity (a closure
// triangle) is a fixed linear combination of elementary quantities
// (baselines) assumed independent per spectral channel, and combines that
// structure with each exposure's uncertainty vector into a concrete
// covariance matrix.
//
// The corrcov package provides:
//
//   - IdentityCorrelation — the baseline correlation structure for quantities
//     independent across both channel and measurement index.
//   - TriangleTransform — the block transform T = incidence ⊗ I_Nwave from
//     baseline-channel space to triangle-channel space.
//   - Propagate — linear error propagation (T·C·Tᵀ)/norm of a correlation
//     structure through a transform.
//   - Covariance — per-exposure assembly C ⊙ (σ·σᵀ); the diagonal is always
//     the exposure's variance σ[i]², whatever the correlation model.
//   - ProcessExposures — per-file batching: the correlation structure is
//     computed once (it depends only on file geometry) and reused across
//     every exposure in the file.
//
// All operations are synchronous, pure functions over immutable inputs:
// nothing mutates its arguments, each call returns freshly allocated
// storage, and independent files may be processed fully in parallel.
//
// Error handling is fail-fast: every shape or dimension violation surfaces
// one of the package sentinels (ErrInvalidDimension, ErrShapeMismatch,
// ErrInconsistentGeometry) immediately, aborts the file/observable being
// processed, and is never retried or silently corrected.
package corrcov
