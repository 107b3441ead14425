// Package collocation estimates the error variance and error covariance of
// three or more measurement systems that observe the same unknown signal,
// without access to that signal.
//
// 🚀 What is Triple / Extended Collocation?
//
//	Each system i observes  xᵢ = αᵢ + βᵢ·t + εᵢ  (affine error model).
//	Under stationarity, error-signal orthogonality and mutually independent
//	errors, the covariance matrix of the observations determines every
//	error variance in closed form, even though t is never observed.
//
//	  • Triple Collocation (TC): exactly 3 independent systems,
//	      σ²_εi = σii − σij·σik/σjk   (cyclic over i, j, k)
//	  • Extended Collocation (EC): M ≥ 3 systems, some of which may share
//	    correlated errors, given at least 3 mutually independent groups,
//	      σ_εi,εj = σij − σik·σjl/σkl
//	    with helper systems k, l chosen from groups independent of i, j and
//	    of each other (see SelectHelpers for the deterministic rule).
//
// ✨ Key features:
//   - BuildCovariance: unbiased (N−1) sample covariance of N×M samples
//   - TripleCollocation / TripleCollocationCov: 3-system error variances
//   - TripleCollocationStats: sensitivities, SNR (dB), squared correlation with truth
//   - ExtendedCollocation / ExtendedCollocationCov: full M×M error covariance
//   - ExtendedCollocationBatched: per-pixel EC over (N, M, extra...) arrays
//     on a bounded worker pool, slice-for-slice identical to the scalar call
//   - Classify / NegativeIndices / NonFiniteIndices: validity flags
//
// ⚠️ Numeric policy:
//
//   - A zero covariance used as a divisor yields ±Inf or NaN in the result.
//     It is never caught or replaced.
//   - A negative variance estimate is a valid computation, not an error. It
//     signals that sampling noise dominates a very small true error variance.
//     The estimators never clamp; use Classify to flag such values.
//   - EC estimates are not symmetric in finite samples. Average (i,j) and
//     (j,i) with SymmetrizeErrorCovariance when a single value is needed.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/collocation/collocation"
//
//	// samples: N×3 matrix.Dense, one column per system
//	errVar, err := collocation.TripleCollocation(samples)
//
//	// systems 0 and 1 share correlated errors; 2 and 3 are independent
//	groups := collocation.Groups{0, 0, 1, 2}
//	errCov, err := collocation.ExtendedCollocation(samples4, groups)
//
// Every function is a pure computation over its arguments: no package state,
// no logging, safe for concurrent use.
package collocation
