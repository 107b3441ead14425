// Package matrix provides the dense linear-algebra layer used by the
// collocation estimators.
//
// The matrix package provides:
//
//   - Matrix, a minimal interface over two-dimensional float64 arrays with
//     bounds-checked At/Set and deep Clone.
//   - Dense, a row-major implementation with a configurable numeric policy
//     (finite-only by default, see WithNoValidateNaNInf).
//   - Column statistics: Covariance (unbiased, N−1, centered internally).
//   - Canonical kernels: Add, Mul, Transpose, Scale, Symmetrize, AllClose.
//   - Gonum interop: ToGonum and FromGonum.
//
// Errors are package-level sentinels (errors.go) wrapped with an operation
// tag; match them with errors.Is. No exported function panics on user input.
//
// Sample matrices are laid out with one row per time index and one column
// per observing system, so Covariance(X) yields the system-by-system
// covariance matrix consumed by package collocation.
package matrix
