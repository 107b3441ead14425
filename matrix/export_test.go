// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes private ew* kernels to package matrix_test so that the
// *Dense fast path and the generic fallback can be checked against each other.

// EwBroadcastSubCols_TestOnly wraps ewBroadcastSubCols.
func EwBroadcastSubCols_TestOnly(X Matrix, colMeans []float64) (*Dense, error) {
	return ewBroadcastSubCols(X, colMeans)
}

// CloseEnough_TestOnly wraps closeEnough.
func CloseEnough_TestOnly(a, b, rtol, atol float64) bool {
	return closeEnough(a, b, rtol, atol)
}

// CenterColumns_TestOnly wraps centerColumns.
func CenterColumns_TestOnly(X Matrix) (*Dense, []float64, error) {
	return centerColumns(X)
}
