// Package ndarray provides a minimal rank-n, row-major float64 array used to
// feed batched (pixelwise) inputs to the collocation estimators.
//
// Layout:
//
//	shape  = (d0, d1, ..., dk-1)
//	offset = ((i0*d1 + i1)*d2 + i2)... (row-major, last axis fastest)
//
// The collocation driver reads shape (N, M, extra...) and writes
// (M, M, extra...). Matrix2D and SetMatrix2D move one "extra" index in and out
// of a matrix.Dense over the two leading axes. The extra axes are addressed by
// a single flat index in [0, ExtraSize()).
//
// Arrays are not safe for concurrent mutation of overlapping regions.
// Concurrent reads, and writes to disjoint extra indices, are safe.
package ndarray
