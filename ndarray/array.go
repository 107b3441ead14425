// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"

	"github.com/katalvlaran/collocation/matrix"
)

const (
	opNew         = "New"
	opFromSlice   = "FromSlice"
	opOffset      = "Offset"
	opMatrix2D    = "Matrix2D"
	opSetMatrix2D = "SetMatrix2D"
)

// Array is a dense rank-n float64 array in row-major order.
// The zero value is not usable; construct with New or FromSlice.
type Array struct {
	shape   []int     // axis lengths, all > 0
	strides []int     // element strides, strides[k-1] == 1
	data    []float64 // len == product(shape)
}

// New allocates a zero-filled array of the given shape.
// Errors: ErrShape for an empty shape or a non-positive dimension.
// Complexity: O(size).
func New(shape ...int) (*Array, error) {
	size, err := sizeOf(shape)
	if err != nil {
		return nil, arrayErrorf(opNew, err)
	}

	return build(shape, make([]float64, size)), nil
}

// FromSlice builds an array over a copy of data (row-major).
// Errors: ErrShape for a bad shape or len(data) != product(shape).
// Complexity: O(size).
func FromSlice(data []float64, shape ...int) (*Array, error) {
	size, err := sizeOf(shape)
	if err != nil {
		return nil, arrayErrorf(opFromSlice, err)
	}
	if len(data) != size {
		return nil, fmt.Errorf("%s: len(data)=%d, want %d: %w", opFromSlice, len(data), size, ErrShape)
	}
	buf := make([]float64, size)
	copy(buf, data)

	return build(shape, buf), nil
}

// sizeOf validates shape and returns the element count.
func sizeOf(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, ErrShape
	}
	size := 1
	for _, d := range shape {
		if d <= 0 {
			return 0, ErrShape
		}
		size *= d
	}

	return size, nil
}

// build wires shape, strides and a pre-sized buffer together.
func build(shape []int, data []float64) *Array {
	sh := append([]int(nil), shape...)
	strides := make([]int, len(sh))
	acc := 1
	for k := len(sh) - 1; k >= 0; k-- {
		strides[k] = acc
		acc *= sh[k]
	}

	return &Array{shape: sh, strides: strides, data: data}
}

// Shape returns a copy of the axis lengths.
func (a *Array) Shape() []int { return append([]int(nil), a.shape...) }

// Rank returns the number of axes.
func (a *Array) Rank() int { return len(a.shape) }

// Size returns the total number of elements.
func (a *Array) Size() int { return len(a.data) }

// Data returns a copy of the row-major buffer.
func (a *Array) Data() []float64 { return append([]float64(nil), a.data...) }

// ExtraShape returns the axis lengths after the two leading axes
// (empty for rank ≤ 2).
func (a *Array) ExtraShape() []int {
	if len(a.shape) <= 2 {
		return []int{}
	}

	return append([]int(nil), a.shape[2:]...)
}

// ExtraSize returns the number of distinct extra-axis positions
// (product of ExtraShape; 1 for rank ≤ 2).
func (a *Array) ExtraSize() int {
	n := 1
	for k := 2; k < len(a.shape); k++ {
		n *= a.shape[k]
	}

	return n
}

// Offset returns the flat row-major offset of idx.
// Errors: ErrRank if len(idx) != Rank(), ErrOutOfRange for a bad coordinate.
func (a *Array) Offset(idx ...int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, arrayErrorf(opOffset, ErrRank)
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= a.shape[k] {
			return 0, fmt.Errorf("%s: axis %d index %d: %w", opOffset, k, i, ErrOutOfRange)
		}
		off += i * a.strides[k]
	}

	return off, nil
}

// At returns the element at idx.
func (a *Array) At(idx ...int) (float64, error) {
	off, err := a.Offset(idx...)
	if err != nil {
		return 0, err
	}

	return a.data[off], nil
}

// Set writes v at idx. Non-finite values are stored as is.
func (a *Array) Set(v float64, idx ...int) error {
	off, err := a.Offset(idx...)
	if err != nil {
		return err
	}
	a.data[off] = v

	return nil
}

// UnravelExtra converts a flat extra index into per-axis coordinates over
// ExtraShape (row-major).
// Errors: ErrOutOfRange when extra is outside [0, ExtraSize()).
func (a *Array) UnravelExtra(extra int) ([]int, error) {
	if extra < 0 || extra >= a.ExtraSize() {
		return nil, fmt.Errorf("UnravelExtra(%d): %w", extra, ErrOutOfRange)
	}
	dims := a.ExtraShape()
	coords := make([]int, len(dims))
	for k := len(dims) - 1; k >= 0; k-- {
		coords[k] = extra % dims[k]
		extra /= dims[k]
	}

	return coords, nil
}

// Matrix2D extracts the d0×d1 matrix at flat extra index extra.
//
// Element (i, j) of the result is a[i, j, extra...]. The matrix is built with
// the given numeric policy, so the default rejects NaN/Inf samples
// (matrix.ErrNaNInf).
//
// Errors: ErrRank for rank < 2, ErrOutOfRange for a bad extra index.
// Complexity: O(d0*d1).
func (a *Array) Matrix2D(extra int, opts ...matrix.Option) (*matrix.Dense, error) {
	if len(a.shape) < 2 {
		return nil, arrayErrorf(opMatrix2D, ErrRank)
	}
	E := a.ExtraSize()
	if extra < 0 || extra >= E {
		return nil, fmt.Errorf("%s(%d): %w", opMatrix2D, extra, ErrOutOfRange)
	}
	r, c := a.shape[0], a.shape[1]
	buf := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			buf[i*c+j] = a.data[(i*c+j)*E+extra]
		}
	}
	m, err := matrix.NewDenseFrom(r, c, buf, opts...)
	if err != nil {
		return nil, arrayErrorf(opMatrix2D, err)
	}

	return m, nil
}

// SetMatrix2D writes m into the two leading axes at flat extra index extra.
//
// Errors: ErrRank for rank < 2, ErrOutOfRange for a bad extra index,
// matrix.ErrDimensionMismatch when m is not d0×d1.
// Complexity: O(d0*d1).
func (a *Array) SetMatrix2D(extra int, m matrix.Matrix) error {
	if len(a.shape) < 2 {
		return arrayErrorf(opSetMatrix2D, ErrRank)
	}
	if err := matrix.ValidateNotNil(m); err != nil {
		return arrayErrorf(opSetMatrix2D, err)
	}
	E := a.ExtraSize()
	if extra < 0 || extra >= E {
		return fmt.Errorf("%s(%d): %w", opSetMatrix2D, extra, ErrOutOfRange)
	}
	r, c := a.shape[0], a.shape[1]
	if m.Rows() != r || m.Cols() != c {
		return arrayErrorf(opSetMatrix2D, matrix.ErrDimensionMismatch)
	}
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, _ = m.At(i, j)
			a.data[(i*c+j)*E+extra] = v
		}
	}

	return nil
}
