package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/collocation/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestAdd checks element-wise addition and shape errors.
func TestAdd(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := NewFilledDense(t, 2, 2, []float64{10, 20, 30, 40})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{11, 22}, {33, 44}}, sum)

	slow, err := matrix.Add(hide{a}, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{11, 22}, {33, 44}}, slow)

	_, err = matrix.Add(a, RandFilledDense(t, 2, 3, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMul compares against gonum on random operands (fast and fallback paths).
func TestMul(t *testing.T) {
	t.Parallel()

	a := RandFilledDense(t, 4, 3, 1)
	b := RandFilledDense(t, 3, 5, 2)

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	gotSlow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)

	ga, err := matrix.ToGonum(a)
	require.NoError(t, err)
	gb, err := matrix.ToGonum(b)
	require.NoError(t, err)
	var want mat.Dense
	want.Mul(ga, gb)

	wantM, err := matrix.FromGonum(&want)
	require.NoError(t, err)
	CompareClose(t, got, wantM, 1e-12, 1e-12)
	CompareClose(t, gotSlow, wantM, 1e-12, 1e-12)

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestTransposeAndScale covers the two unary kernels.
func TestTransposeAndScale(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, tr)

	trSlow, err := matrix.Transpose(hide{m})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, trSlow)

	sc, err := matrix.Scale(m, -2)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-2, -4, -6}, {-8, -10, -12}}, sc)

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestKernelsPassNonFinite ensures kernels never reject NaN/Inf already present.
func TestKernelsPassNonFinite(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDenseFrom(1, 2, []float64{math.Inf(1), math.NaN()}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)

	sc, err := matrix.Scale(m, 2)
	require.NoError(t, err)
	assert.True(t, math.IsInf(MustAt(t, sc, 0, 0), 1))
	assert.True(t, math.IsNaN(MustAt(t, sc, 0, 1)))
}

// TestSymmetrize checks (m + mᵀ)/2 and the square precondition.
func TestSymmetrize(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []float64{1, 2, 4, 3})
	s, err := matrix.Symmetrize(m)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 3}, {3, 3}}, s)
	require.NoError(t, matrix.ValidateSymmetric(s, 0))

	_, err = matrix.Symmetrize(RandFilledDense(t, 2, 3, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestAllClose covers tolerances and the non-finite matching policy.
func TestAllClose(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 1, 2, []float64{1, 2})
	b := NewFilledDense(t, 1, 2, []float64{1 + 1e-10, 2})

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-12)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = matrix.AllClose(hide{a}, b, 0, 1e-12)
	require.NoError(t, err)
	assert.False(t, ok)

	x, err := matrix.NewDenseFrom(1, 3, []float64{math.NaN(), math.Inf(1), math.Inf(-1)}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	y := x.Clone()
	ok, err = matrix.AllClose(x, y, 0, 0)
	require.NoError(t, err)
	assert.True(t, ok, "NaN~NaN and same-signed Inf must match")

	z, err := matrix.NewDenseFrom(1, 3, []float64{0, math.Inf(1), math.Inf(-1)}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	ok, err = matrix.AllClose(x, z, 0, 1)
	require.NoError(t, err)
	assert.False(t, ok, "NaN must not match a finite value")

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.AllClose(a, RandFilledDense(t, 2, 2, 1), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
