// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/collocation/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- ewBroadcastSubCols -------------------------------------------------------

func TestEwBroadcastSubCols_FastAndFallback_Match(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 10, 20, 30})
	colMeans := []float64{4, 5, 6}

	gotFast, err := matrix.EwBroadcastSubCols_TestOnly(X, colMeans)
	require.NoError(t, err)
	gotSlow, err := matrix.EwBroadcastSubCols_TestOnly(hide{X}, colMeans)
	require.NoError(t, err)

	exp := [][]float64{
		{-3, -3, -3},
		{6, 15, 24},
	}
	CompareExact(t, exp, gotFast)
	CompareExact(t, exp, gotSlow)
	assert.False(t, gotFast.ValidatesNaNInf(), "kernel outputs are permissive")
}

func TestEwBroadcastSubCols_Errors(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	_, err := matrix.EwBroadcastSubCols_TestOnly(X, []float64{0, 0})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.EwBroadcastSubCols_TestOnly(nil, []float64{0})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestEwBroadcastSubCols_PropagatesNaN(t *testing.T) {
	t.Parallel()

	X, err := matrix.NewDenseFrom(2, 2, []float64{1, math.NaN(), 3, 4}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	got, err := matrix.EwBroadcastSubCols_TestOnly(X, []float64{1, 1})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(MustAt(t, got, 0, 1)))
	assert.Equal(t, 2.0, MustAt(t, got, 1, 0))
}

// --- closeEnough ----------------------------------------------------------------

func TestCloseEnough(t *testing.T) {
	t.Parallel()

	nan, inf := math.NaN(), math.Inf(1)
	tests := []struct {
		name       string
		a, b       float64
		rtol, atol float64
		want       bool
	}{
		{"equal", 1, 1, 0, 0, true},
		{"atol", 1, 1.05, 0, 0.1, true},
		{"rtol", 100, 101, 0.02, 0, true},
		{"outside", 1, 2, 0.1, 0.1, false},
		{"nan nan", nan, nan, 0, 0, true},
		{"nan finite", nan, 0, 1, 1, false},
		{"inf inf", inf, inf, 0, 0, true},
		{"inf -inf", inf, -inf, 1, 1, false},
		{"inf finite", inf, 1e308, 1, 1, false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, matrix.CloseEnough_TestOnly(tc.a, tc.b, tc.rtol, tc.atol))
		})
	}
}
