// SPDX-License-Identifier: MIT
// Package collocation_test contains synthetic-data fixtures.
//
// Purpose:
//   • Draw collocated series from the affine error model
//     xᵢ = αᵢ + βᵢ·t + εᵢ with a known error covariance.
//   • Keep draws reproducible (fixed PCG seeds).

package collocation_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/collocation/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"
)

// model describes a synthetic collocation experiment.
type model struct {
	sigmaT float64     // std of the true signal
	alpha  []float64   // per-system offsets
	beta   []float64   // per-system sensitivities
	errCov [][]float64 // M×M error covariance (symmetric positive definite)
}

// independentModel builds a model with a diagonal error covariance.
func independentModel(sigmaT float64, alpha, beta, errVar []float64) model {
	ec := make([][]float64, len(errVar))
	for i := range ec {
		ec[i] = make([]float64, len(errVar))
		ec[i][i] = errVar[i]
	}

	return model{sigmaT: sigmaT, alpha: alpha, beta: beta, errCov: ec}
}

// simulate draws n collocated samples from mdl.
func simulate(t testing.TB, mdl model, n int, seed uint64) *matrix.Dense {
	t.Helper()
	m := len(mdl.beta)
	require.Len(t, mdl.alpha, m)
	require.Len(t, mdl.errCov, m)

	flat := make([]float64, 0, m*m)
	for _, row := range mdl.errCov {
		require.Len(t, row, m)
		flat = append(flat, row...)
	}
	noise, ok := distmv.NewNormal(make([]float64, m), mat.NewSymDense(m, flat), rand.NewPCG(seed, 2*seed+1))
	require.True(t, ok, "error covariance must be positive definite")
	truth := distuv.Normal{Mu: 0, Sigma: mdl.sigmaT, Src: rand.NewPCG(seed+7, 3*seed+5)}

	data := make([]float64, 0, n*m)
	eps := make([]float64, m)
	var tv float64
	for r := 0; r < n; r++ {
		tv = truth.Rand()
		noise.Rand(eps)
		for i := 0; i < m; i++ {
			data = append(data, mdl.alpha[i]+mdl.beta[i]*tv+eps[i])
		}
	}
	x, err := matrix.NewDenseFrom(n, m, data)
	require.NoError(t, err)

	return x
}

// denseFromRows builds a matrix or fails the test.
func denseFromRows(t testing.TB, rows [][]float64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows, opts...)
	require.NoError(t, err)

	return m
}

// at reads m(i,j) or fails the test.
func at(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// worstRelErr returns max_i |got[i]-want[i]| / |want[i]|.
func worstRelErr(t testing.TB, want, got []float64) float64 {
	t.Helper()
	require.Len(t, got, len(want))
	var worst float64
	for i := range want {
		worst = math.Max(worst, math.Abs(got[i]-want[i])/math.Abs(want[i]))
	}

	return worst
}
