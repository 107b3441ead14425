// SPDX-License-Identifier: MIT

package collocation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/collocation/matrix"
)

const (
	opTripleCollocation      = "collocation: TripleCollocation"
	opTripleCollocationCov   = "collocation: TripleCollocationCov"
	opTripleCollocationStats = "collocation: TripleCollocationStats"
)

// tripletOrder lists (i, j, k) for each system i; j and k are the other two
// systems in cyclic order.
var tripletOrder = [TripletSystems][3]int{
	{0, 1, 2},
	{1, 2, 0},
	{2, 0, 1},
}

// TripleCollocation estimates the error variance of 3 systems from their
// N×3 collocated samples.
//
// It is BuildCovariance followed by TripleCollocationCov.
//
// Errors: matrix.ErrNilMatrix, ErrNotTriplet, ErrTooFewSamples.
// Complexity: O(N).
func TripleCollocation(samples matrix.Matrix) ([]float64, error) {
	if err := matrix.ValidateNotNil(samples); err != nil {
		return nil, collocationErrorf(opTripleCollocation, err)
	}
	if samples.Cols() != TripletSystems {
		return nil, fmt.Errorf("%s: M=%d: %w", opTripleCollocation, samples.Cols(), ErrNotTriplet)
	}
	cov, err := BuildCovariance(samples)
	if err != nil {
		return nil, err // already tagged by BuildCovariance
	}

	return TripleCollocationCov(cov)
}

// TripleCollocationCov returns, for i = 0, 1, 2,
//
//	σ²_εi = σii − σij·σik/σjk
//
// where (j, k) are the other two systems in cyclic order.
//
// Behavior highlights:
//   - σjk == 0 yields ±Inf or NaN for system i; this is not an error.
//   - A negative estimate is returned as is.
//
// Errors: matrix.ErrNilMatrix, ErrNonSquareCovariance, ErrNotTriplet.
// Complexity: O(1).
func TripleCollocationCov(cov matrix.Matrix) ([]float64, error) {
	if err := validateTripletCov(cov); err != nil {
		return nil, collocationErrorf(opTripleCollocationCov, err)
	}

	out := make([]float64, TripletSystems)
	for _, p := range tripletOrder {
		i, j, k := p[0], p[1], p[2]
		out[i] = covAt(cov, i, i) - covAt(cov, i, j)*covAt(cov, i, k)/covAt(cov, j, k)
	}

	return out, nil
}

// TripleCollocationStats extends TripleCollocationCov with per-system
// diagnostics: scaled sensitivity θᵢ, SNR in dB, and the squared
// correlation with the unknown truth. See TCStats for definitions.
//
// Non-finite or negative intermediates surface as NaN/±Inf in the
// affected fields and are not errors.
//
// Errors: as TripleCollocationCov.
func TripleCollocationStats(cov matrix.Matrix) (TCStats, error) {
	if err := validateTripletCov(cov); err != nil {
		return TCStats{}, collocationErrorf(opTripleCollocationStats, err)
	}

	st := TCStats{
		ErrVar:      make([]float64, TripletSystems),
		Sensitivity: make([]float64, TripletSystems),
		SNRdB:       make([]float64, TripletSystems),
		RhoTruth2:   make([]float64, TripletSystems),
	}
	var i, j, k int
	var sii, signal float64
	for _, p := range tripletOrder {
		i, j, k = p[0], p[1], p[2]
		sii = covAt(cov, i, i)
		// signal = θᵢ² = βᵢ²·σ²_t
		signal = covAt(cov, i, j) * covAt(cov, i, k) / covAt(cov, j, k)

		st.ErrVar[i] = sii - signal
		st.Sensitivity[i] = math.Sqrt(signal)
		st.SNRdB[i] = 10 * math.Log10(signal/st.ErrVar[i])
		st.RhoTruth2[i] = signal / sii
	}

	return st, nil
}

// ErrorStdDev returns sqrt of each error variance. Negative variances map
// to NaN; nothing is clamped.
func ErrorStdDev(errVar []float64) []float64 {
	out := make([]float64, len(errVar))
	for i, v := range errVar {
		out[i] = math.Sqrt(v)
	}

	return out
}

// validateTripletCov checks for a non-nil 3×3 matrix.
func validateTripletCov(cov matrix.Matrix) error {
	if err := matrix.ValidateNotNil(cov); err != nil {
		return err
	}
	if cov.Rows() != cov.Cols() {
		return fmt.Errorf("%dx%d: %w", cov.Rows(), cov.Cols(), ErrNonSquareCovariance)
	}
	if cov.Rows() != TripletSystems {
		return fmt.Errorf("%dx%d: %w", cov.Rows(), cov.Cols(), ErrNotTriplet)
	}

	return nil
}
