// SPDX-License-Identifier: MIT

package collocation

import (
	"fmt"

	"github.com/katalvlaran/collocation/matrix"
)

const (
	opExtendedCollocationCov = "collocation: ExtendedCollocationCov"
	opSymmetrize             = "collocation: SymmetrizeErrorCovariance"
)

// ExtendedCollocation estimates the M×M error covariance of M ≥ 3 systems
// from their N×M collocated samples and an error-correlation grouping.
//
// It is BuildCovariance followed by ExtendedCollocationCov.
//
// Errors: matrix.ErrNilMatrix, ErrTooFewSamples, ErrTooFewSystems,
// ErrGroupsLength, ErrTooFewGroups.
// Complexity: O(N·M² + M³).
func ExtendedCollocation(samples matrix.Matrix, groups Groups) (*matrix.Dense, error) {
	cov, err := BuildCovariance(samples)
	if err != nil {
		return nil, err
	}

	return ExtendedCollocationCov(cov, groups)
}

// ExtendedCollocationCov solves, for every ordered pair (i, j),
//
//	σ_εi,εj = σij − σik·σjl/σkl
//
// with helpers (k, l) from SelectHelpers.
//
// Behavior highlights:
//   - The result is not symmetric in finite samples; entry (i,j) and
//     (j,i) use different helpers. See SymmetrizeErrorCovariance.
//   - σkl == 0 yields ±Inf or NaN for that entry; not an error.
//   - Negative diagonal entries are returned unclamped.
//   - The result uses the permissive numeric policy.
//
// Errors: matrix.ErrNilMatrix, ErrNonSquareCovariance, ErrTooFewSystems,
// ErrGroupsLength, ErrTooFewGroups.
// Complexity: O(M³) for helper search, O(M²) arithmetic.
func ExtendedCollocationCov(cov matrix.Matrix, groups Groups) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(cov); err != nil {
		return nil, collocationErrorf(opExtendedCollocationCov, err)
	}
	m := cov.Rows()
	if m != cov.Cols() {
		return nil, fmt.Errorf("%s: %dx%d: %w", opExtendedCollocationCov, m, cov.Cols(), ErrNonSquareCovariance)
	}
	if m < MinSystems {
		return nil, fmt.Errorf("%s: M=%d: %w", opExtendedCollocationCov, m, ErrTooFewSystems)
	}
	if err := groups.Validate(m); err != nil {
		return nil, collocationErrorf(opExtendedCollocationCov, err)
	}

	out, err := matrix.NewDense(m, m, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, collocationErrorf(opExtendedCollocationCov, err)
	}
	var i, j, k, l int
	for i = 0; i < m; i++ {
		for j = 0; j < m; j++ {
			k, l = selectHelpers(groups, i, j)
			v := covAt(cov, i, j) - covAt(cov, i, k)*covAt(cov, j, l)/covAt(cov, k, l)
			if err = out.Set(i, j, v); err != nil {
				return nil, collocationErrorf(opExtendedCollocationCov, err)
			}
		}
	}

	return out, nil
}

// SymmetrizeErrorCovariance returns (E + Eᵀ)/2.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch for non-square input.
func SymmetrizeErrorCovariance(errCov matrix.Matrix) (*matrix.Dense, error) {
	s, err := matrix.Symmetrize(errCov)
	if err != nil {
		return nil, collocationErrorf(opSymmetrize, err)
	}

	return s.(*matrix.Dense), nil
}

// ErrorVariances returns the diagonal of an error covariance estimate.
func ErrorVariances(errCov matrix.Matrix) []float64 {
	if matrix.ValidateNotNil(errCov) != nil {
		return nil
	}
	n := errCov.Rows()
	if errCov.Cols() < n {
		n = errCov.Cols()
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = covAt(errCov, i, i)
	}

	return out
}
