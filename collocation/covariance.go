// SPDX-License-Identifier: MIT

package collocation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/collocation/matrix"
)

const (
	opBuildCovariance = "collocation: BuildCovariance"
	opCompleteRows    = "collocation: CompleteRows"
)

// BuildCovariance returns the M×M unbiased sample covariance of the columns
// of samples (N×M, rows are collocated time points, columns are systems).
//
// Implementation:
//   - Stage 1: reject nil, N < MinSamples, M < MinSystems.
//   - Stage 2: delegate to matrix.Covariance, which centers the columns and
//     forms (Xcᵀ Xc)/(N−1).
//
// Behavior highlights:
//   - Exactly symmetric.
//   - Non-finite samples (only possible with a permissive input policy)
//     propagate into the affected rows and columns.
//
// Errors: matrix.ErrNilMatrix, ErrTooFewSamples, ErrTooFewSystems.
// Complexity: O(N·M²).
func BuildCovariance(samples matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(samples); err != nil {
		return nil, collocationErrorf(opBuildCovariance, err)
	}
	if samples.Rows() < MinSamples {
		return nil, fmt.Errorf("%s: N=%d: %w", opBuildCovariance, samples.Rows(), ErrTooFewSamples)
	}
	if samples.Cols() < MinSystems {
		return nil, fmt.Errorf("%s: M=%d: %w", opBuildCovariance, samples.Cols(), ErrTooFewSystems)
	}

	cov, _, err := matrix.Covariance(samples)
	if err != nil {
		return nil, collocationErrorf(opBuildCovariance, err)
	}

	return cov.(*matrix.Dense), nil
}

// CompleteRows returns a copy of samples keeping only the rows in which
// every system reported a finite value. The result keeps the input order
// and uses the finite-only numeric policy.
//
// Errors: matrix.ErrNilMatrix; ErrTooFewSamples when no complete row remains.
// Complexity: O(N·M).
func CompleteRows(samples matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(samples); err != nil {
		return nil, collocationErrorf(opCompleteRows, err)
	}
	r, c := samples.Rows(), samples.Cols()
	kept := make([]float64, 0, r*c)
	row := make([]float64, c)
	n := 0

	var (
		v   float64
		err error
	)
rows:
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = samples.At(i, j); err != nil {
				return nil, collocationErrorf(opCompleteRows, err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue rows
			}
			row[j] = v
		}
		kept = append(kept, row...)
		n++
	}
	if n == 0 {
		return nil, fmt.Errorf("%s: no complete rows: %w", opCompleteRows, ErrTooFewSamples)
	}

	out, err := matrix.NewDenseFrom(n, c, kept)
	if err != nil {
		return nil, collocationErrorf(opCompleteRows, err)
	}

	return out, nil
}

// covAt reads cov(i,j). Callers have validated the shape.
func covAt(cov matrix.Matrix, i, j int) float64 {
	v, _ := cov.At(i, j)

	return v
}
