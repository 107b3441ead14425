// SPDX-License-Identifier: MIT

package collocation

import (
	"context"
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/collocation/matrix"
	"github.com/katalvlaran/collocation/ndarray"
)

const opBatched = "collocation: ExtendedCollocationBatched"

// ExtendedCollocationBatched applies ExtendedCollocation independently to
// every position of the trailing axes of samples.
//
// Shapes: samples is (N, M, d2, d3, ...); the result is (M, M, d2, d3, ...).
// A rank-2 input is a single slice.
//
// Implementation:
//   - Stage 1: validate rank, N, M and groups once for all slices.
//   - Stage 2: for each flat extra index, extract the N×M slice with the
//     permissive policy, optionally drop incomplete rows, solve, and write
//     the M×M estimate into the same extra index of the result.
//   - Stage 3: slices run on an errgroup limited to opts.Workers; each
//     worker writes a disjoint region of the result.
//
// Behavior highlights:
//   - The estimate at every extra index equals ExtendedCollocation on that
//     slice.
//   - Without DropIncomplete a NaN sample turns the affected entries of
//     that slice into NaN.
//   - With DropIncomplete a slice left with < MinSamples complete rows is
//     all-NaN.
//   - ctx cancellation stops scheduling and is returned.
//   - A per-slice failure names the slice by its extra-axis coordinates.
//
// Errors: ndarray.ErrNilArray, ndarray.ErrRank, ErrTooFewSamples,
// ErrTooFewSystems, ErrGroupsLength, ErrTooFewGroups, ctx.Err().
// Complexity: O(E·(N·M² + M³)) for E extra positions.
func ExtendedCollocationBatched(ctx context.Context, samples *ndarray.Array, groups Groups, opts BatchOptions) (*ndarray.Array, error) {
	if samples == nil {
		return nil, collocationErrorf(opBatched, ndarray.ErrNilArray)
	}
	if samples.Rank() < 2 {
		return nil, fmt.Errorf("%s: rank %d: %w", opBatched, samples.Rank(), ndarray.ErrRank)
	}
	shape := samples.Shape()
	n, m := shape[0], shape[1]
	if n < MinSamples {
		return nil, fmt.Errorf("%s: N=%d: %w", opBatched, n, ErrTooFewSamples)
	}
	if m < MinSystems {
		return nil, fmt.Errorf("%s: M=%d: %w", opBatched, m, ErrTooFewSystems)
	}
	if err := groups.Validate(m); err != nil {
		return nil, collocationErrorf(opBatched, err)
	}

	out, err := ndarray.New(append([]int{m, m}, samples.ExtraShape()...)...)
	if err != nil {
		return nil, collocationErrorf(opBatched, err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())
	for e := 0; e < samples.ExtraSize(); e++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			est, err := solveSlice(samples, e, groups, opts.DropIncomplete)
			if err != nil {
				return sliceErrorf(samples, e, err)
			}

			return out.SetMatrix2D(e, est)
		})
	}
	if err = g.Wait(); err != nil {
		return nil, collocationErrorf(opBatched, err)
	}
	if err = ctx.Err(); err != nil {
		return nil, collocationErrorf(opBatched, err)
	}

	return out, nil
}

// solveSlice runs the scalar estimator on one extra index.
func solveSlice(samples *ndarray.Array, extra int, groups Groups, dropIncomplete bool) (*matrix.Dense, error) {
	x, err := samples.Matrix2D(extra, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}
	if dropIncomplete {
		x, err = CompleteRows(x)
		if errors.Is(err, ErrTooFewSamples) || (err == nil && x.Rows() < MinSamples) {
			return nanMatrix(len(groups))
		}
		if err != nil {
			return nil, err
		}
	}

	return ExtendedCollocation(x, groups)
}

// sliceErrorf tags a per-slice failure with its coordinates along the
// extra axes, e.g. "slice [1 2]".
func sliceErrorf(samples *ndarray.Array, extra int, err error) error {
	coords, cerr := samples.UnravelExtra(extra)
	if cerr != nil {
		return fmt.Errorf("slice %d: %w", extra, err)
	}

	return fmt.Errorf("slice %v: %w", coords, err)
}

// nanMatrix allocates an m×m all-NaN estimate.
func nanMatrix(m int) (*matrix.Dense, error) {
	data := make([]float64, m*m)
	for i := range data {
		data[i] = math.NaN()
	}

	return matrix.NewDenseFrom(m, m, data, matrix.WithNoValidateNaNInf())
}
