// SPDX-License-Identifier: MIT

package collocation

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/katalvlaran/collocation/matrix"
)

// Minimal problem sizes.
const (
	// MinSystems is the smallest number of observing systems EC accepts.
	MinSystems = 3

	// TripletSystems is the exact number of systems TC accepts.
	TripletSystems = 3

	// MinSamples is the smallest number of collocated samples for an
	// unbiased sample covariance.
	MinSamples = 2

	// MinGroups is the smallest number of mutually independent error groups.
	MinGroups = 3
)

var (
	// ErrTooFewSamples is returned when a sample matrix has fewer than
	// MinSamples rows.
	ErrTooFewSamples = fmt.Errorf("collocation: need at least %d samples: %w", MinSamples, matrix.ErrDimensionMismatch)

	// ErrTooFewSystems is returned when fewer than MinSystems columns
	// (systems) are supplied.
	ErrTooFewSystems = fmt.Errorf("collocation: need at least %d systems: %w", MinSystems, matrix.ErrDimensionMismatch)

	// ErrNotTriplet is returned by the TC path when the input does not cover
	// exactly 3 systems.
	ErrNotTriplet = fmt.Errorf("collocation: triple collocation needs exactly %d systems: %w", TripletSystems, matrix.ErrDimensionMismatch)

	// ErrNonSquareCovariance is returned when a covariance input is not square.
	ErrNonSquareCovariance = fmt.Errorf("collocation: covariance matrix is not square: %w", matrix.ErrDimensionMismatch)

	// ErrGroupsLength is returned when len(groups) differs from the number of systems.
	ErrGroupsLength = errors.New("collocation: groups length does not match number of systems")

	// ErrTooFewGroups is returned when the grouping has fewer than MinGroups
	// distinct labels, so no valid helper pair exists.
	ErrTooFewGroups = errors.New("collocation: need at least 3 independent error groups")

	// ErrSystemIndex is returned when a system index is outside [0, M).
	ErrSystemIndex = errors.New("collocation: system index out of range")
)

// collocationErrorf wraps err with an operation tag.
func collocationErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Groups assigns an error-correlation label to every system, indexed by
// system. Systems sharing a label have correlated errors. Systems with
// different labels are assumed error-independent. Labels are arbitrary ints;
// only equality matters.
//
// Example: Groups{0, 0, 1, 2} declares systems 0 and 1 correlated and
// systems 2 and 3 independent of everything else (3 distinct groups).
type Groups []int

// Singletons returns the all-independent grouping {0, 1, ..., m-1}.
func Singletons(m int) Groups {
	g := make(Groups, m)
	for i := range g {
		g[i] = i
	}

	return g
}

// Distinct returns the number of distinct labels.
func (g Groups) Distinct() int {
	seen := make(map[int]struct{}, len(g))
	for _, label := range g {
		seen[label] = struct{}{}
	}

	return len(seen)
}

// Validate checks the grouping against m systems.
// Errors: ErrGroupsLength, ErrTooFewGroups.
func (g Groups) Validate(m int) error {
	if len(g) != m {
		return fmt.Errorf("len(groups)=%d, systems=%d: %w", len(g), m, ErrGroupsLength)
	}
	if d := g.Distinct(); d < MinGroups {
		return fmt.Errorf("%d distinct groups: %w", d, ErrTooFewGroups)
	}

	return nil
}

// Correlated reports whether systems i and j share an error group.
// A system is always correlated with itself.
func (g Groups) Correlated(i, j int) bool { return g[i] == g[j] }

// TCStats bundles the per-system diagnostics derived from a 3×3 covariance.
// All slices have length 3, indexed by system.
type TCStats struct {
	// ErrVar is the error variance σ²_εi (TC estimate; may be negative).
	ErrVar []float64

	// Sensitivity is θᵢ = sqrt(σij·σik/σjk), the scaled signal sensitivity
	// βᵢ·σ_t. NaN when the radicand is negative.
	Sensitivity []float64

	// SNRdB is 10·log10(θᵢ²/σ²_εi). NaN when the ratio is negative, +Inf
	// for a zero error variance.
	SNRdB []float64

	// RhoTruth2 is ρ²ᵢ = σij·σik/(σii·σjk), the squared correlation between
	// system i and the unknown truth.
	RhoTruth2 []float64
}

// BatchOptions configures ExtendedCollocationBatched.
//
// Fields:
//   - Workers: maximum number of slices solved concurrently. ≤ 0 means
//     runtime.GOMAXPROCS(0).
//   - DropIncomplete: drop sample rows holding NaN/±Inf per slice before
//     estimation. A slice left with fewer than MinSamples complete rows
//     yields an all-NaN estimate. When false, non-finite samples flow into
//     the covariance and surface as NaN estimates for that slice.
type BatchOptions struct {
	Workers        int
	DropIncomplete bool
}

// DefaultBatchOptions returns GOMAXPROCS workers and no row filtering.
func DefaultBatchOptions() BatchOptions {
	return BatchOptions{
		Workers:        runtime.GOMAXPROCS(0),
		DropIncomplete: false,
	}
}

// workers resolves the effective pool size.
func (o BatchOptions) workers() int {
	if o.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}

	return o.Workers
}
