// SPDX-License-Identifier: MIT

package collocation

import "fmt"

const noHelper = -1

// SelectHelpers returns the helper systems (k, l) used to estimate the error
// covariance of systems i and j:
//
//	σ_εi,εj = σij − σik·σjl/σkl
//
// The choice is deterministic.
//
//  1. Strict tier: k is the lowest index whose group differs from group(i)
//     and group(j); l is the lowest index whose group differs from
//     group(i), group(j) and group(k).
//  2. Relaxed tier, only when the strict tier has no candidate (i and j in
//     different groups, exactly 3 groups): k is the lowest index with
//     group(k) ≠ group(i); l is the lowest index with group(l) ≠ group(j)
//     and group(l) ≠ group(k).
//
// For i == j and for correlated pairs the two tiers coincide, so with
// singleton groups and M = 3 the diagonal reproduces triple collocation.
//
// Errors: ErrSystemIndex, ErrTooFewGroups.
func SelectHelpers(groups Groups, i, j int) (k, l int, err error) {
	m := len(groups)
	if i < 0 || i >= m || j < 0 || j >= m {
		return noHelper, noHelper, fmt.Errorf("collocation: SelectHelpers(%d,%d) with M=%d: %w", i, j, m, ErrSystemIndex)
	}
	if d := groups.Distinct(); d < MinGroups {
		return noHelper, noHelper, fmt.Errorf("collocation: SelectHelpers: %d distinct groups: %w", d, ErrTooFewGroups)
	}
	k, l = selectHelpers(groups, i, j)

	return k, l, nil
}

// selectHelpers implements SelectHelpers for validated input.
func selectHelpers(g Groups, i, j int) (k, l int) {
	gi, gj := g[i], g[j]

	k = firstIndex(g, func(x int) bool { return x != gi && x != gj })
	if k != noHelper {
		gk := g[k]
		l = firstIndex(g, func(x int) bool { return x != gi && x != gj && x != gk })
		if l != noHelper {
			return k, l
		}
	}

	// Relaxed tier.
	k = firstIndex(g, func(x int) bool { return x != gi })
	gk := g[k]
	l = firstIndex(g, func(x int) bool { return x != gj && x != gk })

	return k, l
}

// firstIndex returns the lowest system index whose label satisfies ok.
func firstIndex(g Groups, ok func(label int) bool) int {
	for idx, label := range g {
		if ok(label) {
			return idx
		}
	}

	return noHelper
}
