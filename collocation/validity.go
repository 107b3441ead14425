// SPDX-License-Identifier: MIT

package collocation

import "math"

// Validity flags an individual error variance or covariance estimate.
type Validity uint8

const (
	// Valid is a finite, non-negative estimate.
	Valid Validity = iota
	// Negative is a finite estimate below zero, typically a very small true
	// error variance dominated by sampling noise.
	Negative
	// NonFinite is NaN or ±Inf, produced by a singular helper covariance.
	NonFinite
)

// String implements fmt.Stringer.
func (v Validity) String() string {
	switch v {
	case Valid:
		return "valid"
	case Negative:
		return "negative"
	case NonFinite:
		return "non-finite"
	default:
		return "unknown"
	}
}

// Classify flags a single estimate.
func Classify(v float64) Validity {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return NonFinite
	case v < 0:
		return Negative
	default:
		return Valid
	}
}

// NegativeIndices returns the indices of finite negative values, ascending.
func NegativeIndices(values []float64) []int {
	return indicesOf(values, Negative)
}

// NonFiniteIndices returns the indices of NaN/±Inf values, ascending.
func NonFiniteIndices(values []float64) []int {
	return indicesOf(values, NonFinite)
}

func indicesOf(values []float64, want Validity) []int {
	var out []int
	for i, v := range values {
		if Classify(v) == want {
			out = append(out, i)
		}
	}

	return out
}
