// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the Dense numeric policy.
//
// Policy:
//   - By default Dense rejects NaN/±Inf on Set and on construction from a
//     buffer (DefaultValidateNaNInf). Observation data must be finite.
//   - Estimator outputs may legitimately be non-finite (a zero covariance
//     used as a divisor). Such results are allocated WithNoValidateNaNInf.
package matrix

// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
const DefaultValidateNaNInf = true

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options holds the Dense numeric policy. Fields are unexported; use the
// WithX constructors.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithValidateNaNInf enables rejection of NaN/±Inf on Set and ingestion.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables the finite-only check, allowing NaN and ±Inf
// to be stored. Used for estimator outputs that must surface singularities.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{validateNaNInf: DefaultValidateNaNInf}
}

// gatherOptions applies user options in order over the defaults.
// Nil options are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
