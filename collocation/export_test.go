// SPDX-License-Identifier: MIT

package collocation

import "github.com/katalvlaran/collocation/ndarray"

// Test bridge: exposes private helpers to package collocation_test.

// SliceErrorf_TestOnly wraps sliceErrorf.
func SliceErrorf_TestOnly(samples *ndarray.Array, extra int, err error) error {
	return sliceErrorf(samples, extra, err)
}
