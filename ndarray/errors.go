// SPDX-License-Identifier: MIT

package ndarray

import (
	"errors"
	"fmt"
)

var (
	// ErrShape indicates an empty shape, a non-positive dimension, or a data
	// buffer whose length does not match the shape.
	ErrShape = errors.New("ndarray: invalid shape")

	// ErrRank indicates an operation received an array of unsupported rank or
	// an index tuple of the wrong length.
	ErrRank = errors.New("ndarray: rank mismatch")

	// ErrOutOfRange indicates an index outside its axis bounds.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrNilArray indicates a nil *Array was passed.
	ErrNilArray = errors.New("ndarray: nil array")
)

// arrayErrorf wraps err with an operation tag.
func arrayErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
