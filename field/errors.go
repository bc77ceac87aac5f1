// SPDX-License-Identifier: MIT

package field

import (
	"errors"
	"fmt"
)

// Sentinel errors for field construction and access.
// Callers match them with errors.Is; messages carry the "field:" prefix.
var (
	// ErrNilArray indicates a nil coordinate or component array.
	ErrNilArray = errors.New("field: nil array")

	// ErrShapeMismatch indicates arrays (or two fields) of different shape.
	ErrShapeMismatch = errors.New("field: shape mismatch")

	// ErrTooSmall indicates a grid with fewer than 2 rows or 2 columns.
	ErrTooSmall = errors.New("field: grid must have at least 2 rows and 2 columns")

	// ErrNonFinite indicates a NaN or ±Inf coordinate.
	ErrNonFinite = errors.New("field: NaN or Inf coordinate")

	// ErrNotMeshgrid indicates X varying along rows or Y varying along columns.
	ErrNotMeshgrid = errors.New("field: coordinates are not in meshgrid layout")

	// ErrNotMonotonic indicates an axis that is not strictly monotonic.
	ErrNotMonotonic = errors.New("field: axis is not strictly monotonic")
)

// fieldErrorf wraps err with the name of the array (or operation) that failed.
func fieldErrorf(what string, err error) error {
	return fmt.Errorf("%s: %w", what, err)
}
