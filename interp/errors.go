// SPDX-License-Identifier: MIT

package interp

import "errors"

var (
	// ErrTooFewSamples indicates an axis with fewer than two coordinates.
	ErrTooFewSamples = errors.New("interp: need at least 2×2 samples")

	// ErrShape indicates a value slice that does not match the axes.
	ErrShape = errors.New("interp: values do not match axis lengths")

	// ErrUnsorted indicates an axis that is not strictly monotonic.
	ErrUnsorted = errors.New("interp: axis must be strictly monotonic")

	// ErrEmptyTarget indicates an evaluation grid with no points.
	ErrEmptyTarget = errors.New("interp: empty target grid")
)
