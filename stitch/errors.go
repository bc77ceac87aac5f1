// SPDX-License-Identifier: MIT

package stitch

import (
	"errors"
	"fmt"
)

// Sentinel errors; stage errors wrap them (or package field/interp sentinels)
// with the stage and field that failed.
var (
	// ErrNilField indicates a nil input field.
	ErrNilField = errors.New("stitch: nil field")

	// ErrBadSpacing indicates a non-positive or non-finite grid step.
	ErrBadSpacing = errors.New("stitch: grid spacing must be finite and > 0")

	// ErrEmptyWindow indicates a weight or resampling request on an empty window.
	ErrEmptyWindow = errors.New("stitch: empty index window")
)

// Stage names used in wrapped errors.
const (
	stageValidate    = "validate"
	stageUnify       = "unify grid"
	stageInterpolate = "interpolate"
	stageCompose     = "compose"
)

// stageErrorf wraps err with the stage and, when which > 0, the field number.
func stageErrorf(stage string, which int, err error) error {
	if which > 0 {
		return fmt.Errorf("stitch: field %d: %s: %w", which, stage, err)
	}

	return fmt.Errorf("stitch: %s: %w", stage, err)
}
