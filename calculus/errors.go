// SPDX-License-Identifier: MIT

package calculus

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pivkit/field"
)

// ErrNilField indicates a nil input field.
var ErrNilField = errors.New("calculus: nil field")

// validate re-checks f and wraps failures with the calling operation.
func validate(op string, f *field.Field) error {
	if f == nil {
		return fmt.Errorf("calculus: %s: %w", op, ErrNilField)
	}
	if _, err := field.New(f.X, f.Y, f.U, f.V); err != nil {
		return fmt.Errorf("calculus: %s: %w", op, err)
	}

	return nil
}
