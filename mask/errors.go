// SPDX-License-Identifier: MIT

package mask

import "errors"

var (
	// ErrNilField indicates a nil input field.
	ErrNilField = errors.New("mask: nil field")

	// ErrConnectivity indicates an unknown Connectivity value.
	ErrConnectivity = errors.New("mask: connectivity must be Conn4 or Conn8")
)
