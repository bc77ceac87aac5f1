// SPDX-License-Identifier: MIT

package codec

import "errors"

var (
	// ErrNonFinite indicates an ±Inf sample, which has no wire form.
	ErrNonFinite = errors.New("codec: infinite value cannot be encoded")

	// ErrRagged indicates matrix rows of different lengths.
	ErrRagged = errors.New("codec: ragged matrix rows")

	// ErrEmpty indicates a matrix with no rows or no columns.
	ErrEmpty = errors.New("codec: empty matrix")

	// ErrCompression indicates an unknown CompressionType.
	ErrCompression = errors.New("codec: unknown compression type")
)
