// SPDX-License-Identifier: MIT

package codec

import (
	"github.com/katalvlaran/pivkit/field"
	"gonum.org/v1/gonum/mat"
)

// Vector is the wire form of a field.Field.
type Vector struct {
	X Matrix `json:"x"`
	Y Matrix `json:"y"`
	U Matrix `json:"u"`
	V Matrix `json:"v"`
}

// FromField wraps the arrays of f (no copy).
func FromField(f *field.Field) Vector {
	return Vector{X: Matrix{f.X}, Y: Matrix{f.Y}, U: Matrix{f.U}, V: Matrix{f.V}}
}

// Field validates the decoded arrays and returns them as a field.Field.
func (v Vector) Field() (*field.Field, error) {
	return field.New(v.X.Dense, v.Y.Dense, v.U.Dense, v.V.Dense)
}

// Scalar is the wire form of a scalar quantity sampled on a field's grid.
type Scalar struct {
	X Matrix `json:"x"`
	Y Matrix `json:"y"`
	S Matrix `json:"s"`
}

// NewScalar pairs s with the coordinates of f.
func NewScalar(f *field.Field, s *mat.Dense) Scalar {
	return Scalar{X: Matrix{f.X}, Y: Matrix{f.Y}, S: Matrix{s}}
}
