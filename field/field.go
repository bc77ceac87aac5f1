// SPDX-License-Identifier: MIT

package field

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// meshTol is the relative tolerance (of an axis span) used when checking
// that coordinates follow the meshgrid layout.
const meshTol = 1e-9

// Field is a planar vector field on a rectilinear grid.
// X[i,j] and Y[i,j] are the coordinates of sample (row i, column j);
// U and V are the velocity components there. All four share one shape.
//
// A Field built by New is immutable by convention: algorithms in pivkit
// never write to its arrays.
type Field struct {
	X, Y *mat.Dense
	U, V *mat.Dense
}

// New validates the meshgrid arrays and returns a Field referencing them.
//
// Validation order: nil → shape → size → finite coordinates → meshgrid
// layout → monotonic axes. Component values are not inspected; NaN and the
// masked-sample zero are legal there.
//
// Complexity: O(r*c).
func New(x, y, u, v *mat.Dense) (*Field, error) {
	arrays := []struct {
		name string
		m    *mat.Dense
	}{{"x", x}, {"y", y}, {"u", u}, {"v", v}}
	for _, a := range arrays {
		if a.m == nil {
			return nil, fieldErrorf(a.name, ErrNilArray)
		}
	}
	r, c := x.Dims()
	for _, a := range arrays[1:] {
		if ar, ac := a.m.Dims(); ar != r || ac != c {
			return nil, fieldErrorf(a.name, ErrShapeMismatch)
		}
	}
	if r < 2 || c < 2 {
		return nil, ErrTooSmall
	}

	f := &Field{X: x, Y: y, U: u, V: v}
	if err := f.validateCoordinates(); err != nil {
		return nil, err
	}

	return f, nil
}

// validateCoordinates checks finiteness, meshgrid layout and monotonicity.
func (f *Field) validateCoordinates() error {
	r, c := f.X.Dims()
	xs, ys := f.XAxis(), f.YAxis()
	for _, v := range xs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fieldErrorf("x", ErrNonFinite)
		}
	}
	for _, v := range ys {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fieldErrorf("y", ErrNonFinite)
		}
	}
	if !strictlyMonotonic(xs) {
		return fieldErrorf("x", ErrNotMonotonic)
	}
	if !strictlyMonotonic(ys) {
		return fieldErrorf("y", ErrNotMonotonic)
	}

	tolX := meshTol * math.Abs(xs[c-1]-xs[0])
	tolY := meshTol * math.Abs(ys[r-1]-ys[0])
	for i := 1; i < r; i++ {
		if !floats.EqualApprox(f.X.RawRowView(i), xs, tolX) {
			return fieldErrorf("x", ErrNotMeshgrid)
		}
	}
	for i := 0; i < r; i++ {
		row := f.Y.RawRowView(i)
		for j := 1; j < c; j++ {
			if math.Abs(row[j]-ys[i]) > tolY {
				return fieldErrorf("y", ErrNotMeshgrid)
			}
		}
	}

	return nil
}

// strictlyMonotonic reports whether s is strictly increasing or strictly decreasing.
func strictlyMonotonic(s []float64) bool {
	inc := s[1] > s[0]
	for i := 1; i < len(s); i++ {
		if inc && !(s[i] > s[i-1]) {
			return false
		}
		if !inc && !(s[i] < s[i-1]) {
			return false
		}
	}

	return true
}

// Shape returns the number of rows and columns.
func (f *Field) Shape() (rows, cols int) { return f.X.Dims() }

// XAxis returns a copy of the column coordinates (first row of X).
func (f *Field) XAxis() []float64 {
	_, c := f.X.Dims()
	xs := make([]float64, c)
	copy(xs, f.X.RawRowView(0))

	return xs
}

// YAxis returns a copy of the row coordinates (first column of Y).
func (f *Field) YAxis() []float64 {
	r, _ := f.Y.Dims()
	ys := make([]float64, r)
	mat.Col(ys, 0, f.Y)

	return ys
}

// Spacing returns the absolute first-step spacing along x and y:
// |X[0,1]-X[0,0]| and |Y[1,0]-Y[0,0]|.
func (f *Field) Spacing() (dx, dy float64) {
	return math.Abs(f.X.At(0, 1) - f.X.At(0, 0)), math.Abs(f.Y.At(1, 0) - f.Y.At(0, 0))
}

// Bounds returns the field-of-view of f.
func (f *Field) Bounds() Bounds {
	xs, ys := f.XAxis(), f.YAxis()

	return Bounds{
		XMin: floats.Min(xs), XMax: floats.Max(xs),
		YMin: floats.Min(ys), YMax: floats.Max(ys),
	}
}

// Samples returns the flattened (row-major) coordinates and components.
// The slices are fresh copies.
func (f *Field) Samples() (x, y, u, v []float64) {
	flat := func(m *mat.Dense) []float64 {
		r, c := m.Dims()
		out := make([]float64, 0, r*c)
		for i := 0; i < r; i++ {
			out = append(out, m.RawRowView(i)...)
		}
		return out
	}

	return flat(f.X), flat(f.Y), flat(f.U), flat(f.V)
}

// SameShape returns ErrShapeMismatch when f and o differ in shape.
func (f *Field) SameShape(o *Field) error {
	r1, c1 := f.Shape()
	r2, c2 := o.Shape()
	if r1 != r2 || c1 != c2 {
		return ErrShapeMismatch
	}

	return nil
}
