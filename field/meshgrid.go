// SPDX-License-Identifier: MIT

package field

import "gonum.org/v1/gonum/mat"

// Meshgrid expands axis vectors into X (varying by column) and Y (varying by row).
// Both results are len(ys) × len(xs). It panics, like mat.NewDense, when
// either axis is empty.
func Meshgrid(xs, ys []float64) (x, y *mat.Dense) {
	r, c := len(ys), len(xs)
	x = mat.NewDense(r, c, nil)
	y = mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		x.SetRow(i, xs)
		row := y.RawRowView(i)
		for j := range row {
			row[j] = ys[i]
		}
	}

	return x, y
}

// FromFunc samples fn on the meshgrid of xs and ys and validates the result.
// It is the quickest way to build synthetic fields for tests and examples.
func FromFunc(xs, ys []float64, fn func(x, y float64) (u, v float64)) (*Field, error) {
	if len(xs) < 2 || len(ys) < 2 {
		return nil, ErrTooSmall
	}
	x, y := Meshgrid(xs, ys)
	r, c := x.Dims()
	u := mat.NewDense(r, c, nil)
	v := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			uu, vv := fn(xs[j], ys[i])
			u.Set(i, j, uu)
			v.Set(i, j, vv)
		}
	}

	return New(x, y, u, v)
}
