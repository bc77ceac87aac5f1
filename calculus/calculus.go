// SPDX-License-Identifier: MIT

package calculus

import (
	"github.com/katalvlaran/pivkit/field"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Divergence returns ∂u/∂x + ∂v/∂y on the nodes of f.
func Divergence(f *field.Field) (*mat.Dense, error) {
	if err := validate("divergence", f); err != nil {
		return nil, err
	}
	div := ddx(f.U, f.XAxis())
	div.Add(div, ddy(f.V, f.YAxis()))

	return div, nil
}

// Vorticity returns the out-of-plane component ∂v/∂x − ∂u/∂y.
func Vorticity(f *field.Field) (*mat.Dense, error) {
	if err := validate("vorticity", f); err != nil {
		return nil, err
	}
	w := ddx(f.V, f.XAxis())
	w.Sub(w, ddy(f.U, f.YAxis()))

	return w, nil
}

// StreamFunction integrates ψ = ∫ u dy − ∫ v dx with the cumulative
// trapezoid rule, starting from the first column of the row with the
// smallest y (ψ = 0 there). Rows keep the input order.
//
// The result is a stream function only where the flow is divergence-free;
// elsewhere it depends on the integration path.
func StreamFunction(f *field.Field) (*mat.Dense, error) {
	if err := validate("stream function", f); err != nil {
		return nil, err
	}
	r, c := f.Shape()
	xs, ys := f.XAxis(), f.YAxis()

	// Walk rows from the smallest y upwards.
	order := make([]int, r)
	for k := range order {
		order[k] = k
		if ys[r-1] < ys[0] {
			order[k] = r - 1 - k
		}
	}
	r0 := order[0]

	base := make([]float64, c)
	floats.Sub(base, cumtrapz(f.V.RawRowView(r0), xs))

	psi := mat.NewDense(r, c, nil)
	psi.SetRow(r0, base)
	for k := 1; k < r; k++ {
		prev, cur := order[k-1], order[k]
		h := ys[cur] - ys[prev]
		for j := 0; j < c; j++ {
			step := 0.5 * h * (f.U.At(prev, j) + f.U.At(cur, j))
			psi.Set(cur, j, psi.At(prev, j)+step)
		}
	}

	return psi, nil
}

// cumtrapz returns the running trapezoid integral of y over x, starting at 0.
func cumtrapz(y, x []float64) []float64 {
	out := make([]float64, len(y))
	for i := 1; i < len(y); i++ {
		out[i] = out[i-1] + 0.5*(x[i]-x[i-1])*(y[i]+y[i-1])
	}

	return out
}

// KineticEnergy returns ½·Σ(u²+v²)·dx·dy over the plane, with the
// first-step spacing of f as the cell size.
func KineticEnergy(f *field.Field) (float64, error) {
	if err := validate("kinetic energy", f); err != nil {
		return 0, err
	}
	_, _, u, v := f.Samples()
	dx, dy := f.Spacing()

	return 0.5 * (floats.Dot(u, u) + floats.Dot(v, v)) * dx * dy, nil
}

// Enstrophy returns ½·Σω²·dx·dy, ω the vorticity of f.
func Enstrophy(f *field.Field) (float64, error) {
	w, err := Vorticity(f)
	if err != nil {
		return 0, err
	}
	dx, dy := f.Spacing()
	raw := w.RawMatrix().Data

	return 0.5 * floats.Dot(raw, raw) * dx * dy, nil
}
