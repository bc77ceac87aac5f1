// SPDX-License-Identifier: MIT

package calculus

import "gonum.org/v1/gonum/mat"

// derivative writes d(f)/d(x) into dst; len(f) == len(x) >= 2.
//
// Interior nodes use the three-point formula on uneven steps
// hl = x[i]-x[i-1], hr = x[i+1]-x[i]:
//
//	f'(x_i) ≈ −hr/(hl(hl+hr))·f[i-1] + (hr−hl)/(hl·hr)·f[i] + hl/(hr(hl+hr))·f[i+1]
func derivative(dst, f, x []float64) {
	n := len(f)
	dst[0] = (f[1] - f[0]) / (x[1] - x[0])
	dst[n-1] = (f[n-1] - f[n-2]) / (x[n-1] - x[n-2])
	for i := 1; i < n-1; i++ {
		hl, hr := x[i]-x[i-1], x[i+1]-x[i]
		dst[i] = -hr/(hl*(hl+hr))*f[i-1] + (hr-hl)/(hl*hr)*f[i] + hl/(hr*(hl+hr))*f[i+1]
	}
}

// ddx differentiates m along its columns (x varies by column).
func ddx(m *mat.Dense, xs []float64) *mat.Dense {
	r, c := m.Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		derivative(out.RawRowView(i), m.RawRowView(i), xs)
	}

	return out
}

// ddy differentiates m along its rows (y varies by row).
func ddy(m *mat.Dense, ys []float64) *mat.Dense {
	r, c := m.Dims()
	out := mat.NewDense(r, c, nil)
	col := make([]float64, r)
	d := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, m)
		derivative(d, col, ys)
		out.SetCol(j, d)
	}

	return out
}
