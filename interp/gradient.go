// SPDX-License-Identifier: MIT

package interp

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
)

// estimateGradients fits a local polynomial around every node and returns
// its gradient there. Layout matches f (row-major, len(ys)×len(xs)).
func estimateGradients(xs, ys, f []float64) []r2.Vec {
	nx, ny := len(xs), len(ys)
	g := make([]r2.Vec, nx*ny)
	for i := 0; i < ny; i++ {
		for j := 0; j < nx; j++ {
			g[i*nx+j] = fitGradient(xs, ys, f, i, j)
		}
	}

	return g
}

// stencil returns the [lo, hi] index range of a 3-wide window around k,
// shifted inward at the borders; axes of length 2 give the whole axis.
func stencil(k, n int) (lo, hi int) {
	if n < 3 {
		return 0, n - 1
	}
	lo = k - 1
	if lo < 0 {
		lo = 0
	}
	if lo > n-3 {
		lo = n - 3
	}

	return lo, lo + 2
}

// fitGradient least-squares fits
//
//	f ≈ c0 + c1·dx + c2·dy + c3·dx·dy [+ c4·dx²] [+ c5·dy²]
//
// over the stencil of node (i, j), with dx, dy centred on the node and
// scaled by the stencil extent; the squared terms are used only when the
// stencil spans three samples on that axis. The gradient is (c1/hx, c2/hy).
// A rank-deficient fit falls back to a plane, then to a zero gradient.
func fitGradient(xs, ys, f []float64, i, j int) r2.Vec {
	nx := len(xs)
	r0, r1 := stencil(i, len(ys))
	c0, c1 := stencil(j, nx)
	hx, hy := xs[c1]-xs[c0], ys[r1]-ys[r0]
	quadX, quadY := c1-c0 == 2, r1-r0 == 2

	n := (r1 - r0 + 1) * (c1 - c0 + 1)
	dx := make([]float64, 0, n)
	dy := make([]float64, 0, n)
	b := make([]float64, 0, n)
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			dx = append(dx, (xs[c]-xs[j])/hx)
			dy = append(dy, (ys[r]-ys[i])/hy)
			b = append(b, f[r*nx+c])
		}
	}

	terms := func(k int, full bool) []float64 {
		row := []float64{1, dx[k], dy[k]}
		if !full {
			return row
		}
		row = append(row, dx[k]*dy[k])
		if quadX {
			row = append(row, dx[k]*dx[k])
		}
		if quadY {
			row = append(row, dy[k]*dy[k])
		}
		return row
	}

	for _, full := range []bool{true, false} {
		m := len(terms(0, full))
		a := mat.NewDense(n, m, nil)
		for k := 0; k < n; k++ {
			a.SetRow(k, terms(k, full))
		}
		var sol mat.VecDense
		if err := sol.SolveVec(a, mat.NewVecDense(n, b)); err != nil && !usable(err) {
			continue
		}

		return r2.Vec{X: sol.AtVec(1) / hx, Y: sol.AtVec(2) / hy}
	}

	return r2.Vec{}
}

// usable reports whether a solve error is only a finite conditioning warning.
func usable(err error) bool {
	var cond mat.Condition
	if errors.As(err, &cond) {
		return !math.IsInf(float64(cond), 0)
	}

	return false
}
