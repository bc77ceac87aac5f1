// SPDX-License-Identifier: MIT

package interp

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
)

// hullTol is the tolerance, relative to the extreme cell size, by which a
// query may fall outside the sample box and still be evaluated (clamped).
const hullTol = 1e-9

// CloughTocher is a C1 piecewise-cubic interpolant over a rectilinear sample set.
// It is immutable after construction and safe for concurrent use.
type CloughTocher struct {
	xs, ys []float64  // strictly increasing axes
	f      []float64  // row-major values, len(ys)×len(xs)
	grad   []r2.Vec   // nodal gradient estimates, same layout as f
	tolX   [2]float64 // hull tolerance at the low/high x edge
	tolY   [2]float64 // hull tolerance at the low/high y edge
}

// NewCloughTocher builds the interpolant for values sampled at (xs[j], ys[i]),
// stored row-major: values[i*len(xs)+j]. Axes may be increasing or
// decreasing; the input slices are not retained.
//
// Stage 1 (Validate): axis lengths, value count, monotonicity.
// Stage 2 (Normalize): copy into increasing axis order.
// Stage 3 (Prepare): estimate nodal gradients.
func NewCloughTocher(xs, ys, values []float64) (*CloughTocher, error) {
	nx, ny := len(xs), len(ys)
	if nx < 2 || ny < 2 {
		return nil, ErrTooFewSamples
	}
	if len(values) != nx*ny {
		return nil, ErrShape
	}
	revX, okX := direction(xs)
	revY, okY := direction(ys)
	if !okX || !okY {
		return nil, ErrUnsorted
	}

	ct := &CloughTocher{
		xs: make([]float64, nx),
		ys: make([]float64, ny),
		f:  make([]float64, nx*ny),
	}
	for j := 0; j < nx; j++ {
		ct.xs[j] = xs[flip(j, nx, revX)]
	}
	for i := 0; i < ny; i++ {
		ct.ys[i] = ys[flip(i, ny, revY)]
	}
	for i := 0; i < ny; i++ {
		si := flip(i, ny, revY)
		for j := 0; j < nx; j++ {
			ct.f[i*nx+j] = values[si*nx+flip(j, nx, revX)]
		}
	}
	ct.tolX = [2]float64{hullTol * (ct.xs[1] - ct.xs[0]), hullTol * (ct.xs[nx-1] - ct.xs[nx-2])}
	ct.tolY = [2]float64{hullTol * (ct.ys[1] - ct.ys[0]), hullTol * (ct.ys[ny-1] - ct.ys[ny-2])}
	ct.grad = estimateGradients(ct.xs, ct.ys, ct.f)

	return ct, nil
}

// direction reports whether s is decreasing, and whether it is strictly monotonic at all.
func direction(s []float64) (reversed, ok bool) {
	reversed = s[1] < s[0]
	for i := 1; i < len(s); i++ {
		if reversed && !(s[i] < s[i-1]) || !reversed && !(s[i] > s[i-1]) {
			return reversed, false
		}
	}

	return reversed, true
}

// flip maps index i onto a reversed axis of length n when rev is set.
func flip(i, n int, rev bool) int {
	if rev {
		return n - 1 - i
	}

	return i
}

// Bounds returns the sample box [xmin, xmax] × [ymin, ymax].
func (ct *CloughTocher) Bounds() (xmin, xmax, ymin, ymax float64) {
	return ct.xs[0], ct.xs[len(ct.xs)-1], ct.ys[0], ct.ys[len(ct.ys)-1]
}

// At evaluates the interpolant at (x, y). Outside the sample hull it returns NaN.
func (ct *CloughTocher) At(x, y float64) float64 {
	j, ok := locate(ct.xs, x, ct.tolX)
	if !ok {
		return math.NaN()
	}
	i, ok := locate(ct.ys, y, ct.tolY)
	if !ok {
		return math.NaN()
	}
	nx := len(ct.xs)

	// Clamp onto the cell so that tolerance-accepted points stay inside.
	p := r2.Vec{
		X: math.Min(math.Max(x, ct.xs[j]), ct.xs[j+1]),
		Y: math.Min(math.Max(y, ct.ys[i]), ct.ys[i+1]),
	}
	a := i*nx + j     // (xs[j],   ys[i])
	b := i*nx + j + 1 // (xs[j+1], ys[i])
	c := b + nx       // (xs[j+1], ys[i+1])
	d := a + nx       // (xs[j],   ys[i+1])

	s := (p.X - ct.xs[j]) / (ct.xs[j+1] - ct.xs[j])
	t := (p.Y - ct.ys[i]) / (ct.ys[i+1] - ct.ys[i])
	if s >= t {
		return ct.triangle(p, a, b, c)
	}

	return ct.triangle(p, a, c, d)
}

// node returns the position of row-major node index k.
func (ct *CloughTocher) node(k int) r2.Vec {
	nx := len(ct.xs)

	return r2.Vec{X: ct.xs[k%nx], Y: ct.ys[k/nx]}
}

// triangle evaluates the macro-element of the triangle with node indices n0, n1, n2.
func (ct *CloughTocher) triangle(p r2.Vec, n0, n1, n2 int) float64 {
	e := element{
		p: [3]r2.Vec{ct.node(n0), ct.node(n1), ct.node(n2)},
		f: [3]float64{ct.f[n0], ct.f[n1], ct.f[n2]},
		g: [3]r2.Vec{ct.grad[n0], ct.grad[n1], ct.grad[n2]},
	}

	return e.eval(p)
}

// locate returns the lower index of the interval of axis containing v.
// Values within tol of the ends are accepted; beyond that ok is false.
func locate(axis []float64, v float64, tol [2]float64) (int, bool) {
	n := len(axis)
	if !(v >= axis[0]-tol[0]) || !(v <= axis[n-1]+tol[1]) { // NaN fails both
		return 0, false
	}
	k := sort.SearchFloat64s(axis, v) // first index with axis[k] >= v
	k--
	if k < 0 {
		k = 0
	}
	if k > n-2 {
		k = n - 2
	}

	return k, true
}

// EvalGrid evaluates the interpolant on the meshgrid of xs × ys.
// The result has len(ys) rows and len(xs) columns.
func (ct *CloughTocher) EvalGrid(xs, ys []float64) (*mat.Dense, error) {
	if len(xs) == 0 || len(ys) == 0 {
		return nil, ErrEmptyTarget
	}
	out := mat.NewDense(len(ys), len(xs), nil)
	for i, y := range ys {
		row := out.RawRowView(i)
		for j, x := range xs {
			row[j] = ct.At(x, y)
		}
	}

	return out, nil
}
