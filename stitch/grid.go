// SPDX-License-Identifier: MIT

package stitch

import (
	"math"

	"github.com/katalvlaran/pivkit/field"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// snapTol is the relative tolerance under which span/step counts as whole.
const snapTol = 1e-9

// Footprint is what the grid unifier needs to know about one input field.
type Footprint struct {
	Bounds field.Bounds
	Dx, Dy float64
}

// FootprintOf returns the field-of-view and first-step spacing of f.
func FootprintOf(f *field.Field) Footprint {
	dx, dy := f.Spacing()

	return Footprint{Bounds: f.Bounds(), Dx: dx, Dy: dy}
}

// Grid is the unified rectilinear output grid.
// Xs and Ys are increasing node coordinates; Dx and Dy are the design steps.
type Grid struct {
	Xs, Ys []float64
	Dx, Dy float64
}

// Shape returns the node counts (rows = len(Ys), cols = len(Xs)).
func (g Grid) Shape() (rows, cols int) { return len(g.Ys), len(g.Xs) }

// Bounds returns the extent covered by the grid nodes.
func (g Grid) Bounds() field.Bounds {
	return field.Bounds{XMin: g.Xs[0], XMax: g.Xs[len(g.Xs)-1], YMin: g.Ys[0], YMax: g.Ys[len(g.Ys)-1]}
}

// Meshgrid expands the node vectors into X and Y arrays.
func (g Grid) Meshgrid() (x, y *mat.Dense) { return field.Meshgrid(g.Xs, g.Ys) }

// UnifyGrid builds the grid spanning the union of a and b.
//
// Stage 1 (Step): dx, dy = the larger spacing of the two inputs per axis.
// Stage 2 (Extent): union box; each upper bound is padded so that span/step
// is a whole number (near-whole ratios are snapped, not padded). Padding by
// whole steps can give one more node per axis than a fractional pad would.
// Stage 3 (Nodes): n = round(spanX/dx) + 1 columns. Rows reuse n unless
// WithIndependentAxes is set, in which case rows = round(spanY/dy) + 1.
//
// Complexity: O(rows + cols).
func UnifyGrid(a, b Footprint, opts ...Option) (Grid, error) {
	o := gatherOptions(opts)
	dx, dy := math.Max(a.Dx, b.Dx), math.Max(a.Dy, b.Dy)
	if !validStep(dx) || !validStep(dy) {
		return Grid{}, stageErrorf(stageUnify, 0, ErrBadSpacing)
	}

	u := a.Bounds.Union(b.Bounds)
	xmax, nx := padUpper(u.XMin, u.XMax, dx)
	ymax, ny := padUpper(u.YMin, u.YMax, dy)
	if !o.independentAxes {
		ny = nx
	}

	g := Grid{
		Xs: floats.Span(make([]float64, nx+1), u.XMin, xmax),
		Ys: floats.Span(make([]float64, ny+1), u.YMin, ymax),
		Dx: dx,
		Dy: dy,
	}

	return g, nil
}

// validStep reports whether s is a usable grid step.
func validStep(s float64) bool {
	return s > 0 && !math.IsInf(s, 0) && !math.IsNaN(s)
}

// padUpper returns the padded upper bound and the whole number of steps in [lo, hi].
// The result always has at least one step.
func padUpper(lo, hi, step float64) (float64, int) {
	n := (hi - lo) / step
	k := math.Round(n)
	if math.Abs(n-k) <= snapTol*math.Max(1, n) {
		n = k
	} else {
		n = math.Ceil(n)
	}
	if n < 1 {
		n = 1
	}

	return lo + n*step, int(n)
}
