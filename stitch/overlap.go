// SPDX-License-Identifier: MIT

package stitch

import (
	"sort"

	"github.com/katalvlaran/pivkit/field"
)

// nodeTol is the tolerance, relative to the grid step, that absorbs linspace
// rounding when comparing node coordinates against field bounds.
const nodeTol = 1e-9

// Window is a half-open index range [Row0, Row1) × [Col0, Col1) on a Grid.
type Window struct {
	Row0, Row1 int
	Col0, Col1 int
}

// Rows returns the window height (never negative).
func (w Window) Rows() int { return max(w.Row1-w.Row0, 0) }

// Cols returns the window width (never negative).
func (w Window) Cols() int { return max(w.Col1-w.Col0, 0) }

// Empty reports a zero or negative extent on either axis.
func (w Window) Empty() bool { return w.Rows() == 0 || w.Cols() == 0 }

// Nodes returns the grid coordinates covered by w.
func (w Window) Nodes(g Grid) (xs, ys []float64) {
	return g.Xs[w.Col0:w.Col1], g.Ys[w.Row0:w.Row1]
}

// Layout places both fields and their overlap on the unified grid.
type Layout struct {
	Field1, Field2 Window
	Overlap        Window
}

// HasOverlap reports whether a blend region exists.
func (l Layout) HasOverlap() bool { return !l.Overlap.Empty() }

// side restricts a nearest-node search to one side of the target.
type side int

const (
	anySide   side = iota // plain nearest node
	atOrAbove             // nearest node with coordinate >= target
	atOrBelow             // nearest node with coordinate <= target
)

// nearestIndex finds the node of the increasing sequence nodes closest to
// target, restricted by s. Ties resolve to the lower index. ok is false when
// no node satisfies the restriction.
func nearestIndex(nodes []float64, target float64, s side, tol float64) (int, bool) {
	n := len(nodes)
	switch s {
	case atOrAbove:
		k := sort.SearchFloat64s(nodes, target-tol)
		return k, k < n
	case atOrBelow:
		k := sort.Search(n, func(i int) bool { return nodes[i] > target+tol }) - 1
		return k, k >= 0
	}

	k := sort.SearchFloat64s(nodes, target)
	switch {
	case k == 0:
		return 0, n > 0
	case k == n:
		return n - 1, true
	case target-nodes[k-1] <= nodes[k]-target:
		return k - 1, true
	default:
		return k, true
	}
}

// footprint returns the window spanned by b: nearest node to each bound.
func footprint(g Grid, b field.Bounds) Window {
	c0, _ := nearestIndex(g.Xs, b.XMin, anySide, 0)
	c1, _ := nearestIndex(g.Xs, b.XMax, anySide, 0)
	r0, _ := nearestIndex(g.Ys, b.YMin, anySide, 0)
	r1, _ := nearestIndex(g.Ys, b.YMax, anySide, 0)

	return Window{Row0: r0, Row1: r1 + 1, Col0: c0, Col1: c1 + 1}
}

// Locate computes the footprint of each field and their overlap window.
//
// Footprint edges are the nodes nearest each bound, except field 2's low x
// edge, which is the nearest node at or above b2.XMin: field 2 is pasted
// after field 1, so a column left of its samples would overwrite field 1
// with NaN.
//
// The overlap's low edge is the node nearest the larger of the two minima,
// searched among nodes at or above it; the high edge is the node nearest the
// smaller of the two maxima, searched among nodes at or below it. Disjoint
// fields, or an overlap containing no node, yield an empty Overlap.
func Locate(g Grid, b1, b2 field.Bounds) Layout {
	// Row spacing differs from Dy on square grids; use the actual node steps.
	tx, ty := nodeTol*(g.Xs[1]-g.Xs[0]), nodeTol*(g.Ys[1]-g.Ys[0])

	l := Layout{Field1: footprint(g, b1), Field2: footprint(g, b2)}
	if c, ok := nearestIndex(g.Xs, b2.XMin, atOrAbove, tx); ok && c < l.Field2.Col1 {
		l.Field2.Col0 = c
	}
	in, ok := b1.Intersect(b2)
	if !ok {
		return l
	}

	c0, ok0 := nearestIndex(g.Xs, in.XMin, atOrAbove, tx)
	c1, ok1 := nearestIndex(g.Xs, in.XMax, atOrBelow, tx)
	r0, ok2 := nearestIndex(g.Ys, in.YMin, atOrAbove, ty)
	r1, ok3 := nearestIndex(g.Ys, in.YMax, atOrBelow, ty)
	w := Window{Row0: r0, Row1: r1 + 1, Col0: c0, Col1: c1 + 1}
	if ok0 && ok1 && ok2 && ok3 && !w.Empty() {
		l.Overlap = w
	}

	return l
}
