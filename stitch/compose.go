// SPDX-License-Identifier: MIT

package stitch

import "gonum.org/v1/gonum/mat"

// Compose writes the resampled fields into zero-initialised arrays of the
// grid shape.
//
// Order matters and is fixed:
//  1. field 1 over its footprint;
//  2. field 2 over its footprint, overwriting shared nodes;
//  3. the overlap window, when present and w is non-nil, with
//     f1·W2 + f2·W1 (or f1·W1 + f2·W2 with WithCorrectedWeights).
//
// NaN inputs propagate unchanged.
func Compose(g Grid, l Layout, r Resampled, w *Weights, opts ...Option) (u, v *mat.Dense) {
	o := gatherOptions(opts)
	rows, cols := g.Shape()
	u = mat.NewDense(rows, cols, nil)
	v = mat.NewDense(rows, cols, nil)

	paste(u, l.Field1, r.Footprint[0].U)
	paste(v, l.Field1, r.Footprint[0].V)
	paste(u, l.Field2, r.Footprint[1].U)
	paste(v, l.Field2, r.Footprint[1].V)

	if !l.HasOverlap() || w == nil {
		return u, v
	}
	w1, w2 := w.W2, w.W1
	if o.correctedWeights {
		w1, w2 = w.W1, w.W2
	}
	paste(u, l.Overlap, blend(r.Overlap[0].U, r.Overlap[1].U, w1, w2))
	paste(v, l.Overlap, blend(r.Overlap[0].V, r.Overlap[1].V, w1, w2))

	return u, v
}

// blend returns a∘wa + b∘wb.
func blend(a, b, wa, wb *mat.Dense) *mat.Dense {
	var x, y mat.Dense
	x.MulElem(a, wa)
	y.MulElem(b, wb)
	x.Add(&x, &y)

	return &x
}

// paste copies src into the w window of dst.
func paste(dst *mat.Dense, w Window, src *mat.Dense) {
	if w.Empty() || src == nil {
		return
	}
	view := dst.Slice(w.Row0, w.Row1, w.Col0, w.Col1).(*mat.Dense)
	view.Copy(src)
}
