// SPDX-License-Identifier: MIT

package interp

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// element is one Clough–Tocher macro-triangle: vertex positions, values and
// gradients. The cubic patches are built on the split at the centroid.
type element struct {
	p [3]r2.Vec
	f [3]float64
	g [3]r2.Vec
}

// eval returns the macro-element value at p (p must lie in the triangle).
//
// Bézier ordinates of the sub-triangle (Pi, Pj, C), C the centroid:
//
//	b300=f_i  b030=f_j  b003=S
//	b210=e_ij b120=e_ji b201=q_i b021=q_j
//	b111=T_k  b102=r_i  b012=r_j
//
// e and q follow from the vertex gradients, T_k from a linear cross-edge
// normal derivative, r and S from the C1 conditions across the split.
func (e *element) eval(p r2.Vec) float64 {
	c := r2.Scale(1.0/3, r2.Add(r2.Add(e.p[0], e.p[1]), e.p[2]))

	// Edge ordinates e[i][j] next to vertex i on edge i→j, and q[i] toward C.
	var edge [3][3]float64
	var q [3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i != j {
				edge[i][j] = e.f[i] + r2.Dot(e.g[i], r2.Sub(e.p[j], e.p[i]))/3
			}
		}
		q[i] = e.f[i] + r2.Dot(e.g[i], r2.Sub(c, e.p[i]))/3
	}

	// Face ordinate of the sub-triangle opposite vertex k.
	var face [3]float64
	for k := 0; k < 3; k++ {
		i, j := (k+1)%3, (k+2)%3
		d := r2.Sub(e.p[j], e.p[i])
		l := r2.Norm(d)
		t := r2.Scale(1/l, d)
		n := r2.Vec{X: -t.Y, Y: t.X}
		u := r2.Sub(c, e.p[i])
		a, b := r2.Dot(u, n), r2.Dot(u, t)
		ni, nj := r2.Dot(e.g[i], n), r2.Dot(e.g[j], n)
		face[k] = edge[i][j] + a*(ni+nj)/6 + b/l*(edge[j][i]-edge[i][j])
	}

	// Ordinates next to the centroid, then the centroid value.
	var r [3]float64
	for i := 0; i < 3; i++ {
		j, k := (i+1)%3, (i+2)%3
		// sub-triangles (i,j,C) and (k,i,C) are opposite k and j
		r[i] = (q[i] + face[k] + face[j]) / 3
	}
	s := (r[0] + r[1] + r[2]) / 3

	// Barycentric coordinates in the macro-triangle pick the sub-triangle.
	l0, l1, l2 := barycentric(p, e.p[0], e.p[1], e.p[2])
	lam := [3]float64{l0, l1, l2}
	k := 0
	if lam[1] < lam[k] {
		k = 1
	}
	if lam[2] < lam[k] {
		k = 2
	}
	i, j := (k+1)%3, (k+2)%3
	mi, mj, mc := lam[i]-lam[k], lam[j]-lam[k], 3*lam[k]

	return mi*mi*mi*e.f[i] + mj*mj*mj*e.f[j] + mc*mc*mc*s +
		3*mi*mi*mj*edge[i][j] + 3*mi*mj*mj*edge[j][i] +
		3*mi*mi*mc*q[i] + 3*mj*mj*mc*q[j] +
		6*mi*mj*mc*face[k] +
		3*mi*mc*mc*r[i] + 3*mj*mc*mc*r[j]
}

// barycentric returns the barycentric coordinates of p in triangle (a, b, c).
func barycentric(p, a, b, c r2.Vec) (l0, l1, l2 float64) {
	v0, v1, v2 := r2.Sub(b, a), r2.Sub(c, a), r2.Sub(p, a)
	den := v0.X*v1.Y - v1.X*v0.Y
	if den == 0 {
		return math.NaN(), math.NaN(), math.NaN()
	}
	l1 = (v2.X*v1.Y - v1.X*v2.Y) / den
	l2 = (v0.X*v2.Y - v2.X*v0.Y) / den

	return 1 - l1 - l2, l1, l2
}
