// Package calculus derives scalar fields from a field.Field: in-plane
// divergence, out-of-plane vorticity and the stream function, plus the
// integrated kinetic energy and enstrophy of a plane.
//
// 📐 Differences
//
// Derivatives follow the usual array-gradient convention: second-order
// central differences at interior nodes (exact for quadratics, also on
// non-uniform spacing) and first-order one-sided differences on the edges.
// Each component is differentiated against its own axis coordinates, so
// descending axes and uneven spacing need no special handling.
//
// 🌊 Stream function
//
//	ψ(x, y) = ∫ u dy − ∫ v dx
//
// The u-integral runs up each column from the row with the smallest y; the
// v-integral runs along that row from the first column. Both use the
// cumulative trapezoid rule, and ψ is zero at the starting node.
//
// Complexity: O(r·c) time and one r×c output per call.
//
// Errors:
//
//   - ErrNilField: the input is nil.
//   - field sentinels (ErrShapeMismatch, ErrNotMeshgrid, ...) when the
//     input does not validate.
//
// NaN samples propagate into every derived value that touches them.
package calculus
