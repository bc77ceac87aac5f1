// Package interp resamples rectilinear sample sets with the Clough–Tocher
// C1 cubic scheme, the "cubic" flavour of scattered-data interpolation.
//
// What:
//
//   - The samples are triangulated by splitting every grid cell along its
//     (lower-left, upper-right) diagonal. For rectilinear point sets this is a
//     Delaunay triangulation.
//   - Nodal gradients are estimated by a local least-squares polynomial fit
//     (gonum/mat QR) over a 3×3 stencil shifted inward at the borders.
//   - Each triangle carries a Clough–Tocher macro-element: three cubic
//     Bernstein–Bézier patches meeting at the centroid, C1 inside the
//     triangle and across shared edges.
//
// Guarantees:
//
//   - Sample values are reproduced exactly at the nodes.
//   - Any quadratic polynomial is reproduced exactly everywhere.
//   - Points outside the convex hull (the sample bounding box, with a tiny
//     tolerance) evaluate to NaN. NaN sample values propagate.
//
// Complexity:
//
//   - NewCloughTocher: O(N) time and memory (N = number of samples).
//   - At:              O(log W + log H) for the cell search, O(1) evaluation.
//
// Errors:
//
//   - ErrTooFewSamples: fewer than 2 distinct coordinates on an axis.
//   - ErrShape:         len(values) != len(xs)*len(ys).
//   - ErrUnsorted:      an axis is not strictly monotonic.
package interp
