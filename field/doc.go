// Package field models planar vector fields sampled on rectilinear grids,
// the common currency of the pivkit post-processing tools.
//
// What:
//
//   - Field holds meshgrid coordinates (X, Y) and two velocity components
//     (U, V), all gonum *mat.Dense of identical shape.
//   - X varies by column and Y varies by row. Spacing may be non-uniform,
//     but each axis must be strictly monotonic.
//   - Bounds is the field-of-view (axis-aligned bounding box) of a Field.
//
// Why:
//
//   - PIV and CFD planes arrive as meshgrid arrays; validating the layout once
//     at construction lets every downstream algorithm index rows and columns
//     without re-checking.
//
// Conventions:
//
//   - Masked ("no data") samples carry the value 0. The package does not
//     treat them specially.
//   - Spacing() reports the first-step spacing of each axis, the sampling
//     convention of the source data.
//
// Errors:
//
//   - ErrNilArray: one of the four arrays is nil.
//   - ErrShapeMismatch: arrays differ in shape.
//   - ErrTooSmall: fewer than 2 rows or 2 columns.
//   - ErrNonFinite: a coordinate is NaN or ±Inf.
//   - ErrNotMeshgrid: X is not constant down columns or Y along rows.
//   - ErrNotMonotonic: an axis is not strictly increasing or decreasing.
package field
