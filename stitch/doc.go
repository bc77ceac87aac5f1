// Package stitch merges two overlapping planar vector fields into one field
// on a common grid, blending the measurements where the fields-of-view overlap.
//
// 🚀 Pipeline (each stage feeds only the next):
//
//  1. UnifyGrid: one rectilinear grid spanning the union of both
//     fields-of-view, at the coarser of the two spacings.
//  2. Locate: index windows of each field and of their overlap on that grid.
//  3. resample: Clough–Tocher cubic interpolation (package interp) of each
//     field onto its own window and onto the overlap window.
//  4. BlendWeights: complementary weight pair for the overlap.
//  5. Compose: field 1 written, then field 2, then the blended overlap.
//
// ⚙️ Usage:
//
//	res, err := stitch.Stitch(left, right, stitch.BlendCosine,
//	  stitch.WithLogger(logger),
//	  stitch.WithParallel(),
//	)
//	if err != nil {
//	  // validation or interpolation failure, wrapped with stage and field
//	}
//	merged := res.Field
//
// Compatibility notes:
//
//   - The grid node count is derived from the x-span and reused for the
//     y-axis. WithIndependentAxes sizes y on its own.
//   - In the overlap each field's value is scaled by the OTHER field's weight:
//     out = f1·W2 + f2·W1. WithCorrectedWeights applies f1·W1 + f2·W2.
//   - An unknown blend mode is not an error: a warning is logged and both
//     weights are zero, so the overlap collapses to 0.
//   - Values outside a field's sample hull are NaN and are never coerced.
//
// Complexity: O(N) in the number of unified grid nodes plus input samples.
package stitch
