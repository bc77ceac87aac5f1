// Package pivkit is a toolkit for post-processing planar velocity fields
// from particle image velocimetry (PIV) and CFD exports.
//
// 🚀 What is pivkit?
//
//	A pure-Go library and CLI built on gonum that brings together:
//		• field:    validated meshgrid vector fields (X, Y, U, V)
//		• interp:   piecewise-cubic C1 (Clough–Tocher) resampling
//		• stitch:   merging two overlapping fields with blended seams
//		• calculus: divergence, vorticity, stream function, energy
//		• mask:     connected holes of masked or NaN samples
//		• codec:    JSON wire form with gzip, zstd and lz4 files
//
// ✨ Typical flow
//
//	f1, _ := codec.ReadField("left.json")
//	f2, _ := codec.ReadField("right.json.zst")
//	res, err := stitch.Stitch(f1, f2, stitch.BlendCosine)
//	div, err := calculus.Divergence(res.Field)
//
// The pivkit command (cmd/pivkit) exposes the same operations:
//
//	pivkit stitch -b cosine -o merged.json left.json right.json
//	pivkit divergence --vorticity -o w.json merged.json
//
// Conventions shared by every package:
//
//   - X varies by column and Y by row; either axis may be descending.
//   - NaN marks missing data and propagates; it is never coerced to zero.
//   - Sentinel errors are prefixed with their package name and wrapped with
//     context, so callers match them with errors.Is.
package pivkit
