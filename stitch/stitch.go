// SPDX-License-Identifier: MIT

package stitch

import (
	"github.com/katalvlaran/pivkit/field"
)

// Result is the stitched field plus the intermediate geometry, for callers
// that want to inspect or plot the blend region.
type Result struct {
	Field    *field.Field
	Grid     Grid
	Layout   Layout
	Weights  *Weights // nil when the fields do not overlap
	Warnings []string
}

// Stitch merges f1 and f2 onto a unified grid, blending their overlap by mode.
//
// Stage 1 (Validate): both fields are re-validated; errors name the field.
// Stage 2 (Unify):    UnifyGrid over both footprints.
// Stage 3 (Locate):   field and overlap windows.
// Stage 4 (Resample): cubic interpolation per field (optionally parallel).
// Stage 5 (Weights):  BlendWeights, skipped without overlap. An unknown mode
// logs a warning and records it in Result.Warnings.
// Stage 6 (Compose):  field 1, field 2, blended overlap.
//
// Stitch is a pure function of its inputs; it never mutates f1 or f2.
func Stitch(f1, f2 *field.Field, mode BlendMode, opts ...Option) (*Result, error) {
	o := gatherOptions(opts)
	for k, f := range []*field.Field{f1, f2} {
		if f == nil {
			return nil, stageErrorf(stageValidate, k+1, ErrNilField)
		}
		if _, err := field.New(f.X, f.Y, f.U, f.V); err != nil {
			return nil, stageErrorf(stageValidate, k+1, err)
		}
	}

	g, err := UnifyGrid(FootprintOf(f1), FootprintOf(f2), opts...)
	if err != nil {
		return nil, err
	}
	l := Locate(g, f1.Bounds(), f2.Bounds())
	o.logger.Debug("stitch layout",
		"rows", len(g.Ys),
		"cols", len(g.Xs),
		"overlap", l.HasOverlap(),
	)

	r, err := resample(f1, f2, g, l, o.parallel)
	if err != nil {
		return nil, err
	}

	res := &Result{Grid: g, Layout: l}
	if !mode.Valid() {
		o.logger.Warn("invalid blend mode", "mode", string(mode))
		res.Warnings = append(res.Warnings, invalidModeWarning(mode))
	}
	if l.HasOverlap() {
		res.Weights, _ = blendWeights(l.Overlap.Rows(), l.Overlap.Cols(), mode)
	} else {
		o.logger.Debug("fields do not overlap; blending skipped")
	}

	u, v := Compose(g, l, r, res.Weights, opts...)
	x, y := g.Meshgrid()
	if res.Field, err = field.New(x, y, u, v); err != nil {
		return nil, stageErrorf(stageCompose, 0, err)
	}

	return res, nil
}
