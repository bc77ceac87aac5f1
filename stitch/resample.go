// SPDX-License-Identifier: MIT

package stitch

import (
	"github.com/katalvlaran/pivkit/field"
	"github.com/katalvlaran/pivkit/interp"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// Components holds the two velocity components over one window.
type Components struct {
	U, V *mat.Dense
}

// Resampled holds each field interpolated onto its own footprint and onto
// the overlap window. Overlap entries are nil when there is no overlap.
type Resampled struct {
	Footprint [2]Components
	Overlap   [2]Components
}

// resampler interpolates both components of one field.
type resampler struct {
	u, v *interp.CloughTocher
}

// newResampler triangulates f and estimates gradients for U and V.
func newResampler(f *field.Field) (*resampler, error) {
	xs, ys := f.XAxis(), f.YAxis()
	_, _, us, vs := f.Samples()
	u, err := interp.NewCloughTocher(xs, ys, us)
	if err != nil {
		return nil, err
	}
	v, err := interp.NewCloughTocher(xs, ys, vs)
	if err != nil {
		return nil, err
	}

	return &resampler{u: u, v: v}, nil
}

// window evaluates both components on the grid nodes inside w.
func (r *resampler) window(g Grid, w Window) (Components, error) {
	if w.Empty() {
		return Components{}, ErrEmptyWindow
	}
	xs, ys := w.Nodes(g)
	u, err := r.u.EvalGrid(xs, ys)
	if err != nil {
		return Components{}, err
	}
	v, err := r.v.EvalGrid(xs, ys)
	if err != nil {
		return Components{}, err
	}

	return Components{U: u, V: v}, nil
}

// resample runs the interpolation stage: per field, its own footprint and,
// when present, the overlap window. With parallel set the two fields run
// concurrently; the interpolants are read-only so the results are identical.
func resample(f1, f2 *field.Field, g Grid, l Layout, parallel bool) (Resampled, error) {
	var out Resampled
	fields := [2]*field.Field{f1, f2}
	windows := [2]Window{l.Field1, l.Field2}

	run := func(k int) error {
		r, err := newResampler(fields[k])
		if err != nil {
			return stageErrorf(stageInterpolate, k+1, err)
		}
		if out.Footprint[k], err = r.window(g, windows[k]); err != nil {
			return stageErrorf(stageInterpolate, k+1, err)
		}
		if l.HasOverlap() {
			if out.Overlap[k], err = r.window(g, l.Overlap); err != nil {
				return stageErrorf(stageInterpolate, k+1, err)
			}
		}
		return nil
	}

	if !parallel {
		for k := range fields {
			if err := run(k); err != nil {
				return Resampled{}, err
			}
		}
		return out, nil
	}

	var eg errgroup.Group
	for k := range fields {
		eg.Go(func() error { return run(k) })
	}
	if err := eg.Wait(); err != nil {
		return Resampled{}, err
	}

	return out, nil
}
