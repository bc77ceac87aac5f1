// SPDX-License-Identifier: MIT

package stitch

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// BlendMode selects how the overlap combines the two fields.
type BlendMode string

const (
	// BlendNone keeps field-1 weight 1 and field-2 weight 0.
	BlendNone BlendMode = "none"
	// BlendAverage gives both weights 0.5.
	BlendAverage BlendMode = "average"
	// BlendCubic is a linear ramp across the overlap columns (w1: 1→0, w2: 0→1).
	// The name is historical; the weights are not cubic.
	BlendCubic BlendMode = "cubic"
	// BlendCosine is a raised-cosine ramp, θ = 0..π across the overlap columns:
	// w1 = -0.5·cos θ + 0.5, w2 = 0.5·cos θ + 0.5.
	BlendCosine BlendMode = "cosine"
)

// Valid reports whether m is one of the four known modes.
func (m BlendMode) Valid() bool {
	switch m {
	case BlendNone, BlendAverage, BlendCubic, BlendCosine:
		return true
	}

	return false
}

// String implements fmt.Stringer.
func (m BlendMode) String() string { return string(m) }

// Weights is the complementary weight pair over an overlap window.
type Weights struct {
	W1, W2 *mat.Dense
}

// BlendWeights returns the weight pair for a rows×cols overlap.
//
// Each mode defines one weight row across the columns; the row is replicated
// over every overlap row. An unknown mode is not an error: a warning is
// logged and both weights are all-zero.
//
// Errors: ErrEmptyWindow when rows or cols is not positive.
func BlendWeights(rows, cols int, mode BlendMode, opts ...Option) (*Weights, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyWindow
	}
	w, ok := blendWeights(rows, cols, mode)
	if !ok {
		o := gatherOptions(opts)
		o.logger.Warn("invalid blend mode", "mode", string(mode))
	}

	return w, nil
}

// invalidModeWarning is the text recorded in Result.Warnings.
func invalidModeWarning(mode BlendMode) string {
	return fmt.Sprintf("invalid blend mode %q: overlap weights set to zero", string(mode))
}

// blendWeights builds the weights; ok is false for an unknown mode.
func blendWeights(rows, cols int, mode BlendMode) (*Weights, bool) {
	w1 := make([]float64, cols)
	w2 := make([]float64, cols)
	ok := true

	switch mode {
	case BlendNone:
		fill(w1, 1)
	case BlendAverage:
		fill(w1, 0.5)
		fill(w2, 0.5)
	case BlendCubic:
		ramp(w1, 1, 0)
		ramp(w2, 0, 1)
	case BlendCosine:
		ramp(w1, 0, math.Pi)
		for j, theta := range w1 {
			w1[j] = -0.5*math.Cos(theta) + 0.5
			w2[j] = 0.5*math.Cos(theta) + 0.5
		}
	default:
		ok = false
	}

	return &Weights{W1: replicate(rows, w1), W2: replicate(rows, w2)}, ok
}

// fill sets every element of dst to v.
func fill(dst []float64, v float64) {
	for i := range dst {
		dst[i] = v
	}
}

// ramp writes len(dst) evenly spaced values from a to b; a single element is a.
func ramp(dst []float64, a, b float64) {
	if len(dst) == 1 {
		dst[0] = a
		return
	}
	floats.Span(dst, a, b)
}

// replicate stacks row rows times.
func replicate(rows int, row []float64) *mat.Dense {
	m := mat.NewDense(rows, len(row), nil)
	for i := 0; i < rows; i++ {
		m.SetRow(i, row)
	}

	return m
}
