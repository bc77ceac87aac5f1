package interp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pivkit/interp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// sample evaluates fn on xs × ys in row-major order.
func sample(xs, ys []float64, fn func(x, y float64) float64) []float64 {
	out := make([]float64, 0, len(xs)*len(ys))
	for _, y := range ys {
		for _, x := range xs {
			out = append(out, fn(x, y))
		}
	}

	return out
}

func quadratic(x, y float64) float64 {
	return 1 + 2*x - 3*y + 0.5*x*x - 0.25*x*y + 1.5*y*y
}

// TestNewCloughTocher_Errors covers the constructor sentinels.
func TestNewCloughTocher_Errors(t *testing.T) {
	cases := []struct {
		name       string
		xs, ys, vs []float64
		err        error
	}{
		{"OneColumn", []float64{0}, []float64{0, 1}, []float64{0, 0}, interp.ErrTooFewSamples},
		{"Shape", []float64{0, 1}, []float64{0, 1}, []float64{0, 0, 0}, interp.ErrShape},
		{"Unsorted", []float64{0, 2, 1}, []float64{0, 1}, make([]float64, 6), interp.ErrUnsorted},
		{"Repeated", []float64{0, 1}, []float64{1, 1}, make([]float64, 4), interp.ErrUnsorted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := interp.NewCloughTocher(tc.xs, tc.ys, tc.vs)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestAt_ReproducesNodes checks that every sample is returned unchanged.
func TestAt_ReproducesNodes(t *testing.T) {
	xs := []float64{0, 0.3, 0.5, 1.2, 2}
	ys := []float64{-1, 0, 0.5, 2}
	fn := func(x, y float64) float64 { return math.Sin(3*x) * math.Cos(2*y) }
	ct, err := interp.NewCloughTocher(xs, ys, sample(xs, ys, fn))
	require.NoError(t, err)

	for _, y := range ys {
		for _, x := range xs {
			assert.InDelta(t, fn(x, y), ct.At(x, y), tol, "node (%g,%g)", x, y)
		}
	}
}

// TestAt_QuadraticExact verifies exact reproduction of a quadratic on a
// non-uniform grid, including cell interiors and diagonals.
func TestAt_QuadraticExact(t *testing.T) {
	xs := []float64{0, 0.4, 1, 1.3, 2, 3.5}
	ys := []float64{0, 0.7, 1, 2.2, 3}
	ct, err := interp.NewCloughTocher(xs, ys, sample(xs, ys, quadratic))
	require.NoError(t, err)

	for x := 0.0; x <= 3.5; x += 0.137 {
		for y := 0.0; y <= 3; y += 0.113 {
			assert.InDelta(t, quadratic(x, y), ct.At(x, y), 1e-9, "(%g,%g)", x, y)
		}
	}
}

// TestAt_BilinearOnTwoByTwo checks the smallest legal sample set.
func TestAt_BilinearOnTwoByTwo(t *testing.T) {
	plane := func(x, y float64) float64 { return 2 - x + 4*y }
	xs, ys := []float64{0, 1}, []float64{0, 1}
	ct, err := interp.NewCloughTocher(xs, ys, sample(xs, ys, plane))
	require.NoError(t, err)

	assert.InDelta(t, plane(0.25, 0.6), ct.At(0.25, 0.6), tol)
	assert.InDelta(t, plane(0.9, 0.1), ct.At(0.9, 0.1), tol)
}

// TestAt_OutsideHullIsNaN checks the hull policy and its tiny tolerance.
func TestAt_OutsideHullIsNaN(t *testing.T) {
	xs, ys := []float64{0, 1, 2}, []float64{0, 1, 2}
	ct, err := interp.NewCloughTocher(xs, ys, sample(xs, ys, quadratic))
	require.NoError(t, err)

	assert.True(t, math.IsNaN(ct.At(-0.01, 1)))
	assert.True(t, math.IsNaN(ct.At(1, 2.01)))
	assert.True(t, math.IsNaN(ct.At(math.NaN(), 1)))
	assert.InDelta(t, quadratic(2, 1), ct.At(2+1e-12, 1), tol, "rounding noise stays inside")
}

// TestAt_DescendingAxes ensures reversed axes describe the same surface.
func TestAt_DescendingAxes(t *testing.T) {
	xs, ys := []float64{0, 1, 2, 3}, []float64{0, 0.5, 1}
	rxs, rys := []float64{3, 2, 1, 0}, []float64{1, 0.5, 0}
	up, err := interp.NewCloughTocher(xs, ys, sample(xs, ys, quadratic))
	require.NoError(t, err)
	down, err := interp.NewCloughTocher(rxs, rys, sample(rxs, rys, quadratic))
	require.NoError(t, err)

	for _, p := range [][2]float64{{0.3, 0.2}, {2.7, 0.9}, {1.5, 0.5}} {
		assert.InDelta(t, up.At(p[0], p[1]), down.At(p[0], p[1]), tol)
	}
	xmin, xmax, ymin, ymax := down.Bounds()
	assert.Equal(t, []float64{0, 3, 0, 1}, []float64{xmin, xmax, ymin, ymax})
}

// TestAt_ContinuousAcrossEdges probes both sides of a cell edge and diagonal.
func TestAt_ContinuousAcrossEdges(t *testing.T) {
	xs, ys := []float64{0, 1, 2, 3}, []float64{0, 1, 2, 3}
	fn := func(x, y float64) float64 { return math.Exp(0.3*x) * math.Sin(y) }
	ct, err := interp.NewCloughTocher(xs, ys, sample(xs, ys, fn))
	require.NoError(t, err)

	const h = 1e-7
	for _, y := range []float64{0.2, 1.5, 2.8} {
		assert.InDelta(t, ct.At(1-h, y), ct.At(1+h, y), 1e-5, "vertical edge at y=%g", y)
	}
	assert.InDelta(t, ct.At(1.5+h, 1.5-h), ct.At(1.5-h, 1.5+h), 1e-5, "diagonal")
}

// TestEvalGrid checks output shape, values and the empty-target error.
func TestEvalGrid(t *testing.T) {
	xs, ys := []float64{0, 1, 2}, []float64{0, 1, 2}
	ct, err := interp.NewCloughTocher(xs, ys, sample(xs, ys, quadratic))
	require.NoError(t, err)

	out, err := ct.EvalGrid([]float64{0.5, 1.5, 3}, []float64{0.25, 1.75})
	require.NoError(t, err)
	r, c := out.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.InDelta(t, quadratic(1.5, 0.25), out.At(0, 1), tol)
	assert.True(t, math.IsNaN(out.At(1, 2)), "x=3 lies outside the samples")

	_, err = ct.EvalGrid(nil, []float64{1})
	assert.ErrorIs(t, err, interp.ErrEmptyTarget)
}
