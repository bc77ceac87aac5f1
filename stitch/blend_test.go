package stitch_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/pivkit/stitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestBlendWeights_Modes(t *testing.T) {
	tests := []struct {
		mode   stitch.BlendMode
		w1, w2 []float64
	}{
		{stitch.BlendNone, []float64{1, 1, 1}, []float64{0, 0, 0}},
		{stitch.BlendAverage, []float64{0.5, 0.5, 0.5}, []float64{0.5, 0.5, 0.5}},
		{stitch.BlendCubic, []float64{1, 0.5, 0}, []float64{0, 0.5, 1}},
		{stitch.BlendCosine, []float64{0, 0.5, 1}, []float64{1, 0.5, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.mode.String(), func(t *testing.T) {
			w, err := stitch.BlendWeights(2, 3, tc.mode)
			require.NoError(t, err)
			for i := 0; i < 2; i++ {
				assert.InDeltaSlice(t, tc.w1, mat.Row(nil, i, w.W1), 1e-12, "W1 row %d", i)
				assert.InDeltaSlice(t, tc.w2, mat.Row(nil, i, w.W2), 1e-12, "W2 row %d", i)
			}
		})
	}
}

// TestBlendWeights_Complementary checks W1 + W2 = 1 for every valid mode.
func TestBlendWeights_Complementary(t *testing.T) {
	for _, mode := range []stitch.BlendMode{stitch.BlendNone, stitch.BlendAverage, stitch.BlendCubic, stitch.BlendCosine} {
		w, err := stitch.BlendWeights(4, 7, mode)
		require.NoError(t, err)
		var sum mat.Dense
		sum.Add(w.W1, w.W2)
		r, c := sum.Dims()
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				assert.InDelta(t, 1.0, sum.At(i, j), 1e-12, "%s at (%d,%d)", mode, i, j)
			}
		}
	}
}

func TestBlendWeights_SingleColumn(t *testing.T) {
	w, err := stitch.BlendWeights(3, 1, stitch.BlendCubic)
	require.NoError(t, err)
	assert.Equal(t, 1.0, w.W1.At(1, 0))
	assert.Equal(t, 0.0, w.W2.At(1, 0))
}

func TestBlendWeights_InvalidMode(t *testing.T) {
	logger, buf := captureLogger()

	w, err := stitch.BlendWeights(2, 2, "sharpen", stitch.WithLogger(logger))
	require.NoError(t, err)
	assert.True(t, mat.Equal(w.W1, mat.NewDense(2, 2, nil)))
	assert.True(t, mat.Equal(w.W2, mat.NewDense(2, 2, nil)))
	assert.Contains(t, buf.String(), "invalid blend mode")
	assert.Contains(t, buf.String(), "mode=sharpen")
}

func TestBlendWeights_EmptyWindow(t *testing.T) {
	_, err := stitch.BlendWeights(0, 3, stitch.BlendAverage)
	assert.ErrorIs(t, err, stitch.ErrEmptyWindow)
	_, err = stitch.BlendWeights(3, -1, stitch.BlendAverage)
	assert.ErrorIs(t, err, stitch.ErrEmptyWindow)
}

func TestBlendMode_Valid(t *testing.T) {
	assert.True(t, stitch.BlendCosine.Valid())
	assert.False(t, stitch.BlendMode("").Valid())
	assert.False(t, stitch.BlendMode(strings.ToUpper("cubic")).Valid())
}
