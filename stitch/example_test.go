package stitch_test

import (
	"fmt"

	"github.com/katalvlaran/pivkit/field"
	"github.com/katalvlaran/pivkit/stitch"
)

// ExampleStitch merges two uniform fields that share three columns.
func ExampleStitch() {
	ys := []float64{0, 1, 2, 3, 4, 5, 6}
	f1, _ := field.FromFunc([]float64{0, 1, 2, 3, 4}, ys, func(x, y float64) (float64, float64) { return 1, 0 })
	f2, _ := field.FromFunc([]float64{2, 3, 4, 5, 6}, ys, func(x, y float64) (float64, float64) { return 3, 0 })

	res, err := stitch.Stitch(f1, f2, stitch.BlendAverage)
	if err != nil {
		fmt.Println(err)
		return
	}
	rows, cols := res.Field.Shape()
	fmt.Printf("grid %dx%d, overlap cols [%d,%d)\n", rows, cols, res.Layout.Overlap.Col0, res.Layout.Overlap.Col1)
	fmt.Printf("%.2f\n", res.Field.U.RawRowView(3))
	// Output:
	// grid 7x7, overlap cols [2,5)
	// [1.00 1.00 2.00 2.00 2.00 3.00 3.00]
}

// ExampleBlendWeights prints the ramp of the cubic mode.
func ExampleBlendWeights() {
	w, _ := stitch.BlendWeights(1, 5, stitch.BlendCubic)
	fmt.Println(w.W1.RawRowView(0))
	fmt.Println(w.W2.RawRowView(0))
	// Output:
	// [1 0.75 0.5 0.25 0]
	// [0 0.25 0.5 0.75 1]
}
