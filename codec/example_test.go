package codec_test

import (
	"bytes"
	"fmt"
	"math"

	"github.com/katalvlaran/pivkit/codec"
	"github.com/katalvlaran/pivkit/field"
)

// ExampleEncode shows the wire form, with a masked sample written as null.
func ExampleEncode() {
	f, _ := field.FromFunc([]float64{0, 1}, []float64{0, 1}, func(x, y float64) (float64, float64) {
		if x == 1 && y == 1 {
			return math.NaN(), 0
		}
		return 1, 0
	})

	var buf bytes.Buffer
	_ = codec.Encode(&buf, codec.FromField(f), codec.CompressionNone)
	fmt.Println(buf.String())
	// Output:
	// {"x":[[0,1],[0,1]],"y":[[0,0],[1,1]],"u":[[1,1],[1,null]],"v":[[0,0],[0,0]]}
}
