package mask_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pivkit/mask"
)

// BenchmarkHoles labels a 500×500 plane with roughly 20% masked nodes.
func BenchmarkHoles(b *testing.B) {
	const n = 500
	rng := rand.New(rand.NewSource(42))
	pattern := make([][]int, n)
	for i := range pattern {
		pattern[i] = make([]int, n)
		for j := range pattern[i] {
			if rng.Intn(5) == 0 {
				pattern[i][j] = 1
			}
		}
	}
	m, err := mask.FromField(patternField(b, pattern))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Holes()
	}
}
