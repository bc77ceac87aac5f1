package stitch_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pivkit/stitch"
)

// benchPair builds two n×n fields overlapping by a third of their width.
func benchPair(b *testing.B, n int) (f1, f2 []float64, ys []float64) {
	b.Helper()
	ys = axis(0, float64(n-1), 1)
	f1 = axis(0, float64(n-1), 1)
	off := float64(2 * n / 3)
	f2 = axis(off, off+float64(n-1), 1)

	return f1, f2, ys
}

func wave(x, y float64) (float64, float64) { return math.Sin(x / 7), math.Cos(y / 5) }

func benchmarkStitch(b *testing.B, n int, opts ...stitch.Option) {
	xs1, xs2, ys := benchPair(b, n)
	f1 := mustField(b, xs1, ys, wave)
	f2 := mustField(b, xs2, ys, wave)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := stitch.Stitch(f1, f2, stitch.BlendCosine, opts...); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkStitch_32(b *testing.B)          { benchmarkStitch(b, 32) }
func BenchmarkStitch_128(b *testing.B)         { benchmarkStitch(b, 128) }
func BenchmarkStitch_128Parallel(b *testing.B) { benchmarkStitch(b, 128, stitch.WithParallel()) }

func BenchmarkBlendWeights(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = stitch.BlendWeights(256, 64, stitch.BlendCosine)
	}
}
