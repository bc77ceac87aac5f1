package stitch_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/katalvlaran/pivkit/field"
	"github.com/stretchr/testify/require"
)

// axis returns lo, lo+step, ..., hi (integer-friendly inputs keep it exact).
func axis(lo, hi, step float64) []float64 {
	var out []float64
	for v := lo; v <= hi+step/2; v += step {
		out = append(out, v)
	}

	return out
}

// mustField samples fn on xs × ys or fails the test.
func mustField(t testing.TB, xs, ys []float64, fn func(x, y float64) (float64, float64)) *field.Field {
	t.Helper()
	f, err := field.FromFunc(xs, ys, fn)
	require.NoError(t, err)

	return f
}

// left and right are two linear fields (exactly interpolated by Clough–Tocher).
func left(x, y float64) (float64, float64)  { return x + y, 2 - y }
func right(x, y float64) (float64, float64) { return 2*x - y, 3 + x }

// captureLogger returns a logger writing text records into the returned buffer.
func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	return slog.New(h), &buf
}
