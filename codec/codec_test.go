package codec_test

import (
	"bytes"
	"encoding/json"
	"math"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/pivkit/codec"
	"github.com/katalvlaran/pivkit/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func sampleField(t *testing.T) *field.Field {
	t.Helper()
	f, err := field.FromFunc([]float64{0, 0.5, 1}, []float64{2, 1}, func(x, y float64) (float64, float64) {
		if x == 0.5 && y == 1 {
			return math.NaN(), math.NaN()
		}
		return x * y, -x
	})
	require.NoError(t, err)

	return f
}

// equalNaN compares matrices treating NaN == NaN.
func equalNaN(t *testing.T, want, got *mat.Dense) {
	t.Helper()
	require.NotNil(t, got)
	r, c := want.Dims()
	gr, gc := got.Dims()
	require.Equal(t, []int{r, c}, []int{gr, gc})
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			w, g := want.At(i, j), got.At(i, j)
			if math.IsNaN(w) {
				assert.True(t, math.IsNaN(g), "(%d,%d)", i, j)
				continue
			}
			assert.Equal(t, w, g, "(%d,%d)", i, j)
		}
	}
}

func TestMatrix_JSON(t *testing.T) {
	m := codec.Matrix{Dense: mat.NewDense(2, 2, []float64{1, math.NaN(), -0.25, 3e-9})}

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `[[1,null],[-0.25,3e-9]]`, string(data))

	var back codec.Matrix
	require.NoError(t, json.Unmarshal(data, &back))
	equalNaN(t, m.Dense, back.Dense)
}

func TestMatrix_Errors(t *testing.T) {
	_, err := json.Marshal(codec.Matrix{Dense: mat.NewDense(1, 2, []float64{1, math.Inf(-1)})})
	assert.ErrorIs(t, err, codec.ErrNonFinite)

	var m codec.Matrix
	assert.ErrorIs(t, json.Unmarshal([]byte(`[[1,2],[3]]`), &m), codec.ErrRagged)
	assert.ErrorIs(t, json.Unmarshal([]byte(`[]`), &m), codec.ErrEmpty)
	assert.ErrorIs(t, json.Unmarshal([]byte(`[[]]`), &m), codec.ErrEmpty)
	assert.Error(t, json.Unmarshal([]byte(`[["a"]]`), &m))

	require.NoError(t, json.Unmarshal([]byte(`null`), &m))
	assert.Nil(t, m.Dense)
}

func TestEncodeDecode_Compression(t *testing.T) {
	f := sampleField(t)
	for _, c := range []codec.CompressionType{codec.CompressionNone, codec.CompressionGzip, codec.CompressionZSTD, codec.CompressionLZ4} {
		t.Run(c.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, codec.Encode(&buf, codec.FromField(f), c))

			var v codec.Vector
			require.NoError(t, codec.Decode(&buf, &v, c))
			got, err := v.Field()
			require.NoError(t, err)
			equalNaN(t, f.X, got.X)
			equalNaN(t, f.Y, got.Y)
			equalNaN(t, f.U, got.U)
			equalNaN(t, f.V, got.V)
		})
	}
}

func TestEncode_UnknownCompression(t *testing.T) {
	var buf bytes.Buffer
	err := codec.Encode(&buf, codec.FromField(sampleField(t)), codec.CompressionType(42))
	assert.ErrorIs(t, err, codec.ErrCompression)
	assert.Equal(t, "CompressionType(42)", codec.CompressionType(42).String())
}

func TestCompressionFor(t *testing.T) {
	tests := map[string]codec.CompressionType{
		"plane.json":     codec.CompressionNone,
		"plane":          codec.CompressionNone,
		"plane.json.gz":  codec.CompressionGzip,
		"PLANE.JSON.GZ":  codec.CompressionGzip,
		"plane.json.zst": codec.CompressionZSTD,
		"a/b/c.lz4":      codec.CompressionLZ4,
	}
	for path, want := range tests {
		assert.Equal(t, want, codec.CompressionFor(path), path)
	}
}

func TestFileHelpers(t *testing.T) {
	dir := t.TempDir()
	f := sampleField(t)

	for _, name := range []string{"f.json", "f.json.zst"} {
		path := filepath.Join(dir, name)
		require.NoError(t, codec.WriteField(path, f))
		got, err := codec.ReadField(path)
		require.NoError(t, err)
		equalNaN(t, f.U, got.U)
	}

	s := codec.NewScalar(f, mat.NewDense(2, 3, []float64{1, 2, 3, 4, math.NaN(), 6}))
	path := filepath.Join(dir, "s.json.gz")
	require.NoError(t, codec.WriteScalar(path, s))
	back, err := codec.ReadScalar(path)
	require.NoError(t, err)
	equalNaN(t, s.S.Dense, back.S.Dense)
}

func TestReadField_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	bad := codec.Vector{
		X: codec.Matrix{Dense: mat.NewDense(2, 2, []float64{0, 1, 0, 1})},
		Y: codec.Matrix{Dense: mat.NewDense(2, 2, []float64{0, 0, 1, 1})},
		U: codec.Matrix{Dense: mat.NewDense(2, 2, nil)},
	}
	require.NoError(t, codec.WriteScalar(path, codec.Scalar{X: bad.X, Y: bad.Y, S: bad.U}))

	_, err := codec.ReadField(path)
	assert.ErrorIs(t, err, field.ErrNilArray)

	_, err = codec.ReadField(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestByName(t *testing.T) {
	c, ok := codec.ByName("json")
	require.True(t, ok)
	assert.Equal(t, "json", c.Name())

	_, ok = codec.ByName("xml")
	assert.False(t, ok)
}
