// SPDX-License-Identifier: MIT

package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a *mat.Dense with a JSON form of nested rows; NaN is null.
// A nil Dense encodes as null.
type Matrix struct {
	*mat.Dense
}

var null = []byte("null")

// MarshalJSON implements json.Marshaler.
func (m Matrix) MarshalJSON() ([]byte, error) {
	if m.Dense == nil {
		return null, nil
	}
	r, c := m.Dims()
	var b bytes.Buffer
	b.Grow(r * c * 8)
	b.WriteByte('[')
	for i := 0; i < r; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('[')
		for j, v := range m.RawRowView(i) {
			if j > 0 {
				b.WriteByte(',')
			}
			switch {
			case math.IsNaN(v):
				b.Write(null)
			case math.IsInf(v, 0):
				return nil, fmt.Errorf("row %d col %d: %w", i, j, ErrNonFinite)
			default:
				b.Write(strconv.AppendFloat(b.AvailableBuffer(), v, 'g', -1, 64))
			}
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')

	return b.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Matrix) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), null) {
		m.Dense = nil
		return nil
	}
	var rows [][]*float64
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return ErrEmpty
	}

	r, c := len(rows), len(rows[0])
	raw := make([]float64, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), c, ErrRagged)
		}
		for _, v := range row {
			if v == nil {
				raw = append(raw, math.NaN())
				continue
			}
			raw = append(raw, *v)
		}
	}
	m.Dense = mat.NewDense(r, c, raw)

	return nil
}
