// SPDX-License-Identifier: MIT

package mask

import (
	"math"

	"github.com/katalvlaran/pivkit/field"
)

// Mask flags the unusable nodes of a field. It is immutable once built.
type Mask struct {
	Rows, Cols int
	conn       Connectivity
	masked     []bool // row-major
}

// Hole is one connected region of masked nodes.
type Hole struct {
	// Nodes are row-major indices (i*Cols + j) in visiting order.
	Nodes []int
	// Row0, Row1, Col0, Col1 is the half-open bounding window.
	Row0, Row1 int
	Col0, Col1 int
	// Depth is the largest hop count from a node of the hole to the nearest
	// valid node; -1 when the field has no valid node at all.
	Depth int
}

// Size returns the number of nodes in h.
func (h Hole) Size() int { return len(h.Nodes) }

// FromField builds the mask of f.
func FromField(f *field.Field, opts ...Option) (*Mask, error) {
	if f == nil {
		return nil, ErrNilField
	}
	o := gatherOptions(opts)
	if o.conn != Conn4 && o.conn != Conn8 {
		return nil, ErrConnectivity
	}

	r, c := f.Shape()
	m := &Mask{Rows: r, Cols: c, conn: o.conn, masked: make([]bool, r*c)}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			u, v := f.U.At(i, j), f.V.At(i, j)
			m.masked[i*c+j] = math.IsNaN(u) || math.IsNaN(v) || (o.zeroMasked && u == 0 && v == 0)
		}
	}

	return m, nil
}

// Masked reports whether node (i, j) is masked.
func (m *Mask) Masked(i, j int) bool { return m.masked[i*m.Cols+j] }

// Count returns the number of masked nodes.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.masked {
		if b {
			n++
		}
	}

	return n
}

// Holes returns the connected regions of masked nodes, ordered by their
// first node in row-major order.
func (m *Mask) Holes() []Hole {
	depth := m.depths()
	seen := make([]bool, len(m.masked))
	offsets := m.conn.offsets()
	var holes []Hole

	for start, isMasked := range m.masked {
		if !isMasked || seen[start] {
			continue
		}
		// BFS to collect the hole.
		h := Hole{Row0: m.Rows, Col0: m.Cols, Depth: depth[start]}
		queue := []int{start}
		seen[start] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			h.Nodes = append(h.Nodes, u)
			ui, uj := u/m.Cols, u%m.Cols
			h.Row0, h.Row1 = min(h.Row0, ui), max(h.Row1, ui+1)
			h.Col0, h.Col1 = min(h.Col0, uj), max(h.Col1, uj+1)
			h.Depth = max(h.Depth, depth[u])
			for _, d := range offsets {
				vi, vj := ui+d[0], uj+d[1]
				if !m.inBounds(vi, vj) {
					continue
				}
				v := vi*m.Cols + vj
				if m.masked[v] && !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		holes = append(holes, h)
	}

	return holes
}

// depths runs a multi-source BFS from every valid node; masked nodes get
// their hop distance to valid data, unreachable ones keep -1.
func (m *Mask) depths() []int {
	dist := make([]int, len(m.masked))
	queue := make([]int, 0, len(m.masked))
	for i, isMasked := range m.masked {
		dist[i] = -1
		if !isMasked {
			dist[i] = 0
			queue = append(queue, i)
		}
	}

	offsets := m.conn.offsets()
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		ui, uj := u/m.Cols, u%m.Cols
		for _, d := range offsets {
			vi, vj := ui+d[0], uj+d[1]
			if !m.inBounds(vi, vj) {
				continue
			}
			v := vi*m.Cols + vj
			if dist[v] < 0 {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return dist
}

// inBounds reports whether (i, j) lies within the mask.
func (m *Mask) inBounds(i, j int) bool {
	return i >= 0 && i < m.Rows && j >= 0 && j < m.Cols
}
