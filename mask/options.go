// SPDX-License-Identifier: MIT

package mask

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Defaults.
const (
	DefaultConnectivity = Conn4
	DefaultZeroMasked   = false
)

// Option mutates Options.
type Option func(*Options)

// Options is the effective configuration of FromField.
type Options struct {
	conn       Connectivity
	zeroMasked bool
}

// DefaultOptions returns Conn4 and NaN-only masking.
func DefaultOptions() Options {
	return Options{conn: DefaultConnectivity, zeroMasked: DefaultZeroMasked}
}

// WithConnectivity sets the neighbourhood used to join masked nodes.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) { o.conn = c }
}

// WithZeroMasked also masks nodes where U and V are both exactly zero.
func WithZeroMasked() Option {
	return func(o *Options) { o.zeroMasked = true }
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// offsets returns the (row, col) steps of c.
func (c Connectivity) offsets() [][2]int {
	if c == Conn8 {
		return [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
	}

	return [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
}
