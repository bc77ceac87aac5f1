// SPDX-License-Identifier: MIT

package field

import "math"

// Bounds is an axis-aligned field-of-view [XMin, XMax] × [YMin, YMax].
// It is derived from a Field and never stored independently.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Width returns XMax - XMin.
func (b Bounds) Width() float64 { return b.XMax - b.XMin }

// Height returns YMax - YMin.
func (b Bounds) Height() float64 { return b.YMax - b.YMin }

// Union returns the smallest Bounds covering both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		XMin: math.Min(b.XMin, o.XMin),
		XMax: math.Max(b.XMax, o.XMax),
		YMin: math.Min(b.YMin, o.YMin),
		YMax: math.Max(b.YMax, o.YMax),
	}
}

// Intersect returns the common part of b and o and whether it is non-empty.
// Touching boxes (zero width or height) count as intersecting.
func (b Bounds) Intersect(o Bounds) (Bounds, bool) {
	r := Bounds{
		XMin: math.Max(b.XMin, o.XMin),
		XMax: math.Min(b.XMax, o.XMax),
		YMin: math.Max(b.YMin, o.YMin),
		YMax: math.Min(b.YMax, o.YMax),
	}

	return r, r.XMin <= r.XMax && r.YMin <= r.YMax
}

// Contains reports whether (x, y) lies inside b, inflated by tol on every side.
func (b Bounds) Contains(x, y, tol float64) bool {
	return x >= b.XMin-tol && x <= b.XMax+tol && y >= b.YMin-tol && y <= b.YMax+tol
}
