// Package mask finds the holes of a field: connected regions of nodes that
// carry no usable velocity.
//
// What:
//
//   - A node is masked when U or V is NaN. With WithZeroMasked, a node whose
//     U and V are both exactly 0 (the masked-sample convention of PIV
//     exports) is masked as well.
//   - Holes are the connected components of masked nodes under 4- or
//     8-connectivity.
//   - Each hole reports its nodes, bounding window and depth: the largest
//     hop distance from any of its nodes to the nearest valid node.
//
// Why:
//
//   - Stitching leaves NaN gaps where a footprint reaches past a field's
//     hull, and masked interrogation windows form islands in raw PIV data.
//     Both should be inspected before deriving divergence or vorticity.
//
// Complexity:
//
//   - FromField:  O(r×c).
//   - Holes:      O(r×c×d), Memory: O(r×c)   (d = 4 or 8 neighbours).
//
// Errors:
//
//   - ErrNilField: the input field is nil.
//   - ErrConnectivity: WithConnectivity got something other than Conn4/Conn8.
package mask
