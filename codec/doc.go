// Package codec is the on-disk and wire form of pivkit fields.
//
// A vector field is a JSON object of four row-major matrices,
//
//	{"x": [[...], ...], "y": [[...]], "u": [[...]], "v": [[...]]}
//
// and a derived scalar field (divergence, stream function) replaces u and v
// with "s". NaN samples are written as null and read back as NaN; ±Inf is
// rejected. Files may be compressed: the extension selects gzip (.gz), zstd
// (.zst) or lz4 (.lz4); anything else is plain JSON.
//
// Codec selection mirrors a self-describing store: Codec is the pluggable
// marshaller and ByName resolves the built-in ones.
package codec
