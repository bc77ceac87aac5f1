// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// CompressionType defines the stream compression wrapped around the JSON.
type CompressionType uint8

const (
	// CompressionNone writes plain JSON.
	CompressionNone CompressionType = iota
	// CompressionGzip is gzip (.gz), readable by every toolchain.
	CompressionGzip
	// CompressionZSTD is zstd (.zst), better ratio for large planes.
	CompressionZSTD
	// CompressionLZ4 is the lz4 frame format (.lz4), fastest to decode.
	CompressionLZ4
)

// String implements fmt.Stringer.
func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGzip:
		return "gzip"
	case CompressionZSTD:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	}

	return fmt.Sprintf("CompressionType(%d)", uint8(c))
}

// CompressionFor picks the compression from the file extension.
func CompressionFor(path string) CompressionType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz", ".gzip":
		return CompressionGzip
	case ".zst", ".zstd":
		return CompressionZSTD
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// compressor wraps w; closing the result flushes the stream but not w.
func compressor(w io.Writer, c CompressionType) (io.WriteCloser, error) {
	switch c {
	case CompressionNone:
		return nopWriteCloser{w}, nil
	case CompressionGzip:
		return gzip.NewWriter(w), nil
	case CompressionZSTD:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	case CompressionLZ4:
		return lz4.NewWriter(w), nil
	}

	return nil, ErrCompression
}

// decompressor wraps r.
func decompressor(r io.Reader, c CompressionType) (io.ReadCloser, error) {
	switch c {
	case CompressionNone:
		return io.NopCloser(r), nil
	case CompressionGzip:
		return gzip.NewReader(r)
	case CompressionZSTD:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case CompressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	}

	return nil, ErrCompression
}
