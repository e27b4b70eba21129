// SPDX-License-Identifier: MIT

package mtx

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression is a stream layer chosen by file extension.
type Compression uint8

const (
	// CompressionNone passes bytes through.
	CompressionNone Compression = iota
	// CompressionZSTD is ".zst".
	CompressionZSTD
	// CompressionGzip is ".gz".
	CompressionGzip
	// CompressionLZ4 is ".lz4".
	CompressionLZ4
)

func (c Compression) String() string {
	switch c {
	case CompressionZSTD:
		return "zstd"
	case CompressionGzip:
		return "gzip"
	case CompressionLZ4:
		return "lz4"
	default:
		return "none"
	}
}

// CompressionFor maps a file name or object key to its compression layer.
// Query strings are not stripped; pass the path part only.
func CompressionFor(name string) Compression {
	switch strings.ToLower(path.Ext(name)) {
	case ".zst", ".zstd":
		return CompressionZSTD
	case ".gz", ".gzip":
		return CompressionGzip
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// closers runs every close in order and reports the first failure.
type closers []func() error

func (cs closers) Close() error {
	var first error
	for _, fn := range cs {
		if err := fn(); err != nil && first == nil {
			first = err
		}
	}

	return first
}

// readCloser closes the decompressor, then the source.
type readCloser struct {
	io.Reader
	closers
}

// NewReader wraps src with the decompressor for c. Closing the result also
// closes src.
func NewReader(src io.ReadCloser, c Compression) (io.ReadCloser, error) {
	switch c {
	case CompressionNone:
		return src, nil
	case CompressionZSTD:
		dec, err := zstd.NewReader(src)
		if err != nil {
			return nil, fmt.Errorf("mtx: zstd reader: %w", err)
		}
		return &readCloser{Reader: dec, closers: closers{
			func() error { dec.Close(); return nil },
			src.Close,
		}}, nil
	case CompressionGzip:
		zr, err := gzip.NewReader(src)
		if err != nil {
			return nil, fmt.Errorf("mtx: gzip reader: %w", err)
		}
		return &readCloser{Reader: zr, closers: closers{zr.Close, src.Close}}, nil
	case CompressionLZ4:
		return &readCloser{Reader: lz4.NewReader(src), closers: closers{src.Close}}, nil
	default:
		return nil, fmt.Errorf("mtx: unknown compression %d", c)
	}
}

// writeCloser flushes the compressor, then closes the sink.
type writeCloser struct {
	io.Writer
	closers
}

// NewWriter wraps dst with the compressor for c. Close must be called to
// flush the stream; it also closes dst.
func NewWriter(dst io.WriteCloser, c Compression) (io.WriteCloser, error) {
	switch c {
	case CompressionNone:
		return dst, nil
	case CompressionZSTD:
		enc, err := zstd.NewWriter(dst, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("mtx: zstd writer: %w", err)
		}
		return &writeCloser{Writer: enc, closers: closers{enc.Close, dst.Close}}, nil
	case CompressionGzip:
		zw := gzip.NewWriter(dst)
		return &writeCloser{Writer: zw, closers: closers{zw.Close, dst.Close}}, nil
	case CompressionLZ4:
		lw := lz4.NewWriter(dst)
		return &writeCloser{Writer: lw, closers: closers{lw.Close, dst.Close}}, nil
	default:
		return nil, fmt.Errorf("mtx: unknown compression %d", c)
	}
}
