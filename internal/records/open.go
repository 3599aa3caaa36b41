package records

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Open opens path for reading, decompressing by extension.
// Closing the result closes both the decoder and the file.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	rc, err := decode(f, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	return rc, nil
}

// decode wraps f in the decoder matching ext.
func decode(f *os.File, ext string) (io.ReadCloser, error) {
	switch ext {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		return &stack{Reader: zr, closers: []io.Closer{zr, f}}, nil
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, err
		}
		dec := zr.IOReadCloser()
		return &stack{Reader: dec, closers: []io.Closer{dec, f}}, nil
	case ".lz4":
		return &stack{Reader: lz4.NewReader(f), closers: []io.Closer{f}}, nil
	default:
		return f, nil
	}
}

// stack is a decoder over a file; Close releases both in order.
type stack struct {
	io.Reader
	closers []io.Closer
}

func (s *stack) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}

	return first
}
