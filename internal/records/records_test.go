package records_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvcluster/core"
	"github.com/katalvlaran/lvcluster/internal/records"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "162,817,812\n57,618,57\n\n906, 360, 560\n"

func TestParseLine(t *testing.T) {
	p, err := records.ParseLine("  -4, 5 ,6 ")
	require.NoError(t, err)
	assert.True(t, p.Equal(core.NewPoint(-4, 5, 6)))

	for _, bad := range []string{"", "1,,2", "a,b,c", "1.5,2,3", "99999999999999999999"} {
		_, err := records.ParseLine(bad)
		assert.ErrorIs(t, err, records.ErrMalformedRecord, "%q", bad)
	}
}

func TestRead(t *testing.T) {
	pts, err := records.Read(strings.NewReader(sample), 3)
	require.NoError(t, err)
	require.Len(t, pts, 3)
	assert.True(t, pts[2].Equal(core.NewPoint(906, 360, 560)))

	// Dimension inferred from the first record.
	pts, err = records.Read(strings.NewReader("1,2\n3,4\n"), 0)
	require.NoError(t, err)
	assert.Len(t, pts, 2)

	_, err = records.Read(strings.NewReader("1,2,3\n4,5\n"), 0)
	assert.ErrorIs(t, err, records.ErrDimension)
	assert.Contains(t, err.Error(), "line 2")

	_, err = records.Read(strings.NewReader("1,2,3\nx\n"), 3)
	assert.ErrorIs(t, err, records.ErrMalformedRecord)

	pts, err = records.Read(strings.NewReader(""), 3)
	require.NoError(t, err)
	assert.Empty(t, pts)
}

// TestOpen_Compressed writes the sample with every supported codec and reads it back.
func TestOpen_Compressed(t *testing.T) {
	dir := t.TempDir()

	write := func(name string, wrap func(io.Writer) (io.WriteCloser, error)) string {
		path := filepath.Join(dir, name)
		f, err := os.Create(path)
		require.NoError(t, err)
		w, err := wrap(f)
		require.NoError(t, err)
		_, err = io.WriteString(w, sample)
		require.NoError(t, err)
		require.NoError(t, w.Close())
		require.NoError(t, f.Close())
		return path
	}

	paths := []string{
		write("plain.txt", func(w io.Writer) (io.WriteCloser, error) { return nopWriteCloser{w}, nil }),
		write("points.gz", func(w io.Writer) (io.WriteCloser, error) { return gzip.NewWriter(w), nil }),
		write("points.zst", func(w io.Writer) (io.WriteCloser, error) { return zstd.NewWriter(w) }),
		write("points.lz4", func(w io.Writer) (io.WriteCloser, error) { return lz4.NewWriter(w), nil }),
	}
	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			rc, err := records.Open(path)
			require.NoError(t, err)
			defer rc.Close()

			pts, err := records.Read(rc, 3)
			require.NoError(t, err)
			assert.Len(t, pts, 3)
		})
	}

	_, err := records.Open(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	// A .gz file that is not gzip fails at open time.
	bogus := filepath.Join(dir, "bogus.gz")
	require.NoError(t, os.WriteFile(bogus, []byte(sample), 0o600))
	_, err = records.Open(bogus)
	assert.Error(t, err)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
