package records

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvcluster/core"
)

var (
	// ErrMalformedRecord indicates a line that is not a list of integers.
	ErrMalformedRecord = errors.New("records: malformed record")

	// ErrDimension indicates a record whose coordinate count differs from the expected one.
	ErrDimension = errors.New("records: unexpected dimension")
)

// ParseLine parses one comma-separated record. Surrounding whitespace on the
// line and on each field is ignored.
func ParseLine(line string) (core.Point, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return core.Point{}, fmt.Errorf("empty line: %w", ErrMalformedRecord)
	}

	fields := strings.Split(line, ",")
	coords := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return core.Point{}, fmt.Errorf("field %d %q: %w", i, f, errors.Join(ErrMalformedRecord, err))
		}
		coords[i] = v
	}

	return core.NewPoint(coords...), nil
}

// Read parses every non-blank line of r. When dim > 0 each record must have
// exactly dim coordinates; dim == 0 takes the dimension of the first record.
func Read(r io.Reader, dim int) ([]core.Point, error) {
	var pts []core.Point
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		p, err := ParseLine(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if dim == 0 {
			dim = p.Dim()
		}
		if p.Dim() != dim {
			return nil, fmt.Errorf("line %d: got %d coordinates, want %d: %w", line, p.Dim(), dim, ErrDimension)
		}
		pts = append(pts, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", line+1, err)
	}

	return pts, nil
}
