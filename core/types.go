package core

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors for core value operations.
var (
	// ErrEmptyPoint indicates a Point with no coordinates.
	ErrEmptyPoint = errors.New("core: point has no coordinates")

	// ErrDimensionMismatch indicates two points of different dimension were combined.
	ErrDimensionMismatch = errors.New("core: dimension mismatch")

	// ErrOverflow indicates an exact integer result does not fit its result type.
	ErrOverflow = errors.New("core: integer overflow")
)

// Point is an immutable coordinate tuple in k-dimensional integer space.
//
// The zero Point has dimension 0 and is only useful as a placeholder
// (e.g. the Closing edge of a run that never closed).
type Point struct {
	coords []int64
}

// NewPoint returns a Point holding a private copy of coords.
// Complexity: O(k).
func NewPoint(coords ...int64) Point {
	c := make([]int64, len(coords))
	copy(c, coords)

	return Point{coords: c}
}

// Dim returns the number of coordinates.
func (p Point) Dim() int { return len(p.coords) }

// Coord returns the i-th coordinate. It panics when i is out of range,
// exactly like slice indexing.
func (p Point) Coord(i int) int64 { return p.coords[i] }

// Coords returns a copy of all coordinates.
func (p Point) Coords() []int64 {
	c := make([]int64, len(p.coords))
	copy(c, p.coords)

	return c
}

// Equal reports whether p and q have identical dimension and coordinates.
func (p Point) Equal(q Point) bool {
	return p.Compare(q) == 0
}

// Compare orders points lexicographically by coordinate; a shorter point that
// is a prefix of a longer one sorts first. Returns -1, 0 or +1.
func (p Point) Compare(q Point) int {
	n := min(len(p.coords), len(q.coords))
	for i := 0; i < n; i++ {
		switch {
		case p.coords[i] < q.coords[i]:
			return -1
		case p.coords[i] > q.coords[i]:
			return 1
		}
	}
	switch {
	case len(p.coords) < len(q.coords):
		return -1
	case len(p.coords) > len(q.coords):
		return 1
	}

	return 0
}

// String renders the point as "(x,y,z)".
func (p Point) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, c := range p.coords {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatInt(c, 10))
	}
	sb.WriteByte(')')

	return sb.String()
}

// Edge is an unordered pair of distinct input points plus their distance.
//
// I and J are indices into the original input slice with I < J; A and B are
// the points at those indices. Dist is the floor Euclidean distance and
// Squared the exact squared distance it was derived from.
type Edge struct {
	// I is the input index of A (always the smaller index).
	I int

	// J is the input index of B.
	J int

	// A is the point at input index I.
	A Point

	// B is the point at input index J.
	B Point

	// Dist is ⌊√Squared⌋.
	Dist uint64

	// Squared is the exact squared Euclidean distance between A and B.
	Squared uint64
}

// String renders the edge as "i-j (a)-(b) d=dist".
func (e Edge) String() string {
	return strconv.Itoa(e.I) + "-" + strconv.Itoa(e.J) + " " +
		e.A.String() + "-" + e.B.String() + " d=" + strconv.FormatUint(e.Dist, 10)
}
