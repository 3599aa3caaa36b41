package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcluster/core"
)

// TieBreak selects the secondary ordering key for edges of equal distance.
type TieBreak int

const (
	// TieBreakIndex orders by (Dist, I, J).
	TieBreakIndex TieBreak = iota

	// TieBreakSquared orders by (Squared, I, J). Because ⌊√x⌋ is monotone this is
	// still nondecreasing in Dist; it just refines equal-Dist runs by exact length.
	TieBreakSquared

	// TieBreakCoordinates orders by (Dist, A, B, I, J) with points compared
	// lexicographically.
	TieBreakCoordinates
)

// Canonical tie-break names, used by ParseTieBreak and String.
const (
	tieBreakIndexName       = "index"
	tieBreakSquaredName     = "squared"
	tieBreakCoordinatesName = "coordinates"
)

// String returns the canonical name of tb.
func (tb TieBreak) String() string {
	switch tb {
	case TieBreakIndex:
		return tieBreakIndexName
	case TieBreakSquared:
		return tieBreakSquaredName
	case TieBreakCoordinates:
		return tieBreakCoordinatesName
	default:
		return fmt.Sprintf("TieBreak(%d)", int(tb))
	}
}

// Valid reports whether tb is one of the declared tie-breaks.
func (tb TieBreak) Valid() bool {
	return tb >= TieBreakIndex && tb <= TieBreakCoordinates
}

// ParseTieBreak maps a canonical name back to its TieBreak.
func ParseTieBreak(name string) (TieBreak, error) {
	switch name {
	case tieBreakIndexName:
		return TieBreakIndex, nil
	case tieBreakSquaredName:
		return TieBreakSquared, nil
	case tieBreakCoordinatesName:
		return TieBreakCoordinates, nil
	default:
		return 0, fmt.Errorf("ParseTieBreak(%q): %w", name, ErrUnknownTieBreak)
	}
}

// compare returns the three-way order of a and b under tb.
// Every branch ends on (I, J), which is unique per edge, so the order is total.
func (tb TieBreak) compare(a, b *core.Edge) int {
	switch tb {
	case TieBreakSquared:
		if c := cmpUint(a.Squared, b.Squared); c != 0 {
			return c
		}
	case TieBreakCoordinates:
		if c := cmpUint(a.Dist, b.Dist); c != 0 {
			return c
		}
		if c := a.A.Compare(b.A); c != 0 {
			return c
		}
		if c := a.B.Compare(b.B); c != 0 {
			return c
		}
	default:
		if c := cmpUint(a.Dist, b.Dist); c != 0 {
			return c
		}
	}
	if c := a.I - b.I; c != 0 {
		return c
	}

	return a.J - b.J
}

func cmpUint(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}
