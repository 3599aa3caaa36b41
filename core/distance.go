package core

import (
	"fmt"
	"math/bits"
)

// SquaredDistance returns Σ (a[k] − b[k])² computed exactly in uint64.
//
// Steps:
//  1. Validate: both points non-empty and of equal dimension.
//  2. For each axis take |a[k] − b[k]| as an unsigned magnitude (never overflows).
//  3. Square with bits.Mul64 and accumulate with bits.Add64; any carry → ErrOverflow.
//
// The result is symmetric in a and b.
// Complexity: O(k).
func SquaredDistance(a, b Point) (uint64, error) {
	if a.Dim() == 0 || b.Dim() == 0 {
		return 0, ErrEmptyPoint
	}
	if a.Dim() != b.Dim() {
		return 0, fmt.Errorf("SquaredDistance: dim %d vs %d: %w", a.Dim(), b.Dim(), ErrDimensionMismatch)
	}

	var sum uint64
	for k := range a.coords {
		d := absDiff(a.coords[k], b.coords[k])
		hi, sq := bits.Mul64(d, d)
		if hi != 0 {
			return 0, fmt.Errorf("SquaredDistance: axis %d of %s-%s: %w", k, a, b, ErrOverflow)
		}
		var carry uint64
		sum, carry = bits.Add64(sum, sq, 0)
		if carry != 0 {
			return 0, fmt.Errorf("SquaredDistance: sum at axis %d of %s-%s: %w", k, a, b, ErrOverflow)
		}
	}

	return sum, nil
}

// Distance returns ⌊‖a − b‖⌋, the integer Euclidean distance.
// It shares the error contract of SquaredDistance.
func Distance(a, b Point) (uint64, error) {
	sq, err := SquaredDistance(a, b)
	if err != nil {
		return 0, err
	}

	return ISqrt(sq), nil
}

// ISqrt returns ⌊√n⌋ using integer Newton iteration.
//
// The starting guess 2^⌈len(n)/2⌉ is never below √n, so the sequence decreases
// monotonically and stops at the floor root. No floating point is involved.
// Complexity: O(log log n) iterations.
func ISqrt(n uint64) uint64 {
	if n < 2 {
		return n
	}
	x := uint64(1) << ((bits.Len64(n) + 1) / 2)
	for {
		y := (x + n/x) >> 1
		if y >= x {
			return x
		}
		x = y
	}
}

// absDiff returns |a − b| as uint64. Two's-complement subtraction on the
// unsigned images is exact because the true magnitude is below 2^64.
func absDiff(a, b int64) uint64 {
	if a >= b {
		return uint64(a) - uint64(b)
	}

	return uint64(b) - uint64(a)
}
