// Package core defines the immutable value types shared by every lvcluster
// package: Point, Edge, and the exact integer distance metric between points.
//
// What lives here
//
//   - Point – a fixed-length tuple of int64 coordinates. Identity is value-based;
//     a Point never changes after NewPoint returns it.
//   - Edge – an unordered pair of distinct input points {I<J} together with
//     their precomputed distance. Edges never reference the same point twice.
//   - SquaredDistance / Distance – the metric. Distance is the floor of the
//     Euclidean distance, computed with integer arithmetic only, so ordering
//     by it is exact and reproducible on every platform.
//
// Arithmetic guarantees
//
//	SquaredDistance(a,b) = Σ (a[k] − b[k])²      (uint64, overflow-checked)
//	Distance(a,b)        = ⌊√SquaredDistance(a,b)⌋ (integer Newton iteration)
//
// Per-axis differences are taken as unsigned magnitudes, so every pair of
// int64 coordinates is representable. Squares and the running sum are checked
// with math/bits; anything that does not fit 64 bits returns ErrOverflow
// instead of wrapping silently.
//
// Errors:
//
//	ErrEmptyPoint        - a point has zero coordinates.
//	ErrDimensionMismatch - two points of different dimension were compared.
//	ErrOverflow          - an exact result does not fit the 64-bit result type.
package core
