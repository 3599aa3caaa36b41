// Package builder generates the complete, distance-ordered edge list induced
// by a finite point set – the input every clustering run consumes.
//
// What & Why
//
//   - The complete graph K_N over N points has N·(N−1)/2 undirected edges. Each
//     unordered pair {i,j} with i<j is emitted exactly once, never a self-pair.
//   - Every edge carries its exact squared distance and the floor Euclidean
//     distance derived from it (see core.Distance).
//   - The list is sorted once, globally, so downstream consumers can walk it in
//     a single strict total order.
//
// Ordering & Determinism
//
//	Primary key is always nondecreasing distance. Ties are broken by a fixed
//	secondary key chosen with WithTieBreak:
//
//	  TieBreakIndex       (Dist, I, J)              – input order; default.
//	  TieBreakSquared     (Squared, I, J)           – exact distance, then input order.
//	  TieBreakCoordinates (Dist, A, B, I, J)        – lexicographic coordinates.
//
//	All three produce a strict total order (I,J is unique per edge), so the
//	same input and tie-break always yield the same sequence.
//
// Complexity
//
//   - Time:  O(N²·k) to generate, O(N² log N) to sort. The quadratic edge count
//     is the dominant cost and bounds practical input size.
//   - Space: O(N²) edges.
//
// Errors
//
//   - core.ErrEmptyPoint        – a point with no coordinates.
//   - core.ErrDimensionMismatch – points of differing dimension.
//   - core.ErrOverflow          – a squared distance does not fit uint64.
//   - ErrTooManyPoints          – N·(N−1)/2 does not fit int.
package builder
