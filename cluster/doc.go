// Package cluster is the distance-ordered clustering engine: it consumes the
// complete edge list of a point set in nondecreasing distance order, unions
// endpoints in a fresh disjoint-set per run, and stops under one of two
// termination policies.
//
// What & Why
//
//   - Bounded merge (Mode A, Engine.BoundedMerge)
//     Process edges until K counted merges happened, the edges run out, or the
//     partition is already a single component. Materialize the components,
//     rank them by size (descending; ties by smallest member index, ascending)
//     and return the product of the three largest sizes, padding with 1 when
//     there are fewer than three components.
//
//   - First full span (Mode B, Engine.FullSpan)
//     Process edges without a cap. After each successful merge check whether
//     the merged component holds every point; the first edge that makes it so
//     is the closing edge. Its endpoints are handed to a pluggable ResultFunc
//     (default: ProductOfAxis(0), the product of the first coordinates,
//     reported as 0 when negative).
//
// Both modes share one merge step: an edge whose endpoints already share a
// component is a no-op and mutates nothing. This is exactly Kruskal's loop
// with an early stop, so Mode B's closing edge is the heaviest edge of the
// minimum spanning tree under the chosen tie-break.
//
// Counting policy
//
//	CountMerges   (default) – only successful unions count toward K.
//	CountAttempts           – every consumed edge counts toward K, i.e. "connect
//	                          the K closest pairs" even when some pairs are
//	                          already in the same component.
//
// Degenerate inputs
//
//	N = 0: BoundedMerge → 1 (three padded sizes); FullSpan → SpanSentinel (0), Closed=false.
//	N = 1: BoundedMerge → 1 (one singleton, padded);  FullSpan → SpanSentinel (0), Closed=false.
//
// Determinism & Concurrency
//
//   - Edges are generated and sorted once in New and never reordered; the tie-break
//     is fixed per Engine (see builder.TieBreak).
//   - Every BoundedMerge/FullSpan call builds its own dsu.DSU, so an Engine can be
//     run repeatedly, and different runs may execute on different goroutines.
//     A single run is strictly sequential.
//
// Errors
//
//   - Construction returns the builder/core sentinels for invalid points.
//   - ErrOverflow when the size product does not fit uint64; ResultFunc errors
//     (e.g. core.ErrOverflow, ErrAxisOutOfRange) are wrapped and returned.
//
// Complexity
//
//	New:  O(N² log N) time, O(N²) memory (edge list).
//	Runs: O(E·α(N)) for the loop plus O(N log N) ranking in Mode A.
package cluster
