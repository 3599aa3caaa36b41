// Package dsu implements the component index of a clustering run: a
// disjoint-set (union-find) forest over the dense indices 0..n-1.
//
// Operations
//
//   - Find(x)      – representative of x's component; iterative with path halving.
//   - Union(a, b)  – merge two components by size; reports whether anything changed.
//   - Components() – materialize every component as a roaring bitmap of members.
//
// Invariants
//
//   - The components always partition {0..n-1}: every index is in exactly one.
//   - Components only merge, never split; Count() decreases by one per
//     successful Union and never drops below 1 (for n ≥ 1).
//   - Union of two indices that already share a root returns false and does
//     not touch any state, so re-processing an edge is idempotent.
//
// Complexity
//
//	Find/Union: O(α(n)) amortized. Components: O(n·α(n)) plus bitmap inserts.
//	Memory:     two int slices of length n.
//
// A DSU is not safe for concurrent use; each clustering run owns its own.
package dsu
