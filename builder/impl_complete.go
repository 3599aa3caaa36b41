// SPDX-License-Identifier: MIT
// Package: lvcluster/builder
//
// impl_complete.go — the complete, distance-ordered edge list of a point set.
//
// Contract:
//   • N = 0 or N = 1 is valid and yields an empty (non-nil) edge list.
//   • All points share one dimension k ≥ 1.
//   • Emits each unordered pair {i,j} with i<j exactly once.
//   • Result is sorted by the configured TieBreak (a strict total order).
//   • Returns only sentinel errors (wrapped with %w); never panics.
//
// Complexity:
//   • Time:  O(N²·k) generation + O(N² log N) sort.
//   • Space: O(N²) for the edge slice.

package builder

import (
	"math"
	"math/bits"
	"sort"

	"github.com/katalvlaran/lvcluster/core"
)

// Method tags used as error context.
const (
	methodPairs     = "Pairs"
	methodPairCount = "PairCount"
)

// PairCount returns N·(N−1)/2, the number of unordered pairs of n points.
// Negative n counts as zero. Returns ErrTooManyPoints when the count does not
// fit int.
func PairCount(n int) (int, error) {
	if n < 2 {
		return 0, nil
	}
	hi, lo := bits.Mul64(uint64(n), uint64(n-1))
	if hi != 0 || lo/2 > math.MaxInt {
		return 0, builderErrorf(methodPairCount, ErrTooManyPoints, "n=%d", n)
	}

	return int(lo / 2), nil
}

// Pairs returns every unordered pair of distinct points with its distance,
// sorted in nondecreasing distance order with the configured tie-break.
//
// Steps:
//  1. Validate dimensions: every point non-empty and equal to points[0].Dim().
//  2. Preallocate N·(N−1)/2 edges (ErrTooManyPoints when that is not representable).
//  3. For i<j compute the exact squared distance and its floor root.
//  4. Sort once with the tie-break comparator.
func Pairs(points []core.Point, opts ...BuilderOption) ([]core.Edge, error) {
	cfg := newBuilderConfig(opts...)

	// 1. Validate a single shared dimension up front so step 3 cannot mismatch.
	if len(points) > 0 {
		dim := points[0].Dim()
		for i, p := range points {
			if p.Dim() == 0 {
				return nil, builderErrorf(methodPairs, core.ErrEmptyPoint, "point %d", i)
			}
			if p.Dim() != dim {
				return nil, builderErrorf(methodPairs, core.ErrDimensionMismatch,
					"point %d has dim %d, want %d", i, p.Dim(), dim)
			}
		}
	}

	// 2. Preallocate the exact edge count.
	total, err := PairCount(len(points))
	if err != nil {
		return nil, builderErrorf(methodPairs, err, "n=%d", len(points))
	}
	edges := make([]core.Edge, 0, total)

	// 3. Emit {i,j}, i<j, in lexicographic index order.
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			sq, err := core.SquaredDistance(points[i], points[j])
			if err != nil {
				return nil, builderErrorf(methodPairs, err, "pair %d-%d", i, j)
			}
			edges = append(edges, core.Edge{
				I:       i,
				J:       j,
				A:       points[i],
				B:       points[j],
				Dist:    core.ISqrt(sq),
				Squared: sq,
			})
		}
	}

	// 4. One global sort; the comparator is total, so stability is not needed.
	sort.Slice(edges, func(a, b int) bool {
		return cfg.tieBreak.compare(&edges[a], &edges[b]) < 0
	})

	return edges, nil
}
