package cluster

import (
	"fmt"
	"math/bits"
	"sort"

	"github.com/katalvlaran/lvcluster/dsu"
	"go.uber.org/zap"
)

// BoundedMerge runs Mode A on a fresh component index.
//
// Steps:
//  1. Before each edge, stop when the counted total (per CountPolicy) reached
//     K or the partition is already a single component.
//  2. Consume the edge (union; no-op when co-located).
//  3. Materialize components, rank by size desc then smallest member asc.
//  4. Multiply the three largest sizes, padding with 1, overflow-checked.
//
// K = 0 performs no merges; every component is a singleton and the result is 1.
func (e *Engine) BoundedMerge() (BoundedResult, error) {
	r := e.newRun(methodBoundedMerge)

	for _, edge := range e.edges {
		if e.cfg.policy.counted(r.stats) >= e.cfg.mergeCap || r.set.Spanning() {
			break
		}
		r.step(edge)
	}

	sizes := rankedSizes(r.set.Components())
	product, err := topProduct(sizes, TopComponents)
	if err != nil {
		return BoundedResult{}, fmt.Errorf("%s: %w", methodBoundedMerge, err)
	}

	r.done(zap.Uint64("product", product))

	return BoundedResult{
		Product:   product,
		Sizes:     sizes,
		Merges:    r.stats.merges,
		Processed: r.stats.processed,
	}, nil
}

// rankedSizes orders components by size descending, breaking ties by the
// smallest member index ascending, and returns their sizes in that order.
func rankedSizes(comps []dsu.Component) []int {
	sort.SliceStable(comps, func(a, b int) bool {
		sa, sb := comps[a].Size(), comps[b].Size()
		if sa != sb {
			return sa > sb
		}

		return comps[a].Min() < comps[b].Min()
	})

	sizes := make([]int, len(comps))
	for i, c := range comps {
		sizes[i] = c.Size()
	}

	return sizes
}

// topProduct multiplies the first k sizes, treating missing ones as 1.
// Returns ErrOverflow when the product does not fit uint64.
func topProduct(sizes []int, k int) (uint64, error) {
	product := uint64(1)
	for i := 0; i < k && i < len(sizes); i++ {
		hi, lo := bits.Mul64(product, uint64(sizes[i]))
		if hi != 0 {
			return 0, fmt.Errorf("sizes %v: %w", sizes[:min(k, len(sizes))], ErrOverflow)
		}
		product = lo
	}

	return product, nil
}
