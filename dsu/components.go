package dsu

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Component is one materialized member set of a DSU.
type Component struct {
	// Root is the representative index at materialization time.
	Root int

	// Members holds every index in the component.
	Members *roaring.Bitmap
}

// Size returns the member count.
func (c Component) Size() int {
	return int(c.Members.GetCardinality())
}

// Min returns the smallest member index.
func (c Component) Min() int {
	return int(c.Members.Minimum())
}

// Components materializes the current partition.
//
// Each index 0..n-1 is visited exactly once in ascending order and added to
// its root's bitmap, so isolated elements come back as singletons. The
// returned slice is ordered by first appearance, i.e. by ascending Min().
// Complexity: O(n·α(n)) finds plus n bitmap inserts.
func (d *DSU) Components() []Component {
	slot := make([]int, len(d.parent)) // root -> index into comps, -1 if unseen
	for i := range slot {
		slot[i] = -1
	}
	comps := make([]Component, 0, d.count)

	for x := range d.parent {
		r := d.Find(x)
		i := slot[r]
		if i < 0 {
			i = len(comps)
			slot[r] = i
			comps = append(comps, Component{Root: r, Members: roaring.New()})
		}
		// x < MaxElements, guarded by New.
		comps[i].Members.Add(uint32(x))
	}

	return comps
}
