package dsu

// MaxElements is the largest n accepted by New: member indices are stored
// in 32-bit roaring bitmaps.
const MaxElements = 1 << 32

// DSU is a disjoint-set forest with union-by-size and path halving.
type DSU struct {
	parent []int // parent[x] == x for roots
	size   []int // size[r] is the member count of root r; stale for non-roots
	count  int   // number of components
}

// New returns a DSU of n singleton components. Negative n is treated as 0.
// Panics if n exceeds MaxElements.
// Complexity: O(n).
func New(n int) *DSU {
	if n < 0 {
		n = 0
	}
	if uint64(n) > MaxElements {
		panic("dsu: New(n>MaxElements)")
	}
	d := &DSU{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d
}

// Len returns the number of elements.
func (d *DSU) Len() int { return len(d.parent) }

// Count returns the current number of components.
func (d *DSU) Count() int { return d.count }

// Find returns the root of x's component. Every visited node is re-pointed
// at its grandparent (path halving), so repeated calls flatten the tree.
// Panics when x is out of range.
func (d *DSU) Find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// Union merges the components of a and b. It returns true when a merge
// happened and false, with no mutation, when they were already co-located.
// The smaller tree is attached under the larger; equal sizes keep the
// smaller root index so results do not depend on argument order.
func (d *DSU) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	if d.size[ra] < d.size[rb] || (d.size[ra] == d.size[rb] && rb < ra) {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	d.size[ra] += d.size[rb]
	d.count--

	return true
}

// Connected reports whether a and b share a component.
func (d *DSU) Connected(a, b int) bool {
	return d.Find(a) == d.Find(b)
}

// Size returns the member count of x's component.
func (d *DSU) Size(x int) int {
	return d.size[d.Find(x)]
}

// Spanning reports whether a single component holds every element.
// An empty DSU is not spanning.
func (d *DSU) Spanning() bool {
	return d.count == 1
}
