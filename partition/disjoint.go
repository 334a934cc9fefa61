package partition

import "sort"

// DisjointSet is an indexed union-find over {0..n-1} with union by size and
// path halving.
type DisjointSet struct {
	parent []int
	size   []int
	count  int
}

var _ Clusters = (*DisjointSet)(nil)

// NewDisjointSet returns n singleton sets; initially parent[v] = v.
func NewDisjointSet(n int) *DisjointSet {
	n = max(n, 0)
	parent := make([]int, n)
	size := make([]int, n)
	for v := range parent {
		parent[v] = v
		size[v] = 1
	}

	return &DisjointSet{parent: parent, size: size, count: n}
}

// Len returns the number of points.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Count returns the number of sets.
func (d *DisjointSet) Count() int { return d.count }

// Find returns the root of the set holding id, or -1 for an invalid id.
// Iterative to avoid deep recursion; each visited node is pointed at its
// grandparent.
func (d *DisjointSet) Find(id int) int {
	if id < 0 || id >= len(d.parent) {
		return -1
	}
	for d.parent[id] != id {
		d.parent[id] = d.parent[d.parent[id]]
		id = d.parent[id]
	}

	return id
}

// Union attaches the smaller tree under the larger root. On equal sizes the
// root of a's set wins.
func (d *DisjointSet) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra < 0 || rb < 0 || ra == rb {
		return false
	}
	if d.size[ra] < d.size[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	d.size[ra] += d.size[rb]
	d.count--

	return true
}

// SortedBySizeDescending groups points by root. Points are visited in
// ascending order, so every member list comes out sorted.
func (d *DisjointSet) SortedBySizeDescending() [][]int {
	slot := make(map[int]int, d.count)
	out := make([][]int, 0, d.count)
	for v := range d.parent {
		r := d.Find(v)
		i, ok := slot[r]
		if !ok {
			i = len(out)
			slot[r] = i
			out = append(out, make([]int, 0, d.size[r]))
		}
		out[i] = append(out[i], v)
	}
	orderBySize(out)

	return out
}

// Sizes returns set sizes, largest first, without materialising members.
// Ties need no ordering: equal sizes are interchangeable.
func (d *DisjointSet) Sizes() []int {
	out := make([]int, 0, d.count)
	for v := range d.parent {
		if d.parent[v] == v {
			out = append(out, d.size[v])
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))

	return out
}
