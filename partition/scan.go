package partition

import (
	"slices"
	"sort"
)

// Scan is the reference partition: an ordered list of clusters searched
// linearly.
type Scan struct {
	n        int
	clusters [][]int // each sorted ascending
}

var _ Clusters = (*Scan)(nil)

// NewScan returns n singleton clusters, cluster i holding point i.
func NewScan(n int) *Scan {
	n = max(n, 0)
	clusters := make([][]int, n)
	for i := range clusters {
		clusters[i] = []int{i}
	}

	return &Scan{n: n, clusters: clusters}
}

// Len returns the number of points.
func (s *Scan) Len() int { return s.n }

// Count returns the number of clusters.
func (s *Scan) Count() int { return len(s.clusters) }

// Find returns the current position of the cluster holding id.
// Positions after an absorbed cluster shift down by one on every merge.
func (s *Scan) Find(id int) int {
	if id < 0 || id >= s.n {
		return -1
	}
	for i, members := range s.clusters {
		j := sort.SearchInts(members, id)
		if j < len(members) && members[j] == id {
			return i
		}
	}

	// Unreachable while the partition invariant holds.
	return -1
}

// Union merges the cluster holding b into the cluster holding a.
//
// Steps:
//  1. Locate both clusters; invalid ids or a shared cluster are a no-op.
//  2. Replace a's cluster with the sorted merge of both member lists.
//  3. Remove b's slot, shifting later clusters down.
func (s *Scan) Union(a, b int) bool {
	// 1. Locate.
	ia, ib := s.Find(a), s.Find(b)
	if ia < 0 || ib < 0 || ia == ib {
		return false
	}

	// 2. Absorb.
	s.clusters[ia] = mergeSorted(s.clusters[ia], s.clusters[ib])

	// 3. Drop the absorbed slot.
	s.clusters = slices.Delete(s.clusters, ib, ib+1)

	return true
}

// SortedBySizeDescending returns copies of all clusters, largest first.
func (s *Scan) SortedBySizeDescending() [][]int {
	out := make([][]int, len(s.clusters))
	for i, members := range s.clusters {
		out[i] = slices.Clone(members)
	}
	orderBySize(out)

	return out
}

// Sizes returns cluster sizes, largest first.
func (s *Scan) Sizes() []int {
	return sizesOf(s.SortedBySizeDescending())
}

// Clusters returns copies of the clusters in their current positional
// order, so that Clusters()[Find(id)] contains id.
func (s *Scan) Clusters() [][]int {
	out := make([][]int, len(s.clusters))
	for i, members := range s.clusters {
		out[i] = slices.Clone(members)
	}

	return out
}

func mergeSorted(x, y []int) []int {
	out := make([]int, 0, len(x)+len(y))
	i, j := 0, 0
	for i < len(x) && j < len(y) {
		if x[i] < y[j] {
			out = append(out, x[i])
			i++
		} else {
			out = append(out, y[j])
			j++
		}
	}
	out = append(out, x[i:]...)

	return append(out, y[j:]...)
}
