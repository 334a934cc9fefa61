package partition

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for partition construction.
var (
	// ErrUnknownStrategy indicates an unsupported Strategy value.
	ErrUnknownStrategy = errors.New("partition: unknown strategy")

	// ErrNegativeSize indicates a negative point count.
	ErrNegativeSize = errors.New("partition: negative size")
)

// Strategy selects the Clusters implementation.
type Strategy string

const (
	// StrategyScan selects the linear-scan partition.
	StrategyScan Strategy = "scan"

	// StrategyIndexed selects the union-find partition.
	StrategyIndexed Strategy = "indexed"
)

// Clusters is a mutable partition of {0..Len()-1}.
type Clusters interface {
	// Len returns the number of points covered.
	Len() int

	// Find returns a handle for the cluster holding id, or -1 for an
	// invalid id.
	Find(id int) int

	// Union merges the clusters of a and b and reports whether a merge
	// happened. It is a no-op returning false when they already share a
	// cluster or either id is invalid.
	Union(a, b int) bool

	// Count returns the current number of clusters.
	Count() int

	// SortedBySizeDescending returns every cluster's members in ascending
	// order, clusters ordered by size descending, ties by lowest member.
	SortedBySizeDescending() [][]int

	// Sizes returns cluster sizes in SortedBySizeDescending order.
	Sizes() []int
}

// New dispatches on strategy and returns n singleton clusters.
func New(strategy Strategy, n int) (Clusters, error) {
	if n < 0 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrNegativeSize)
	}
	switch strategy {
	case StrategyScan:
		return NewScan(n), nil
	case StrategyIndexed:
		return NewDisjointSet(n), nil
	default:
		return nil, fmt.Errorf("%q: %w", strategy, ErrUnknownStrategy)
	}
}

// ParseStrategy maps a configuration string to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyScan, StrategyIndexed:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownStrategy)
	}
}

// orderBySize sorts member lists by size descending, then by first member.
// Each list must already be sorted ascending and non-empty.
func orderBySize(groups [][]int) {
	sort.Slice(groups, func(i, j int) bool {
		if len(groups[i]) != len(groups[j]) {
			return len(groups[i]) > len(groups[j])
		}
		return groups[i][0] < groups[j][0]
	})
}

func sizesOf(groups [][]int) []int {
	out := make([]int, len(groups))
	for i, g := range groups {
		out[i] = len(g)
	}

	return out
}
