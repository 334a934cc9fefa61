package partition_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/junction/partition"
)

const maxPoints = 40

// pairOf decodes a generated code into two point IDs below n.
func pairOf(code, n int) (int, int) {
	return (code / maxPoints) % n, (code % maxPoints) % n
}

// TestPartitionProperties checks the partition invariants over random union
// sequences for both strategies.
func TestPartitionProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	nGen := gen.IntRange(1, maxPoints)
	opsGen := gen.SliceOf(gen.IntRange(0, maxPoints*maxPoints-1))

	// Property: sizes always sum to n, and every ID appears exactly once.
	properties.Property("cover exactly once", prop.ForAll(
		func(n int, ops []int) bool {
			for _, s := range strategies {
				c, _ := partition.New(s, n)
				for _, op := range ops {
					a, b := pairOf(op, n)
					c.Union(a, b)

					seen := make([]bool, n)
					total := 0
					for _, members := range c.SortedBySizeDescending() {
						for _, id := range members {
							if seen[id] {
								return false
							}
							seen[id] = true
							total++
						}
					}
					if total != n {
						return false
					}
				}
			}
			return true
		},
		nGen, opsGen,
	))

	// Property: Count never increases, drops by exactly one per effective
	// union, and a repeated union changes nothing.
	properties.Property("monotone and idempotent", prop.ForAll(
		func(n int, ops []int) bool {
			for _, s := range strategies {
				c, _ := partition.New(s, n)
				prev := c.Count()
				for _, op := range ops {
					a, b := pairOf(op, n)
					merged := c.Union(a, b)
					now := c.Count()
					if merged && now != prev-1 || !merged && now != prev {
						return false
					}
					if c.Find(a) != c.Find(b) {
						return false
					}
					if c.Union(a, b) || c.Count() != now {
						return false
					}
					prev = now
				}
			}
			return true
		},
		nGen, opsGen,
	))

	// Property: the scan and indexed partitions are observably identical.
	properties.Property("scan equals indexed", prop.ForAll(
		func(n int, ops []int) bool {
			scan := partition.NewScan(n)
			dsu := partition.NewDisjointSet(n)
			for _, op := range ops {
				a, b := pairOf(op, n)
				if scan.Union(a, b) != dsu.Union(a, b) {
					return false
				}
			}
			if scan.Count() != dsu.Count() {
				return false
			}
			x, y := scan.SortedBySizeDescending(), dsu.SortedBySizeDescending()
			if len(x) != len(y) {
				return false
			}
			for i := range x {
				if len(x[i]) != len(y[i]) {
					return false
				}
				for j := range x[i] {
					if x[i][j] != y[i][j] {
						return false
					}
				}
			}
			xs, ys := scan.Sizes(), dsu.Sizes()
			for i := range xs {
				if xs[i] != ys[i] {
					return false
				}
			}
			return true
		},
		nGen, opsGen,
	))

	properties.TestingRun(t)
}
