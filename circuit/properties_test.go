package circuit_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/junction/circuit"
	"github.com/katalvlaran/junction/distance"
	"github.com/katalvlaran/junction/partition"
	"github.com/katalvlaran/junction/point"
)

// storeOf turns a flat coordinate list into points, dropping a trailing
// partial triple. Returns nil when fewer than two points result.
func storeOf(flat []int64) *point.Store {
	coords := make([][3]int64, 0, len(flat)/3)
	for i := 0; i+2 < len(flat); i += 3 {
		coords = append(coords, [3]int64{flat[i], flat[i+1], flat[i+2]})
	}
	if len(coords) < 2 {
		return nil
	}
	s, err := point.FromCoordinates(coords)
	if err != nil {
		return nil
	}

	return s
}

// TestDriverProperties checks convergence and determinism over random point
// sets. Coordinates come from a tiny range so equal distances are common and
// the tie-break decides the merge order.
func TestDriverProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	coordsGen := gen.SliceOfN(45, gen.Int64Range(-3, 3))

	// Property: a full replay always converges after exactly n-1 merges, and
	// consuming every edge leaves one circuit of size n.
	properties.Property("always converges", prop.ForAll(
		func(flat []int64) bool {
			s := storeOf(flat)
			if s == nil {
				return true
			}
			ix, err := distance.Build(s)
			if err != nil {
				return false
			}
			d, err := circuit.New(ix)
			if err != nil {
				return false
			}
			c, err := d.Converge()
			if err != nil || c.Merges != s.Len()-1 || c.Step > ix.Len() {
				return false
			}
			all, err := d.BoundedTopKProduct(ix.Len(), 1)
			return err == nil && all == uint64(s.Len())
		},
		coordsGen,
	))

	// Property: results do not depend on partition strategy or on the number
	// of distance workers.
	properties.Property("deterministic", prop.ForAll(
		func(flat []int64, limitSeed int) bool {
			s := storeOf(flat)
			if s == nil {
				return true
			}
			var (
				products []uint64
				closings []circuit.Convergence
			)
			for _, w := range []int{1, 4} {
				ix, err := distance.Build(s, distance.WithWorkers(w))
				if err != nil {
					return false
				}
				limit := 1 + limitSeed%ix.Len()
				for _, strat := range []partition.Strategy{partition.StrategyScan, partition.StrategyIndexed} {
					d, err := circuit.New(ix, circuit.WithStrategy(strat))
					if err != nil {
						return false
					}
					p, err := d.BoundedTopKProduct(limit, 1)
					if err != nil {
						return false
					}
					c, err := d.Converge()
					if err != nil {
						return false
					}
					products = append(products, p)
					closings = append(closings, c)
				}
			}
			for i := 1; i < len(products); i++ {
				if products[i] != products[0] || closings[i] != closings[0] {
					return false
				}
			}
			return true
		},
		coordsGen,
		gen.IntRange(0, 1000),
	))

	properties.TestingRun(t)
}
