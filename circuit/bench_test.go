package circuit_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/junction/circuit"
	"github.com/katalvlaran/junction/distance"
	"github.com/katalvlaran/junction/partition"
	"github.com/katalvlaran/junction/point"
)

func benchDriver(b *testing.B, s partition.Strategy) *circuit.Driver {
	r := rand.New(rand.NewSource(42))
	coords := make([][3]int64, 1000)
	for i := range coords {
		coords[i] = [3]int64{r.Int63n(100000), r.Int63n(100000), r.Int63n(100000)}
	}
	st, err := point.FromCoordinates(coords)
	require.NoError(b, err)
	ix, err := distance.Build(st, distance.WithWorkers(4))
	require.NoError(b, err)
	d, err := circuit.New(ix, circuit.WithStrategy(s))
	require.NoError(b, err)

	return d
}

// BenchmarkConvergeScan replays 1000 points to convergence with the scan partition.
func BenchmarkConvergeScan(b *testing.B) {
	d := benchDriver(b, partition.StrategyScan)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = d.Converge()
	}
}

// BenchmarkConvergeIndexed does the same with the disjoint set.
func BenchmarkConvergeIndexed(b *testing.B) {
	d := benchDriver(b, partition.StrategyIndexed)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = d.Converge()
	}
}

// BenchmarkTopK measures the 1000-edge top-3 query.
func BenchmarkTopK(b *testing.B) {
	d := benchDriver(b, partition.StrategyScan)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = d.BoundedTopKProduct(1000, 3)
	}
}
