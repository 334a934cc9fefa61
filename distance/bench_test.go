package distance_test

import (
	"testing"

	"github.com/katalvlaran/junction/distance"
)

// BenchmarkBuild measures sequential index construction for 1000 points.
func BenchmarkBuild(b *testing.B) {
	s := randomStore(b, 1000, 100000, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = distance.Build(s)
	}
}

// BenchmarkBuildParallel measures the same construction over 8 workers.
func BenchmarkBuildParallel(b *testing.B) {
	s := randomStore(b, 1000, 100000, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = distance.Build(s, distance.WithWorkers(8))
	}
}
