package rangeset_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/puzzlekit/rangeset"
)

// BenchmarkAddInterval inserts short random intervals over a wide domain.
func BenchmarkAddInterval(b *testing.B) {
	rng := rand.New(rand.NewSource(3))
	s := rangeset.New()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lo := rng.Int63n(1 << 40)
		_ = s.AddInterval(lo, lo+rng.Int63n(1<<20))
	}
}

// BenchmarkInRange probes a set of ~10k disjoint intervals.
// Complexity: O(log n)
func BenchmarkInRange(b *testing.B) {
	s := rangeset.New()
	for i := int64(0); i < 10_000; i++ {
		_ = s.AddInterval(i*100, i*100+50)
	}
	rng := rand.New(rand.NewSource(4))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.InRange(rng.Int63n(1_000_000))
	}
}
