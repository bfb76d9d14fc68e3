package bigomap

import (
	"math/rand"
	"testing"
)

// Benchmark for standard map
func BenchmarkStandardMap(b *testing.B) {
	m := make(map[int]int, b.N)
	for i := 0; i < b.N; i++ {
		m[rand.Intn(b.N)] = rand.Intn(b.N)
	}
}

func benchmarkKind(b *testing.B, kind Kind) {
	m, err := New[int, int](kind)
	if err != nil {
		b.Fatal(err)
	}
	// keep linear and sorted runs bounded
	keys := 1000
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := rand.Intn(keys)
		m.Set(k, i)
		m.Get(rand.Intn(keys))
		if i%4 == 0 {
			m.Remove(k)
		}
	}
}

func BenchmarkLinear(b *testing.B) {
	benchmarkKind(b, KindLinear)
}

func BenchmarkSorted(b *testing.B) {
	benchmarkKind(b, KindSorted)
}

func BenchmarkHashed(b *testing.B) {
	benchmarkKind(b, KindHashed)
}
