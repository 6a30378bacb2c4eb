package hyrmis

import (
	"slices"
	"strconv"
	"testing"

	"github.com/zeebo/mwc"
)

func generateInt64(n int) []int64 {
	return randomInts(mwc.Rand(), n, -10000, 10000)
}

func BenchmarkSort_100(b *testing.B) {
	benchmarkSort(b, 100)
}

func BenchmarkSort_1000(b *testing.B) {
	benchmarkSort(b, 1000)
}

func BenchmarkSort_10000(b *testing.B) {
	benchmarkSort(b, 10000)
}

func BenchmarkSort_100000(b *testing.B) {
	benchmarkSort(b, 100000)
}

func benchmarkSort(b *testing.B, n int) {
	ref := generateInt64(n)
	data := make([]int64, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		Sort(data)
	}
}

// Per-strategy benchmarks at sizes around the default thresholds.
func BenchmarkStrategies(b *testing.B) {
	for _, n := range []int{16, 64, 1000, 10000} {
		ref := generateInt64(n)
		for _, s := range Strategies {
			b.Run(s.String()+"/"+strconv.Itoa(n), func(b *testing.B) {
				data := make([]int64, n)
				for i := 0; i < b.N; i++ {
					copy(data, ref)
					SortWith(data, s)
				}
			})
		}
	}
}

// Stdlib comparison benchmarks
func BenchmarkStdlib_10000(b *testing.B) {
	ref := generateInt64(10000)
	data := make([]int64, 10000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, ref)
		slices.Sort(data)
	}
}
