package sorting_test

import (
	"math/rand"
	"testing"

	"github.com/hnthap/godsa/sorting"
)

// benchInput returns a fresh shuffled array of size n, identical
// across benchmark variants thanks to the fixed seed.
func benchInput(n int) []int64 {
	rnd := rand.New(rand.NewSource(11))
	arr := make([]int64, n)
	for i := range arr {
		arr[i] = int64(rnd.Intn(n))
	}
	return arr
}

// BenchmarkSort_Random compares the three sorters on shuffled input.
func BenchmarkSort_Random(b *testing.B) {
	const n = 1 << 12
	for name, sorter := range sorters {
		b.Run(name, func(b *testing.B) {
			src := benchInput(n)
			work := make([]int64, n)

			b.ReportAllocs()
			b.SetBytes(int64(n * 8))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(work, src)
				sorter(work)
			}
		})
	}
}

// BenchmarkMergeSort_Sorted shows merge sort is insensitive to
// pre-sorted input; the tree sorts are deliberately excluded here
// since their unbalanced tree degrades to O(n²) on this shape.
func BenchmarkMergeSort_Sorted(b *testing.B) {
	const n = 1 << 12
	src := make([]int64, n)
	for i := range src {
		src[i] = int64(i)
	}
	work := make([]int64, n)

	b.ReportAllocs()
	b.SetBytes(int64(n * 8))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(work, src)
		sorting.MergeSort(work)
	}
}
