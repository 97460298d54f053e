package avl_test

import (
	"math/rand"
	"testing"

	"github.com/hnthap/godsa/avl"
)

// BenchmarkInsert_Sequential measures the worst case for a plain BST:
// already-sorted keys, which the rotations keep at logarithmic height.
func BenchmarkInsert_Sequential(b *testing.B) {
	const n = 1 << 12

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var root *avl.Node
		for k := int64(0); k < n; k++ {
			root, _ = avl.Insert(root, k)
		}
	}
}

// BenchmarkInsert_Random measures insertion of shuffled keys.
func BenchmarkInsert_Random(b *testing.B) {
	const n = 1 << 12
	rnd := rand.New(rand.NewSource(1))
	keys := make([]int64, n)
	for i := range keys {
		keys[i] = int64(rnd.Intn(n))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var root *avl.Node
		for _, k := range keys {
			root, _ = avl.Insert(root, k)
		}
	}
}

// BenchmarkWalk measures a full reversed in-order traversal.
func BenchmarkWalk(b *testing.B) {
	const n = 1 << 14
	var root *avl.Node
	for k := int64(0); k < n; k++ {
		root, _ = avl.Insert(root, k)
	}
	sink := int64(0)
	visit := func(key int64, _ int) error {
		sink += key
		return nil
	}

	b.ReportAllocs()
	b.SetBytes(n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = avl.Walk(root, visit)
	}
	_ = sink
}
