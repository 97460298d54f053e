package sorting_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/hnthap/godsa/sorting"
	"github.com/stretchr/testify/assert"
)

// sorters under test, all sharing the in-place []int64 contract.
var sorters = map[string]func([]int64){
	"MergeSort":         sorting.MergeSort,
	"TreeSort":          sorting.TreeSort,
	"TreeSortIterative": sorting.TreeSortIterative,
}

// TestSort_Fixed covers small fixed inputs including the reference
// array of the original programs.
func TestSort_Fixed(t *testing.T) {
	cases := map[string][]int64{
		"empty":      {},
		"singleton":  {42},
		"pair":       {2, 1},
		"sorted":     {1, 2, 3, 4, 5},
		"reversed":   {5, 4, 3, 2, 1},
		"duplicates": {3, 1, 3, 1, 3},
		"reference":  {3, 10, 2, 1, -100, 4, 95, 3, 489, 78},
	}
	for sorterName, sorter := range sorters {
		for caseName, input := range cases {
			t.Run(sorterName+"/"+caseName, func(t *testing.T) {
				got := append([]int64(nil), input...)
				want := append([]int64(nil), input...)
				sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

				sorter(got)
				assert.Equal(t, want, got)
			})
		}
	}
}

// TestSort_Random cross-checks all sorters against the standard
// library on larger random arrays with heavy duplication.
func TestSort_Random(t *testing.T) {
	rnd := rand.New(rand.NewSource(99))
	for sorterName, sorter := range sorters {
		t.Run(sorterName, func(t *testing.T) {
			input := make([]int64, 1000)
			for i := range input {
				input[i] = int64(rnd.Intn(100) - 50)
			}
			want := append([]int64(nil), input...)
			sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

			sorter(input)
			assert.Equal(t, want, input)
		})
	}
}

// TestSort_NilSlice treats nil as the empty array.
func TestSort_NilSlice(t *testing.T) {
	for sorterName, sorter := range sorters {
		t.Run(sorterName, func(t *testing.T) {
			assert.NotPanics(t, func() { sorter(nil) })
		})
	}
}
