package sorting

// MergeSort sorts arr in place using top-down merge sort with one
// shared scratch buffer. O(n log n) comparisons, O(n) extra memory.
func MergeSort(arr []int64) {
	if len(arr) < 2 {
		return
	}
	buffer := make([]int64, len(arr))
	splitAndMerge(arr, 0, len(arr), buffer)
}

// splitAndMerge sorts the half-open range [left, right).
func splitAndMerge(arr []int64, left, right int, buffer []int64) {
	if right-left <= 1 {
		return
	}
	middle := (left + right) / 2
	splitAndMerge(arr, left, middle, buffer)
	splitAndMerge(arr, middle, right, buffer)
	merge(arr, left, middle, right, buffer)
}

// merge combines the sorted runs [left, middle) and [middle, right)
// through buffer and copies the result back. Ties take the right run
// first, so equal elements may swap relative order.
func merge(arr []int64, left, middle, right int, buffer []int64) {
	i, j, k := left, middle, left
	for i < middle && j < right {
		if arr[i] < arr[j] {
			buffer[k] = arr[i]
			i++
		} else {
			buffer[k] = arr[j]
			j++
		}
		k++
	}
	for i < middle {
		buffer[k] = arr[i]
		i, k = i+1, k+1
	}
	for j < right {
		buffer[k] = arr[j]
		j, k = j+1, k+1
	}
	copy(arr[left:right], buffer[left:right])
}
