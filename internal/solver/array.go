package solver

import (
	"slices"
)

// Sorted returns an ascending copy of values
func Sorted(values []int) []int {
	out := slices.Clone(values)
	slices.Sort(out)
	return out
}

// BubblePass performs exactly one full bubble-sort pass on a copy
func BubblePass(values []int) []int {
	a := slices.Clone(values)
	for j := 0; j+1 < len(a); j++ {
		if a[j] > a[j+1] {
			a[j], a[j+1] = a[j+1], a[j]
		}
	}
	return a
}

// InsertionPass inserts a[1] into the sorted prefix a[0:1] on a copy
func InsertionPass(values []int) []int {
	a := slices.Clone(values)
	if len(a) < 2 {
		return a
	}
	key := a[1]
	i := 0
	for i >= 0 && a[i] > key {
		a[i+1] = a[i]
		i--
	}
	a[i+1] = key
	return a
}

// Partition runs one Lomuto partition around the last element on a copy and
// returns the array and the pivot's final index
func Partition(values []int) ([]int, int) {
	a := slices.Clone(values)
	if len(a) == 0 {
		return a, -1
	}
	hi := len(a) - 1
	pivot := a[hi]
	i := -1
	for j := 0; j < hi; j++ {
		if a[j] <= pivot {
			i++
			a[i], a[j] = a[j], a[i]
		}
	}
	a[i+1], a[hi] = a[hi], a[i+1]
	return a, i + 1
}

// MaxHeapify sifts a[i] down on a copy
func MaxHeapify(values []int, i int) []int {
	a := slices.Clone(values)
	siftDown(a, i)
	return a
}

func siftDown(a []int, i int) {
	if i < 0 || i >= len(a) {
		return
	}
	largest := i
	l, r := 2*i+1, 2*i+2
	if l < len(a) && a[l] > a[largest] {
		largest = l
	}
	if r < len(a) && a[r] > a[largest] {
		largest = r
	}
	if largest != i {
		a[i], a[largest] = a[largest], a[i]
		siftDown(a, largest)
	}
}

// LinearSearch returns the first index of target, or -1
func LinearSearch(values []int, target int) int {
	for i, v := range values {
		if v == target {
			return i
		}
	}
	return -1
}

// BinarySearch returns an index of target in sorted, or -1
func BinarySearch(sorted []int, target int) int {
	_, idx := BinarySearchPath(sorted, target)
	return idx
}

// BinarySearchPath returns the probed midpoints and the index found, or -1
func BinarySearchPath(sorted []int, target int) ([]int, int) {
	var mids []int
	low, high := 0, len(sorted)-1
	for low <= high {
		mid := low + (high-low)/2
		mids = append(mids, mid)
		switch {
		case sorted[mid] == target:
			return mids, mid
		case sorted[mid] < target:
			low = mid + 1
		default:
			high = mid - 1
		}
	}
	return mids, -1
}

// InsertionSortSteps returns the array after each outer iteration
func InsertionSortSteps(values []int) [][]int {
	a := slices.Clone(values)
	var steps [][]int
	for j := 1; j < len(a); j++ {
		key := a[j]
		i := j - 1
		for i >= 0 && a[i] > key {
			a[i+1] = a[i]
			i--
		}
		a[i+1] = key
		steps = append(steps, slices.Clone(a))
	}
	return steps
}

// SelectionSortSteps returns the array after each selection swap
func SelectionSortSteps(values []int) [][]int {
	a := slices.Clone(values)
	var steps [][]int
	for i := 0; i+1 < len(a); i++ {
		m := i
		for j := i + 1; j < len(a); j++ {
			if a[j] < a[m] {
				m = j
			}
		}
		a[i], a[m] = a[m], a[i]
		steps = append(steps, slices.Clone(a))
	}
	return steps
}
