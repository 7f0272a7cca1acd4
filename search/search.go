package search

import "cmp"

// Binary locates target in sorted (ascending) and returns its index.
// On a miss it returns (-1, false). If target occurs more than once,
// the index of any one occurrence is returned.
//
// The input must already be sorted; Binary does not verify this.
func Binary[K cmp.Ordered](sorted []K, target K) (int, bool) {
	low, high := 0, len(sorted)-1
	for low <= high {
		mid := int(uint(low+high) >> 1) // avoids overflow on huge slices
		switch {
		case sorted[mid] == target:
			return mid, true
		case sorted[mid] < target:
			low = mid + 1
		default:
			high = mid - 1
		}
	}

	return -1, false
}

// Linear locates target by scanning items front-to-back and returns
// the index of the first occurrence, or (-1, false).
func Linear[K comparable](items []K, target K) (int, bool) {
	for i, v := range items {
		if v == target {
			return i, true
		}
	}

	return -1, false
}
