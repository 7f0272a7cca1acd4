package mergesort

import "cmp"

// MergeSort returns a new ascending-sorted copy of in.
// The input slice is left untouched.
func MergeSort[T cmp.Ordered](in []T) []T {
	return MergeSortFunc(in, cmp.Compare[T])
}

// MergeSortFunc returns a new copy of in sorted by compare.
// The sort is stable: elements comparing equal keep their input order.
func MergeSortFunc[T any](in []T, compare func(a, b T) int) []T {
	if len(in) <= 1 {
		// Still copy: callers may mutate the result freely.
		return append([]T(nil), in...)
	}

	mid := len(in) / 2
	left := MergeSortFunc(in[:mid], compare)
	right := MergeSortFunc(in[mid:], compare)

	return merge(left, right, compare)
}

// merge interleaves two sorted runs; ties take the left run first,
// which is what makes the sort stable.
func merge[T any](left, right []T, compare func(a, b T) int) []T {
	out := make([]T, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if compare(left[i], right[j]) <= 0 {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}
	out = append(out, left[i:]...)
	out = append(out, right[j:]...)

	return out
}
