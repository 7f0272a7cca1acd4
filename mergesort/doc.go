// Package mergesort implements stable merge sort over slices.
//
// The input is split recursively into halves (log n levels) and the
// sorted halves are merged back in linear passes, giving O(n log n)
// time and O(n) auxiliary memory. The sort is non-destructive — the
// input slice is never modified — and stable: equal elements keep
// their relative order, which matters for MergeSortFunc with partial
// keys.
package mergesort
