// Package search provides classic slice searches: binary search over
// sorted input and linear search over arbitrary input.
//
// Binary halves the candidate range each step, O(log n) comparisons on
// a slice sorted ascending; its behavior on unsorted input is
// undefined, exactly like the textbook algorithm. Linear scans
// front-to-back in O(n) and needs no ordering at all.
//
// Both report a miss as (-1, false) rather than an error: an absent
// element is an ordinary answer, not a failure.
package search
