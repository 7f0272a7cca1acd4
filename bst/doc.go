// Package bst implements an ordered key tree: an unbalanced binary
// search tree holding a multiset of totally-ordered keys, with
// insertion, membership queries, and ascending enumeration.
//
// 🚀 What is an ordered key tree?
//
//	Keys route left when strictly smaller, right otherwise, so an
//	in-order walk yields them in ascending order.  It is the textbook
//	dictionary structure, useful for:
//	  • Sorted iteration over a growing set of keys
//	  • Membership tests without pre-sorting
//	  • Teaching & prototyping ordered-collection behavior
//
// ✨ Key features:
//   - generic over any cmp.Ordered key, or any type via a Comparator
//   - duplicate policy is explicit: duplicates permitted, routed right
//   - iterative descent and explicit-stack traversal — no recursion,
//     so degenerate (sorted-input) trees cannot exhaust the call stack
//   - observation hook WithOnInsert(key, depth) for instrumentation
//   - sentinel errors, no panics: ErrIncomparableKey, ErrNilComparator,
//     ErrEmptyTree
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlds/bst"
//
//	t := bst.New[int]()
//	for _, k := range []int{8, 3, 10, 1, 6, 14, 4, 7} {
//	    _ = t.Insert(k)
//	}
//	keys := t.InOrderKeys() // [1 3 4 6 7 8 10 14]
//	ok, _ := t.Contains(6)  // true
//
// Performance:
//
//   - Insert/Contains: O(h), h = tree height; O(log n) on random input,
//     O(n) worst case (sorted input — the tree does not rebalance)
//   - InOrderKeys/Walk: O(n) time, O(h) auxiliary stack
//
// Concurrency: a Tree is single-owner. Wrap it in a mutex if shared.
//
// There is no Delete and no rebalancing; both are deliberate non-goals.
// See example_test.go for runnable walkthroughs.
package bst
