// Package lvlds is your in-memory toolbox of classic data structures —
// the ordered trees, lists, stacks and queues every program eventually
// reaches for, implemented once, carefully, with generics.
//
// 🚀 What is lvlds?
//
//	A small, focused library that brings together:
//		• Ordered key trees: unbalanced BST with ordered enumeration
//		• Linked lists: singly and doubly linked, generic payloads
//		• Stacks & queues: LIFO/FIFO with explicit underflow errors
//		• Searching: binary & linear search over slices
//		• Sorting: stable merge sort, non-destructive
//
// ✨ Why choose lvlds?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Explicit failure – sentinel errors, no panics on misuse
//   - Pure Go – no cgo, no runtime deps, generics throughout
//   - Honest complexity – every operation documents its cost
//
// Everything is organized under focused subpackages:
//
//	bst/       — ordered key tree: Insert, Contains, InOrderKeys
//	list/      — singly & doubly linked lists
//	stack/     — LIFO stack
//	queue/     — FIFO queue
//	search/    — binary & linear search
//	mergesort/ — stable merge sort
//
// Quick ASCII example:
//
//	      8
//	     / \
//	    3   10
//	   / \    \
//	  1   6    14
//
//	an ordered key tree after inserting 8, 3, 10, 1, 6, 14.
//
// Dive into each package's doc.go and example_test.go for runnable
// walkthroughs.
//
//	go get github.com/katalvlaran/lvlds/bst
package lvlds
