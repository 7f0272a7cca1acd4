// Package bst provides tunable options and error definitions
// for the ordered key tree.
package bst

import "errors"

// Sentinel errors for tree operations.
var (
	// ErrIncomparableKey is returned when a key cannot be ordered against
	// other keys: a floating-point NaN under the natural ordering, or any
	// key a custom Comparator does not report equal to itself.
	ErrIncomparableKey = errors.New("bst: key is incomparable under the tree ordering")

	// ErrNilComparator is returned by operations on a tree built with
	// NewFunc and a nil Comparator.
	ErrNilComparator = errors.New("bst: comparator is nil")

	// ErrEmptyTree is returned by Min and Max on an empty tree.
	ErrEmptyTree = errors.New("bst: tree is empty")
)

// Comparator defines a total order over K: negative when a < b,
// zero when a == b, positive when a > b.
type Comparator[K any] func(a, b K) int

// Option configures tree behavior via functional arguments.
type Option[K any] func(*Options[K])

// Options holds callbacks to observe tree mutation.
type Options[K any] struct {
	// OnInsert is called after a key is placed, with the key and the
	// depth of its new node (0 for the root).
	OnInsert func(key K, depth int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions[K any]() Options[K] {
	return Options[K]{
		OnInsert: func(K, int) {},
	}
}

// WithOnInsert registers a callback to run after each insertion.
func WithOnInsert[K any](fn func(key K, depth int)) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnInsert = fn
		}
	}
}
