package bst

import (
	"cmp"
	"fmt"
)

// node is one stored key plus up to two child links.
// A node is created at insertion time and never mutated afterwards,
// except to attach a child.
type node[K any] struct {
	key   K
	left  *node[K]
	right *node[K]
}

// Tree is an unbalanced binary search tree over keys of type K.
//
// Invariant: for every node, all keys in its left subtree compare
// strictly less than the node's key, and all keys in its right subtree
// compare greater than or equal to it (ties route right).
//
// A Tree is not safe for concurrent use; callers must synchronize.
type Tree[K any] struct {
	root *node[K]
	size int
	cmp  Comparator[K]
	// checkKey rejects keys that cannot be ordered under cmp.
	checkKey func(K) error
	opts     Options[K]
}

// New returns an empty tree ordered by the natural ordering of K.
// For floating-point keys, NaN is rejected with ErrIncomparableKey.
func New[K cmp.Ordered](opts ...Option[K]) *Tree[K] {
	o := DefaultOptions[K]()
	for _, fn := range opts {
		fn(&o)
	}

	return &Tree[K]{
		cmp: cmp.Compare[K],
		checkKey: func(k K) error {
			// NaN is the only value a cmp.Ordered type admits that is
			// not equal to itself.
			if k != k {
				return fmt.Errorf("%w: %v", ErrIncomparableKey, k)
			}
			return nil
		},
		opts: o,
	}
}

// NewFunc returns an empty tree ordered by compare.
// A nil compare is recorded and surfaced as ErrNilComparator by the
// first operation; a key that compare does not report equal to itself
// is rejected with ErrIncomparableKey.
func NewFunc[K any](compare Comparator[K], opts ...Option[K]) *Tree[K] {
	o := DefaultOptions[K]()
	for _, fn := range opts {
		fn(&o)
	}

	t := &Tree[K]{cmp: compare, opts: o}
	t.checkKey = func(k K) error {
		if t.cmp == nil {
			return ErrNilComparator
		}
		if t.cmp(k, k) != 0 {
			return fmt.Errorf("%w: %v", ErrIncomparableKey, k)
		}
		return nil
	}

	return t
}

// Insert adds key to the tree.
//
// Duplicate policy: duplicates permitted, routed right — an equal key
// is stored as a second node in the right subtree of the first, so the
// tree holds a multiset.
//
// Cost is O(h) where h is the current height; the tree never
// rebalances, so sorted input degrades h to Len().
func (t *Tree[K]) Insert(key K) error {
	if err := t.checkKey(key); err != nil {
		return err
	}

	n := &node[K]{key: key}
	if t.root == nil {
		t.root = n
		t.size++
		t.opts.OnInsert(key, 0)

		return nil
	}

	// Iterative descent: strictly-less goes left, equal-or-greater right.
	cur, depth := t.root, 0
	for {
		depth++
		if t.cmp(key, cur.key) < 0 {
			if cur.left == nil {
				cur.left = n
				break
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = n
				break
			}
			cur = cur.right
		}
	}

	t.size++
	t.opts.OnInsert(key, depth)

	return nil
}

// Contains reports whether key is present. It has no side effects.
func (t *Tree[K]) Contains(key K) (bool, error) {
	if err := t.checkKey(key); err != nil {
		return false, err
	}

	cur := t.root
	for cur != nil {
		switch c := t.cmp(key, cur.key); {
		case c == 0:
			return true, nil
		case c < 0:
			cur = cur.left
		default:
			cur = cur.right
		}
	}

	return false, nil
}

// InOrderKeys returns all stored keys in ascending order, duplicates
// adjacent. The slice is materialized fresh on every call and does not
// reflect later insertions.
func (t *Tree[K]) InOrderKeys() []K {
	keys := make([]K, 0, t.size)
	_ = t.Walk(func(k K) error {
		keys = append(keys, k)
		return nil
	})

	return keys
}

// Walk visits every key in ascending order, calling visit for each.
// If visit returns an error, the walk stops and that error is returned
// wrapped with the offending key.
//
// The traversal uses an explicit stack, so arbitrarily deep degenerate
// trees cannot overflow the call stack.
func (t *Tree[K]) Walk(visit func(key K) error) error {
	stack := make([]*node[K], 0, 16)
	cur := t.root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.left
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if err := visit(top.key); err != nil {
			return fmt.Errorf("bst: visit %v: %w", top.key, err)
		}
		cur = top.right
	}

	return nil
}

// Len returns the number of stored keys, counting duplicates.
func (t *Tree[K]) Len() int { return t.size }

// Min returns the smallest stored key, or ErrEmptyTree.
func (t *Tree[K]) Min() (K, error) {
	if t.root == nil {
		var zero K
		return zero, ErrEmptyTree
	}
	cur := t.root
	for cur.left != nil {
		cur = cur.left
	}

	return cur.key, nil
}

// Max returns the largest stored key, or ErrEmptyTree.
func (t *Tree[K]) Max() (K, error) {
	if t.root == nil {
		var zero K
		return zero, ErrEmptyTree
	}
	cur := t.root
	for cur.right != nil {
		cur = cur.right
	}

	return cur.key, nil
}

// Height returns the number of nodes on the longest root-to-leaf path:
// 0 for an empty tree, 1 for a single node. Sorted input produces a
// chain whose height equals Len().
func (t *Tree[K]) Height() int {
	if t.root == nil {
		return 0
	}

	type frame struct {
		n     *node[K]
		depth int
	}
	deepest := 0
	stack := []frame{{t.root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > deepest {
			deepest = f.depth
		}
		if f.n.left != nil {
			stack = append(stack, frame{f.n.left, f.depth + 1})
		}
		if f.n.right != nil {
			stack = append(stack, frame{f.n.right, f.depth + 1})
		}
	}

	return deepest
}
