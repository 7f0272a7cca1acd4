package list

import "fmt"

// snode is one element of a singly linked list.
type snode[T any] struct {
	data T
	next *snode[T]
}

// Singly is a head-only singly linked list.
//
// The zero value is an empty list, ready to use.
type Singly[T any] struct {
	head *snode[T]
	size int
}

// NewSingly returns an empty singly linked list.
func NewSingly[T any]() *Singly[T] { return &Singly[T]{} }

// Append adds v at the end of the list.
// Without a tail pointer this walks the whole list: O(n).
func (l *Singly[T]) Append(v T) {
	n := &snode[T]{data: v}
	if l.head == nil {
		l.head = n
		l.size++
		return
	}
	last := l.head
	for last.next != nil {
		last = last.next
	}
	last.next = n
	l.size++
}

// Prepend adds v at the front of the list in O(1).
func (l *Singly[T]) Prepend(v T) {
	l.head = &snode[T]{data: v, next: l.head}
	l.size++
}

// PopFront removes and returns the first element, or ErrEmptyList.
func (l *Singly[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmptyList
	}
	v := l.head.data
	l.head = l.head.next
	l.size--

	return v, nil
}

// At returns the element at index i (0-based) in O(n).
func (l *Singly[T]) At(i int) (T, error) {
	if i < 0 || i >= l.size {
		var zero T
		return zero, fmt.Errorf("%w: %d with length %d", ErrIndexOutOfRange, i, l.size)
	}
	cur := l.head
	for ; i > 0; i-- {
		cur = cur.next
	}

	return cur.data, nil
}

// Values returns all elements front-to-back as a fresh slice.
func (l *Singly[T]) Values() []T {
	out := make([]T, 0, l.size)
	for cur := l.head; cur != nil; cur = cur.next {
		out = append(out, cur.data)
	}

	return out
}

// Len returns the number of elements.
func (l *Singly[T]) Len() int { return l.size }
