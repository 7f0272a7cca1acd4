package stack

import "errors"

// ErrEmptyStack is returned by Pop and Peek on an empty stack.
var ErrEmptyStack = errors.New("stack: stack is empty")

// Stack is a last-in-first-out container backed by a slice.
type Stack[T any] struct {
	items []T
}

// New returns an empty stack.
func New[T any]() *Stack[T] { return &Stack[T]{} }

// Push adds v on top of the stack. Amortized O(1).
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the most recently pushed element,
// or ErrEmptyStack.
func (s *Stack[T]) Pop() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmptyStack
	}
	top := s.items[len(s.items)-1]
	// Clear the vacated slot so the backing array drops its reference.
	var zero T
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]

	return top, nil
}

// Peek returns the top element without removing it, or ErrEmptyStack.
func (s *Stack[T]) Peek() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmptyStack
	}

	return s.items[len(s.items)-1], nil
}

// Len returns the number of stacked elements.
func (s *Stack[T]) Len() int { return len(s.items) }

// Empty reports whether the stack holds no elements.
func (s *Stack[T]) Empty() bool { return len(s.items) == 0 }
