// Package stack implements a generic LIFO stack.
//
// Push, Pop and Peek are O(1) (amortized for Push); underflow is
// reported with ErrEmptyStack rather than a panic. The zero value is
// an empty stack, ready to use.
//
// A Stack is not safe for concurrent use; callers must synchronize.
package stack
