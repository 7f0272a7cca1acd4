package queue

import "errors"

// ErrEmptyQueue is returned by Dequeue and Front on an empty queue.
var ErrEmptyQueue = errors.New("queue: queue is empty")

// Queue is a first-in-first-out container backed by a slice with a
// moving head index.
type Queue[T any] struct {
	items []T
	head  int
}

// New returns an empty queue.
func New[T any]() *Queue[T] { return &Queue[T]{} }

// Enqueue adds v at the back of the queue. Amortized O(1).
func (q *Queue[T]) Enqueue(v T) {
	q.items = append(q.items, v)
}

// Dequeue removes and returns the element at the front of the queue,
// or ErrEmptyQueue. Amortized O(1).
func (q *Queue[T]) Dequeue() (T, error) {
	if q.head >= len(q.items) {
		var zero T
		return zero, ErrEmptyQueue
	}
	front := q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++

	// Compact once the dead prefix dominates the backing slice.
	if q.head > len(q.items)/2 {
		n := copy(q.items, q.items[q.head:])
		for i := n; i < len(q.items); i++ {
			q.items[i] = zero
		}
		q.items = q.items[:n]
		q.head = 0
	}

	return front, nil
}

// Front returns the element at the front without removing it,
// or ErrEmptyQueue.
func (q *Queue[T]) Front() (T, error) {
	if q.head >= len(q.items) {
		var zero T
		return zero, ErrEmptyQueue
	}

	return q.items[q.head], nil
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return len(q.items) - q.head }

// Empty reports whether the queue holds no elements.
func (q *Queue[T]) Empty() bool { return q.Len() == 0 }
