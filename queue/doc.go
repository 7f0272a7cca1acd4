// Package queue implements a generic FIFO queue.
//
// Enqueue and Dequeue are amortized O(1): dequeued slots are reclaimed
// by compacting the backing slice once the head index passes half its
// length. Underflow is reported with ErrEmptyQueue rather than a
// panic. The zero value is an empty queue, ready to use.
//
// A Queue is not safe for concurrent use; callers must synchronize.
package queue
