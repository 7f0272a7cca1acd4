package list

// dnode is one element of a doubly linked list.
type dnode[T any] struct {
	data T
	prev *dnode[T]
	next *dnode[T]
}

// Doubly is a doubly linked list with head and tail pointers,
// giving O(1) insertion and removal at both ends.
//
// The zero value is an empty list, ready to use.
type Doubly[T any] struct {
	head *dnode[T]
	tail *dnode[T]
	size int
}

// NewDoubly returns an empty doubly linked list.
func NewDoubly[T any]() *Doubly[T] { return &Doubly[T]{} }

// Append adds v at the end in O(1).
func (l *Doubly[T]) Append(v T) {
	n := &dnode[T]{data: v, prev: l.tail}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// Prepend adds v at the front in O(1).
func (l *Doubly[T]) Prepend(v T) {
	n := &dnode[T]{data: v, next: l.head}
	if l.head == nil {
		l.tail = n
	} else {
		l.head.prev = n
	}
	l.head = n
	l.size++
}

// PopFront removes and returns the first element, or ErrEmptyList.
func (l *Doubly[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmptyList
	}
	v := l.head.data
	l.head = l.head.next
	if l.head == nil {
		l.tail = nil
	} else {
		l.head.prev = nil
	}
	l.size--

	return v, nil
}

// PopBack removes and returns the last element, or ErrEmptyList.
func (l *Doubly[T]) PopBack() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, ErrEmptyList
	}
	v := l.tail.data
	l.tail = l.tail.prev
	if l.tail == nil {
		l.head = nil
	} else {
		l.tail.next = nil
	}
	l.size--

	return v, nil
}

// Values returns all elements front-to-back as a fresh slice.
func (l *Doubly[T]) Values() []T {
	out := make([]T, 0, l.size)
	for cur := l.head; cur != nil; cur = cur.next {
		out = append(out, cur.data)
	}

	return out
}

// ValuesReverse returns all elements back-to-front, exercising the
// back links.
func (l *Doubly[T]) ValuesReverse() []T {
	out := make([]T, 0, l.size)
	for cur := l.tail; cur != nil; cur = cur.prev {
		out = append(out, cur.data)
	}

	return out
}

// Len returns the number of elements.
func (l *Doubly[T]) Len() int { return l.size }
