package list

import "errors"

// Sentinel errors for list operations.
var (
	// ErrEmptyList is returned when removing from or peeking at an empty list.
	ErrEmptyList = errors.New("list: list is empty")

	// ErrIndexOutOfRange is returned when an index is outside [0, Len()).
	ErrIndexOutOfRange = errors.New("list: index out of range")
)
