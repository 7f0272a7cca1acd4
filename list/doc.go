// Package list implements generic singly and doubly linked lists.
//
// Singly keeps only a head pointer, matching the minimal textbook
// shape: Prepend and PopFront are O(1), Append walks to the end in
// O(n). Doubly keeps head and tail with back links, so both ends
// support O(1) insertion and removal and traversal runs either way.
//
// Neither list is safe for concurrent use; callers must synchronize.
//
// Complexity:
//
//	Singly: Prepend/PopFront O(1); Append/At O(n)
//	Doubly: Append/Prepend/PopFront/PopBack O(1); traversal O(n)
//
// Errors:
//   - ErrEmptyList       — removal or peek on an empty list.
//   - ErrIndexOutOfRange — At(i) outside [0, Len()).
package list
