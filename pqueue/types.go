package pqueue

import "errors"

// Sentinel errors for queue operations.
var (
	// ErrEmptyQueue indicates PeekTop or ExtractTop was called on an empty queue.
	ErrEmptyQueue = errors.New("pqueue: queue is empty")

	// ErrUnknownHandle indicates the handle was never issued or has already been extracted.
	ErrUnknownHandle = errors.New("pqueue: handle not in queue")
)

// Handle identifies one inserted entry for the lifetime of that entry in the queue.
// Handles are issued in insertion order starting at zero and are never reused
// by the same Queue.
type Handle int

// entry pairs an element with the handle it was issued under.
type entry[T any] struct {
	handle Handle
	item   T
}
