package pqueue

// Valid exposes the heap-order and index consistency check to external tests.
func (q *Queue[T]) Valid() bool { return q.valid() }
