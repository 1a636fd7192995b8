// Package pqueue provides an indexed binary heap: a priority queue that keeps a
// live position index for every queued element, so a caller holding a Handle
// can change that element's priority and restore the heap order in place.
//
// Overview:
//
//   - The ordering is supplied by the caller as a strict "less" function.
//     less(a, b) == true means a has higher priority than b and sits closer
//     to the root. For a min-heap on cost, pass func(a, b T) bool { return a.cost < b.cost }.
//   - Every Insert returns a Handle, a dense integer identifier for that
//     logical entry. The index map is keyed by Handle, never by the element
//     value, so two entries that compare equal can never collide.
//   - Reprioritize/Update sift an entry up from its current slot. They are
//     meant for priority tightening (decrease-key on a min ordering).
//
// API reference:
//
//	q := pqueue.New[T](less, capacity)
//	h := q.Insert(item)        // O(log n)
//	q.Update(h, item)          // O(log n), replace value then sift up
//	q.Reprioritize(h)          // O(log n), sift up after external mutation
//	top, err := q.PeekTop()    // O(1)
//	top, err := q.ExtractTop() // O(log n)
//	q.Len(), q.IsEmpty()       // O(1)
//
// Tie-break:
//
//   - None. Elements of equal priority extract in an unspecified relative order.
//
// Errors:
//
//   - ErrEmptyQueue:    PeekTop or ExtractTop on an empty queue.
//   - ErrUnknownHandle: Update or Reprioritize with a handle that is not queued.
//
// Thread safety:
//
//   - Queue is not safe for concurrent use.
package pqueue
