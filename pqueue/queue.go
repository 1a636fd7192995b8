package pqueue

// Queue is an indexed binary heap ordered by a caller-supplied less function.
//
// entries is the dense heap array; slots maps each live handle to its
// current index in entries. Both are updated together by swap, which is the
// only place entries move.
type Queue[T any] struct {
	less    func(a, b T) bool
	entries []entry[T]
	slots   map[Handle]int
	next    Handle
}

// New returns an empty Queue ordered by less. capacity is a size hint.
func New[T any](less func(a, b T) bool, capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Queue[T]{
		less:    less,
		entries: make([]entry[T], 0, capacity),
		slots:   make(map[Handle]int, capacity),
	}
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return len(q.entries) }

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return len(q.entries) == 0 }

// Insert appends item, registers its slot, and sifts it toward the root while
// it has strictly higher priority than its parent.
//
// Complexity: O(log n).
func (q *Queue[T]) Insert(item T) Handle {
	h := q.next
	q.next++

	q.entries = append(q.entries, entry[T]{handle: h, item: item})
	idx := len(q.entries) - 1
	q.slots[h] = idx
	q.siftUp(idx)

	return h
}

// PeekTop returns the highest-priority element without removing it.
func (q *Queue[T]) PeekTop() (T, error) {
	if len(q.entries) == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}

	return q.entries[0].item, nil
}

// ExtractTop removes and returns the highest-priority element.
//
// Implementation:
//   - Stage 1: Swap the root with the last entry.
//   - Stage 2: Truncate the last entry (the old root).
//   - Stage 3: Sift the new root down, always towards the higher-priority child.
//   - Stage 4: Drop the extracted handle from the slot index.
//
// Complexity: O(log n).
func (q *Queue[T]) ExtractTop() (T, error) {
	n := len(q.entries)
	if n == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}

	q.swap(0, n-1)
	top := q.entries[n-1]
	q.entries[n-1] = entry[T]{} // release item for GC
	q.entries = q.entries[:n-1]
	q.siftDown(0)

	delete(q.slots, top.handle)

	return top.item, nil
}

// Reprioritize restores heap order after the priority of the element under h
// was tightened by the caller (for example a pointer element whose cost field
// was lowered). The element is sifted up from its current slot.
func (q *Queue[T]) Reprioritize(h Handle) error {
	idx, ok := q.slots[h]
	if !ok {
		return ErrUnknownHandle
	}
	q.siftUp(idx)

	return nil
}

// Update replaces the element stored under h and sifts it up. Use it with
// value elements; the new value must not have lower priority than the old one.
func (q *Queue[T]) Update(h Handle, item T) error {
	idx, ok := q.slots[h]
	if !ok {
		return ErrUnknownHandle
	}
	q.entries[idx].item = item
	q.siftUp(idx)

	return nil
}

// Contains reports whether h refers to a queued element.
func (q *Queue[T]) Contains(h Handle) bool {
	_, ok := q.slots[h]
	return ok
}

// Get returns the element queued under h.
func (q *Queue[T]) Get(h Handle) (T, bool) {
	idx, ok := q.slots[h]
	if !ok {
		var zero T
		return zero, false
	}

	return q.entries[idx].item, true
}

func (q *Queue[T]) siftUp(idx int) {
	var parent int
	for idx > 0 {
		parent = (idx - 1) / 2
		if !q.less(q.entries[idx].item, q.entries[parent].item) {
			return
		}
		q.swap(idx, parent)
		idx = parent
	}
}

func (q *Queue[T]) siftDown(idx int) {
	n := len(q.entries)
	var left, right, best int
	for {
		left = 2*idx + 1
		right = left + 1
		best = idx

		if left < n && q.less(q.entries[left].item, q.entries[best].item) {
			best = left
		}
		if right < n && q.less(q.entries[right].item, q.entries[best].item) {
			best = right
		}
		if best == idx {
			return
		}
		q.swap(idx, best)
		idx = best
	}
}

// swap exchanges two heap slots and keeps the slot index in lock-step.
func (q *Queue[T]) swap(i, j int) {
	q.entries[i], q.entries[j] = q.entries[j], q.entries[i]
	q.slots[q.entries[i].handle] = i
	q.slots[q.entries[j].handle] = j
}

// valid reports whether the heap-order invariant holds at every level and the
// slot index agrees with entries. Exposed to tests via export_test.go.
func (q *Queue[T]) valid() bool {
	if len(q.slots) != len(q.entries) {
		return false
	}
	var i int
	var e entry[T]
	for i, e = range q.entries {
		if q.slots[e.handle] != i {
			return false
		}
		if i > 0 && q.less(e.item, q.entries[(i-1)/2].item) {
			return false
		}
	}

	return true
}
