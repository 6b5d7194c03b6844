package lrucache

// elem is a node in the recency ring. The zero value is only valid as the
// ring's sentinel root.
type elem[T any] struct {
	next, prev *elem[T]
	v          T
}

// ring is the recency ordering: a doubly-linked list threaded through a
// single sentinel root, so the head-before-MRU and tail-after-LRU anchors
// are the two sides of one permanently-allocated element. root.next is the
// MRU end, root.prev the LRU end; an empty ring has the root linked to
// itself. The zero value is not valid, use newRing.
type ring[T any] struct {
	root elem[T]
	len  int
}

func newRing[T any]() *ring[T] {
	r := new(ring[T])
	r.init()
	return r
}

// init resets the ring to empty by re-linking the sentinel to itself.
// Dropped elements keep their links; callers must not reuse them.
func (r *ring[T]) init() {
	r.root.next = &r.root
	r.root.prev = &r.root
	r.len = 0
}

// pushFront splices e in at the MRU end.
func (r *ring[T]) pushFront(e *elem[T]) {
	e.prev = &r.root
	e.next = r.root.next
	e.prev.next = e
	e.next.prev = e
	r.len++
}

// remove unlinks e, re-joining its former neighbors to each other.
func (r *ring[T]) remove(e *elem[T]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next = nil
	e.prev = nil
	r.len--
}

// moveToFront relocates e to the MRU end. No-op when already there.
func (r *ring[T]) moveToFront(e *elem[T]) {
	if r.root.next == e {
		return
	}
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev = &r.root
	e.next = r.root.next
	e.prev.next = e
	e.next.prev = e
}

// front returns the MRU element, or nil when the ring is empty.
func (r *ring[T]) front() *elem[T] {
	if r.root.next == &r.root {
		return nil
	}
	return r.root.next
}

// back returns the LRU element, or nil when the ring is empty.
func (r *ring[T]) back() *elem[T] {
	if r.root.prev == &r.root {
		return nil
	}
	return r.root.prev
}
