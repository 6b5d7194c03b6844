package lrucache

import "errors"

// ErrInvalidCapacity is returned by the constructors when the requested
// capacity is not a positive integer. It is the only error this package
// produces; every other operation is total.
var ErrInvalidCapacity = errors.New("lrucache: capacity must be a positive integer")

// Cache is a fixed-capacity key–value cache that evicts the least-recently
// used entry when an insert would exceed capacity.
//
// The core design is intentionally explicit and "mechanical":
// a map gives O(1) key lookup, and a doubly-linked list maintains recency
// ordering. Every mutation updates both together, so they always hold the
// same key set.
//
// Cache is not safe for concurrent use (see the package documentation).
// The zero value is not valid; use New or NewFromConfig.
type Cache[K comparable, V any] struct {
	capacity int
	items    map[K]*elem[entry[K, V]]
	order    *ring[entry[K, V]] // front = most recently used (MRU), back = least recently used (LRU)
}

// entry is the payload stored in the recency ring's elements.
// We keep the key here because eviction starts from list nodes.
type entry[K comparable, V any] struct {
	key   K
	value V
}

// Entry is a key–value pair as returned by snapshot accessors.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Config carries construction options for NewFromConfig.
//
// Capacity is the maximum number of live entries and must be positive.
type Config struct {
	Capacity int
}

// New constructs an empty cache holding at most capacity entries.
//
// capacity must be positive; otherwise New returns ErrInvalidCapacity and
// no cache.
func New[K comparable, V any](capacity int) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Cache[K, V]{
		capacity: capacity,
		items:    make(map[K]*elem[entry[K, V]], capacity),
		order:    newRing[entry[K, V]](),
	}, nil
}

// NewFromConfig is New with the capacity read from a Config value.
// It exists for call-site ergonomics and has no behavior of its own.
func NewFromConfig[K comparable, V any](cfg Config) (*Cache[K, V], error) {
	return New[K, V](cfg.Capacity)
}

// Get returns the value stored for key and reports whether it was present.
// A hit counts as use and promotes the entry to MRU; a miss changes nothing.
//
// Complexity: O(1).
func (c *Cache[K, V]) Get(key K) (V, bool) {
	el, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.moveToFront(el)
	return el.v.value, true
}

// Set writes/overwrites a key.
//
// Overwriting an existing key updates the value in place and promotes the
// entry to MRU without changing the cache size. Inserting a new key into a
// full cache first evicts exactly one entry, the current LRU.
//
// Complexity: O(1), including the eviction.
func (c *Cache[K, V]) Set(key K, value V) {
	if el, ok := c.items[key]; ok {
		el.v.value = value
		c.order.moveToFront(el)
		return
	}

	if len(c.items) >= c.capacity {
		c.evictOldest()
	}

	el := &elem[entry[K, V]]{v: entry[K, V]{key: key, value: value}}
	c.order.pushFront(el)
	c.items[key] = el
}

// Has reports whether key is present without touching the recency ordering.
// This is the difference from Get: Has never promotes.
func (c *Cache[K, V]) Has(key K) bool {
	_, ok := c.items[key]
	return ok
}

// Peek returns the value stored for key without promoting the entry.
// Like Has, it never alters the recency ordering.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	el, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	return el.v.value, true
}

// Delete removes key from the cache and reports whether it was present.
// Removing re-links the entry's former neighbors, so ordering integrity is
// preserved.
func (c *Cache[K, V]) Delete(key K) bool {
	el, ok := c.items[key]
	if !ok {
		return false
	}
	delete(c.items, key)
	c.order.remove(el)
	return true
}

// Clear discards all entries. The cache ends up in the state of a freshly
// constructed instance with the same capacity.
func (c *Cache[K, V]) Clear() {
	clear(c.items)
	c.order.init()
}

// Len returns the number of currently stored entries.
// 0 <= Len() <= Cap() always holds.
func (c *Cache[K, V]) Len() int {
	return len(c.items)
}

// Cap returns the capacity the cache was constructed with.
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// Oldest returns the least-recently-used entry without removing or
// promoting it. ok is false when the cache is empty.
func (c *Cache[K, V]) Oldest() (key K, value V, ok bool) {
	el := c.order.back()
	if el == nil {
		return key, value, false
	}
	return el.v.key, el.v.value, true
}

// Keys returns the keys in MRU -> LRU order. The slice is a copy.
func (c *Cache[K, V]) Keys() []K {
	out := make([]K, 0, c.order.len)
	for el := c.order.front(); el != nil; el = c.next(el) {
		out = append(out, el.v.key)
	}
	return out
}

// Values returns the values in MRU -> LRU order. The slice is a copy.
func (c *Cache[K, V]) Values() []V {
	out := make([]V, 0, c.order.len)
	for el := c.order.front(); el != nil; el = c.next(el) {
		out = append(out, el.v.value)
	}
	return out
}

// Entries returns the key–value pairs in MRU -> LRU order.
// The slice is a copy; mutating it does not affect the cache.
func (c *Cache[K, V]) Entries() []Entry[K, V] {
	out := make([]Entry[K, V], 0, c.order.len)
	for el := c.order.front(); el != nil; el = c.next(el) {
		out = append(out, Entry[K, V]{Key: el.v.key, Value: el.v.value})
	}
	return out
}

// evictOldest removes the entry at the LRU position from both the index
// and the ordering.
func (c *Cache[K, V]) evictOldest() {
	el := c.order.back()
	if el == nil {
		return
	}
	delete(c.items, el.v.key)
	c.order.remove(el)
}

// next steps toward the LRU end, translating the ring's sentinel into nil.
func (c *Cache[K, V]) next(el *elem[entry[K, V]]) *elem[entry[K, V]] {
	if el.next == &c.order.root {
		return nil
	}
	return el.next
}
