package lrucache

import "iter"

// All returns an iterator over the cache's key–value pairs in MRU -> LRU
// order, usable directly in a range loop.
//
// The iterator is lazy: it walks the live ordering rather than a frozen
// copy, so each invocation reflects the cache state at that moment and
// re-ranging over the same iterator starts a fresh walk. Ranging never
// mutates the cache, and breaking out early is safe.
//
// Mutating the cache while a walk is in progress yields unspecified
// results; the single-owner precondition (see the package documentation)
// covers traversal too. Use Entries for a stable snapshot.
func (c *Cache[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for el := c.order.front(); el != nil; el = c.next(el) {
			if !yield(el.v.key, el.v.value) {
				return
			}
		}
	}
}
