// Package lrucache implements a fixed-capacity, generically-typed key–value
// cache with least-recently-used eviction.
//
// Goals for this package:
//   - Make the core data structures explicit (map index + doubly-linked recency list)
//   - Provide O(1) Get/Set/Has/Peek/Delete via map index + LRU pointers
//   - Keep the value slot a genuine type parameter (no runtime type checks)
//   - Expose recency order as cheap snapshots and a lazy iterator
//
// The cache is NOT safe for concurrent use. It assumes a single logical
// owner; if multiple goroutines share an instance, the caller must provide
// external mutual exclusion (e.g. one mutex around the whole instance).
// This is a hard precondition, not a soft recommendation: there is no
// internal locking at all.
package lrucache
