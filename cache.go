// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package cache provides capacity-bounded in-memory caches with distinct
// eviction disciplines: insertion order (fifo), access recency (lru), and a
// two-tier admission/protection scheme (twoqueue). All of them are built on
// the order-preserving map in the linkedhashmap package.
//
// None of the caches are safe for concurrent use. Every operation, including
// Get, may reorder entries or bump counters, so callers that share a cache
// across goroutines must serialize access themselves.
package cache

// Cacher is the operation set common to the eviction-bounded caches in this
// module.
type Cacher[K comparable, V any] interface {
	// Put inserts an element. If the insertion evicted an entry to stay
	// within capacity, that entry is returned with ok set.
	Put(key K, value V) (evictedKey K, evictedValue V, ok bool)

	// Get returns the entry with the key, if it exists. Depending on the
	// eviction discipline this may reorder or migrate the entry.
	Get(key K) (V, bool)

	// Contains reports whether the key is resident, without any side effect
	// on order or counters.
	Contains(key K) bool

	// Len returns the number of elements in the cache.
	Len() int

	// Capacity returns the capacity the cache was constructed with.
	Capacity() int

	// IsEmpty reports whether the cache holds no elements.
	IsEmpty() bool

	// Clear removes all entries. Capacity is unchanged.
	Clear()

	// PortionFilled returns fraction of cache currently filled (0 --> 1).
	PortionFilled() float64
}
