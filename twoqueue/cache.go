// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package twoqueue provides a two-tier cache pairing a FIFO admission queue
// with an LRU protected queue. New entries land in the admission queue; an
// admission-queue hit promotes the entry into the protected queue, so
// one-time accesses age out of admission without polluting the LRU.
//
// The promotion scheme is deliberately partial: there is no demotion from
// protected back to admission, and Get
// does not fall back to the protected queue on an admission miss, so a
// promoted key is reachable only through GetOrInit. Mutable lookup,
// explicit removal, and position probes have no defined contract and are
// not offered.
package twoqueue

import (
	"github.com/ordmap/cache"
	"github.com/ordmap/cache/fifo"
	"github.com/ordmap/cache/lru"
)

var _ cache.Cacher[struct{}, struct{}] = (*Cache[struct{}, struct{}])(nil)

// Cache is a 2Q cache. It is not safe for concurrent use.
type Cache[K comparable, V any] struct {
	capacity int
	fifo     *fifo.Cache[K, V]
	lru      *lru.Cache[K, V]
}

// New creates a 2Q cache. Both queues are provisioned with the full nominal
// capacity rather than a proportional split, so combined occupancy can
// reach twice Capacity(). A cache with capacity 0 is constructible but
// panics on the first Put.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	return &Cache[K, V]{
		capacity: capacity,
		fifo:     fifo.New[K, V](capacity),
		lru:      lru.New[K, V](capacity),
	}
}

// Put inserts an element into the admission queue. Overflow evicts from the
// admission queue only; the protected queue is never touched by writes.
func (c *Cache[K, V]) Put(key K, value V) (K, V, bool) {
	return c.fifo.Put(key, value)
}

// PutAndReturn inserts through the admission queue and returns a pointer to
// the just-placed value.
func (c *Cache[K, V]) PutAndReturn(key K, value V) *V {
	return c.fifo.PutAndReturn(key, value)
}

// Get probes the admission queue. On a hit the entry is moved, not copied,
// into the protected queue and its value returned. On an admission miss the
// protected queue is not consulted, so a previously promoted key misses
// here; use GetOrInit to reach it.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	k, v, ok := c.fifo.Take(key)
	if !ok {
		var zero V
		return zero, false
	}
	return *c.lru.PutAndReturn(k, v), true
}

// GetOrInit returns the value for key if it is resident in either queue,
// promoting it from admission if needed. On a true miss, init is invoked
// exactly once and its value inserted through the admission queue and
// returned. An already promoted key delegates to Get and therefore reports
// a miss without re-initializing, a consequence of the promotion gap.
func (c *Cache[K, V]) GetOrInit(key K, init func() V) (V, bool) {
	if c.fifo.Contains(key) || c.lru.Contains(key) {
		return c.Get(key)
	}
	return *c.PutAndReturn(key, init()), true
}

// Contains reports residency in either queue, without promotion.
func (c *Cache[K, V]) Contains(key K) bool {
	return c.fifo.Contains(key) || c.lru.Contains(key)
}

// Len returns the combined occupancy of both queues.
func (c *Cache[K, V]) Len() int {
	return c.fifo.Len() + c.lru.Len()
}

// Capacity returns the nominal capacity each queue was provisioned with.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// IsEmpty reports whether both queues are empty.
func (c *Cache[K, V]) IsEmpty() bool {
	return c.fifo.IsEmpty() && c.lru.IsEmpty()
}

// Clear empties both queues. Capacity is unchanged.
func (c *Cache[K, V]) Clear() {
	c.fifo.Clear()
	c.lru.Clear()
}

// Front peeks at the least recently used protected value.
func (c *Cache[K, V]) Front() (V, bool) {
	return c.lru.Front()
}

// Back peeks at the newest admitted value.
func (c *Cache[K, V]) Back() (V, bool) {
	return c.fifo.Back()
}

// PortionFilled returns fraction of total (two-queue) room currently
// filled (0 --> 1).
func (c *Cache[K, V]) PortionFilled() float64 {
	if c.capacity == 0 {
		return 0
	}
	return float64(c.Len()) / float64(2*c.capacity)
}
