// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fifo provides a capacity-bounded cache that evicts strictly in
// admission order. Reads never reorder entries; Renew is the only
// non-insert way to move one.
package fifo

import (
	"fmt"
	"math"

	"github.com/ordmap/cache"
	"github.com/ordmap/cache/linkedhashmap"
)

var _ cache.Cacher[struct{}, struct{}] = (*Cache[struct{}, struct{}])(nil)

// Cache is a FIFO cache. It is not safe for concurrent use; even Get
// mutates the hit/miss counters.
type Cache[K comparable, V any] struct {
	capacity int
	m        *linkedhashmap.Map[K, V]

	// Hit/miss counters saturate at math.MaxUint64 instead of wrapping.
	hits   uint64
	misses uint64
}

// New creates a FIFO cache holding at most capacity entries. A cache with
// capacity 0 is constructible but panics on the first Put.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	return &Cache[K, V]{
		capacity: capacity,
		m:        linkedhashmap.NewWithCapacity[K, V](capacity),
	}
}

// evictIfNeeded makes room for key. A new key arriving at a full cache pops
// the front entry; overwriting a resident key needs no room. Failing to pop
// means the cache was built with capacity 0, which is a configuration
// defect, not a recoverable state.
func (c *Cache[K, V]) evictIfNeeded(key K) (K, V, bool) {
	if c.m.Contains(key) || c.m.Len() < c.capacity {
		var zk K
		var zv V
		return zk, zv, false
	}
	k, v, ok := c.m.PopFront()
	if !ok {
		panic(fmt.Sprintf("fifo: cannot insert into cache with capacity %d", c.capacity))
	}
	return k, v, true
}

// Put inserts an element at the back of the queue. If a new key arrives at
// a full cache the front entry is evicted first and returned. A resident
// key is detached and re-placed at the back with the new value, without
// eviction.
func (c *Cache[K, V]) Put(key K, value V) (K, V, bool) {
	ek, ev, evicted := c.evictIfNeeded(key)
	c.m.PushBack(key, value)
	return ek, ev, evicted
}

// PutAndReturn performs the same eviction-then-insert as Put but returns a
// pointer to the just-placed value instead of the evicted entry. Use Put
// when the evicted value matters; the two variants are not interchangeable.
func (c *Cache[K, V]) PutAndReturn(key K, value V) *V {
	c.evictIfNeeded(key)
	return c.m.PushBackAndReturn(key, value)
}

// Get returns the value for key without reordering. Hits and misses are
// counted.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	if v, ok := c.m.Get(key); ok {
		satInc(&c.hits)
		return v, true
	}
	satInc(&c.misses)
	var zero V
	return zero, false
}

// GetMut returns a pointer to the stored value for in-place mutation,
// without reordering. Hits and misses are counted.
func (c *Cache[K, V]) GetMut(key K) (*V, bool) {
	if p, ok := c.m.GetMut(key); ok {
		satInc(&c.hits)
		return p, true
	}
	satInc(&c.misses)
	return nil, false
}

// Renew moves the entry for key to the back of the queue and returns its
// value. Counters are untouched; this is the only read-path reordering
// primitive.
func (c *Cache[K, V]) Renew(key K) (V, bool) {
	return c.m.MoveToBack(key)
}

// Take removes the entry for key regardless of its position and returns the
// owned pair.
func (c *Cache[K, V]) Take(key K) (K, V, bool) {
	return c.m.Remove(key)
}

// Contains reports residency without touching counters or order.
func (c *Cache[K, V]) Contains(key K) bool {
	return c.m.Contains(key)
}

// Front peeks at the oldest value.
func (c *Cache[K, V]) Front() (V, bool) {
	return c.m.Front()
}

// Back peeks at the newest value.
func (c *Cache[K, V]) Back() (V, bool) {
	return c.m.Back()
}

// Position returns the value at rank pos from the front, zero-indexed.
func (c *Cache[K, V]) Position(pos int) (V, bool) {
	return c.m.Position(pos)
}

// Len returns the number of elements in the cache.
func (c *Cache[K, V]) Len() int {
	return c.m.Len()
}

// Capacity returns the capacity the cache was constructed with.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// IsEmpty reports whether the cache holds no elements.
func (c *Cache[K, V]) IsEmpty() bool {
	return c.m.IsEmpty()
}

// Clear removes all entries. Capacity and counters are unchanged.
func (c *Cache[K, V]) Clear() {
	c.m.Clear()
}

// HitsRatio returns hits / (hits + misses). Before the first Get this is
// 0/0, which yields NaN; callers must guard for it.
func (c *Cache[K, V]) HitsRatio() float64 {
	return float64(c.hits) / float64(c.hits+c.misses)
}

// HitsRatioString formats the hit ratio as a percentage with two decimals,
// e.g. "66.67%".
func (c *Cache[K, V]) HitsRatioString() string {
	return fmt.Sprintf("%.2f%%", c.HitsRatio()*100)
}

// PortionFilled returns fraction of cache currently filled (0 --> 1).
func (c *Cache[K, V]) PortionFilled() float64 {
	if c.capacity == 0 {
		return 0
	}
	return float64(c.m.Len()) / float64(c.capacity)
}

func satInc(n *uint64) {
	if *n != math.MaxUint64 {
		*n++
	}
}
