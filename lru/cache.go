// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package lru provides a capacity-bounded cache that evicts the least
// recently used entry. Reads relocate entries to the most-recent end; how
// writes to a resident key behave is governed by a PutStrategy.
package lru

import (
	"fmt"
	"math"

	"github.com/ordmap/cache"
	"github.com/ordmap/cache/linkedhashmap"
)

var _ cache.Cacher[struct{}, struct{}] = (*Cache[struct{}, struct{}])(nil)

// PutStrategy selects what Put does when the key is already resident.
// The set is closed; an unknown value makes Put panic.
type PutStrategy uint8

const (
	// Add detaches the old entry and inserts a fresh one at the back.
	Add PutStrategy = iota
	// Replace overwrites the value in place, position unchanged.
	Replace
	// Move relocates the existing entry to the back and discards the
	// supplied value, keeping the old one. Same effect as Get.
	Move
)

// String returns the strategy name.
func (s PutStrategy) String() string {
	switch s {
	case Add:
		return "add"
	case Replace:
		return "replace"
	case Move:
		return "move"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}

// Cache is an LRU cache. It is not safe for concurrent use; even Get
// reorders entries.
type Cache[K comparable, V any] struct {
	capacity int
	m        *linkedhashmap.Map[K, V]
	strategy PutStrategy

	// poppedCount tracks capacity-triggered evictions only, never
	// strategy-triggered relocations. Saturates at math.MaxUint64.
	poppedCount uint64
}

// New creates an LRU cache holding at most capacity entries, with the Add
// put strategy. A cache with capacity 0 is constructible but panics on the
// first Put.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	return NewWithStrategy[K, V](capacity, Add)
}

// NewWithStrategy creates an LRU cache with the given put strategy.
func NewWithStrategy[K comparable, V any](capacity int, strategy PutStrategy) *Cache[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	return &Cache[K, V]{
		capacity: capacity,
		m:        linkedhashmap.NewWithCapacity[K, V](capacity),
		strategy: strategy,
	}
}

// SetPutStrategy changes the put strategy. Resident entries keep their
// positions; only subsequent Puts are affected.
func (c *Cache[K, V]) SetPutStrategy(strategy PutStrategy) {
	c.strategy = strategy
}

// Get returns the value for key, relocating the entry to the
// most-recently-used end. The relocation is the recency mechanism, not an
// incidental side effect.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	return c.m.MoveToBack(key)
}

// GetMut returns a pointer to the stored value for in-place mutation,
// relocating the entry to the most-recently-used end.
func (c *Cache[K, V]) GetMut(key K) (*V, bool) {
	if _, ok := c.m.MoveToBack(key); !ok {
		return nil, false
	}
	return c.m.GetMut(key)
}

// evictIfNeeded makes room for a new key, returning the evicted front
// entry. Called only on the absent-key path; resident keys never trigger
// eviction.
func (c *Cache[K, V]) evictIfNeeded() (K, V, bool) {
	if c.m.Len() < c.capacity {
		var zk K
		var zv V
		return zk, zv, false
	}
	k, v, ok := c.m.PopFront()
	if !ok {
		panic(fmt.Sprintf("lru: cannot insert into cache with capacity %d", c.capacity))
	}
	satInc(&c.poppedCount)
	return k, v, true
}

// Put inserts an element. An absent key is placed at the back, evicting the
// least recently used entry first when the cache is full; the evicted pair
// is returned. A resident key is handled per the configured PutStrategy and
// never evicts.
func (c *Cache[K, V]) Put(key K, value V) (K, V, bool) {
	var zk K
	var zv V
	if !c.m.Contains(key) {
		ek, ev, evicted := c.evictIfNeeded()
		c.m.PushBack(key, value)
		return ek, ev, evicted
	}
	switch c.strategy {
	case Add:
		c.m.Remove(key)
		c.m.PushBack(key, value)
	case Replace:
		p, _ := c.m.GetMut(key)
		*p = value
	case Move:
		c.m.MoveToBack(key)
	default:
		panic(fmt.Sprintf("lru: unknown put strategy %d", uint8(c.strategy)))
	}
	return zk, zv, false
}

// PutAndReturn performs the same strategy fork as Put but returns a pointer
// to the resulting entry: the just-placed value for Add/Replace and fresh
// inserts, the retained old value for Move.
func (c *Cache[K, V]) PutAndReturn(key K, value V) *V {
	if !c.m.Contains(key) {
		c.evictIfNeeded()
		return c.m.PushBackAndReturn(key, value)
	}
	switch c.strategy {
	case Add:
		c.m.Remove(key)
		return c.m.PushBackAndReturn(key, value)
	case Replace:
		p, _ := c.m.GetMut(key)
		*p = value
		return p
	case Move:
		c.m.MoveToBack(key)
		p, _ := c.m.GetMut(key)
		return p
	default:
		panic(fmt.Sprintf("lru: unknown put strategy %d", uint8(c.strategy)))
	}
}

// Take removes the entry for key regardless of its position and returns the
// owned pair.
func (c *Cache[K, V]) Take(key K) (K, V, bool) {
	return c.m.Remove(key)
}

// Contains reports residency without touching recency.
func (c *Cache[K, V]) Contains(key K) bool {
	return c.m.Contains(key)
}

// Front peeks at the least recently used value.
func (c *Cache[K, V]) Front() (V, bool) {
	return c.m.Front()
}

// Back peeks at the most recently used value.
func (c *Cache[K, V]) Back() (V, bool) {
	return c.m.Back()
}

// Position returns the value at rank pos from the least-recent end,
// zero-indexed.
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

// PoppedCount returns how many entries capacity pressure has evicted.
func (c *Cache[K, V]) PoppedCount() uint64 {
	return c.poppedCount
}

// IsEmpty reports whether the cache holds no elements.
func (c *Cache[K, V]) IsEmpty() bool {
	return c.m.IsEmpty()
}

// Clear removes all entries. Capacity and the popped counter are unchanged.
func (c *Cache[K, V]) Clear() {
	c.m.Clear()
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
