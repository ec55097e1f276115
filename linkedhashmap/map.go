// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package linkedhashmap provides a hash-indexed map that preserves an
// explicit linear order over its entries, with constant-time reordering.
// The front of the order is the oldest (least recent) entry, the back the
// newest. It is the substrate for the cache packages in this module and
// enforces no capacity of its own.
//
// A Map is not safe for concurrent use.
package linkedhashmap

// node is an entry threaded through the order list. The list owns the node;
// the index map holds it for lookup only, so removal has to drop both the
// link and the index entry together.
type node[K comparable, V any] struct {
	key        K
	value      V
	prev, next *node[K, V]
}

// Map is an order-preserving key/value container.
type Map[K comparable, V any] struct {
	index       map[K]*node[K, V]
	front, back *node[K, V]
}

// New returns an empty Map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		index: make(map[K]*node[K, V]),
	}
}

// NewWithCapacity returns an empty Map whose index is pre-sized for hint
// entries. The hint does not bound the map; it accepts insertions beyond it.
func NewWithCapacity[K comparable, V any](hint int) *Map[K, V] {
	if hint < 0 {
		hint = 0
	}
	return &Map[K, V]{
		index: make(map[K]*node[K, V], hint),
	}
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.index[key]
	return ok
}

// Get returns the value for key without touching its position.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if n, ok := m.index[key]; ok {
		return n.value, true
	}
	var zero V
	return zero, false
}

// GetMut returns a pointer to the stored value for in-place mutation,
// without touching the entry's position. The pointer stays valid until the
// entry is removed or overwritten by PushBack.
func (m *Map[K, V]) GetMut(key K) (*V, bool) {
	if n, ok := m.index[key]; ok {
		return &n.value, true
	}
	return nil, false
}

// MoveToBack relinks the entry for key to the back of the order and returns
// its value. An absent key is left absent.
func (m *Map[K, V]) MoveToBack(key K) (V, bool) {
	n, ok := m.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	m.unlink(n)
	m.pushBack(n)
	return n.value, true
}

// PushBack places an entry for key at the back of the order. If the key is
// already present its old entry is detached from its position and the new
// value takes its place at the back; the displaced old value is returned
// with ok set. Absent keys are appended.
func (m *Map[K, V]) PushBack(key K, value V) (V, bool) {
	if n, ok := m.index[key]; ok {
		old := n.value
		n.value = value
		m.unlink(n)
		m.pushBack(n)
		return old, true
	}
	n := &node[K, V]{key: key, value: value}
	m.index[key] = n
	m.pushBack(n)
	var zero V
	return zero, false
}

// PushBackAndReturn performs the same insert-or-relocate as PushBack but
// returns a pointer to the just-placed value instead of any displaced one.
func (m *Map[K, V]) PushBackAndReturn(key K, value V) *V {
	m.PushBack(key, value)
	return &m.index[key].value
}

// PopFront removes and returns the frontmost (oldest) entry.
func (m *Map[K, V]) PopFront() (K, V, bool) {
	n := m.front
	if n == nil {
		var zk K
		var zv V
		return zk, zv, false
	}
	m.unlink(n)
	delete(m.index, n.key)
	return n.key, n.value, true
}

// Front peeks at the frontmost (oldest) value without any side effect.
func (m *Map[K, V]) Front() (V, bool) {
	if m.front == nil {
		var zero V
		return zero, false
	}
	return m.front.value, true
}

// Back peeks at the backmost (newest) value without any side effect.
func (m *Map[K, V]) Back() (V, bool) {
	if m.back == nil {
		var zero V
		return zero, false
	}
	return m.back.value, true
}

// Position returns the value at rank pos from the front, zero-indexed.
// Unlike every other operation this walks the order list, O(pos).
func (m *Map[K, V]) Position(pos int) (V, bool) {
	if pos >= 0 {
		for n := m.front; n != nil; n = n.next {
			if pos == 0 {
				return n.value, true
			}
			pos--
		}
	}
	var zero V
	return zero, false
}

// Remove detaches the entry for key regardless of its position and returns
// the owned pair.
func (m *Map[K, V]) Remove(key K) (K, V, bool) {
	n, ok := m.index[key]
	if !ok {
		var zk K
		var zv V
		return zk, zv, false
	}
	m.unlink(n)
	delete(m.index, key)
	return n.key, n.value, true
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return len(m.index)
}

// IsEmpty reports whether the map holds no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return len(m.index) == 0
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	clear(m.index)
	m.front, m.back = nil, nil
}

// Linked order operations. Only the node's neighbors and the list ends are
// touched, never a traversal.

func (m *Map[K, V]) pushBack(n *node[K, V]) {
	n.next = nil
	n.prev = m.back
	if m.back != nil {
		m.back.next = n
	}
	m.back = n
	if m.front == nil {
		m.front = n
	}
}

func (m *Map[K, V]) unlink(n *node[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		m.front = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		m.back = n.prev
	}
	n.prev, n.next = nil, nil
}
