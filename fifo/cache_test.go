// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fifo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPutGet(t *testing.T) {
	require := require.New(t)

	c := New[int, string](3)
	c.Put(1, "a")
	c.Put(2, "b")
	c.Put(3, "c")

	v, ok := c.Get(1)
	require.True(ok)
	require.Equal("a", v)

	// Fourth distinct key evicts the admission-order front.
	ek, ev, evicted := c.Put(4, "d")
	require.True(evicted)
	require.Equal(1, ek)
	require.Equal("a", ev)

	front, ok := c.Front()
	require.True(ok)
	require.Equal("b", front)

	_, ok = c.Get(1)
	require.False(ok)

	p, ok := c.GetMut(3)
	require.True(ok)
	*p = "CC"
	v, ok = c.Get(3)
	require.True(ok)
	require.Equal("CC", v)
}

func TestGetNeverReorders(t *testing.T) {
	require := require.New(t)

	c := New[int, string](2)
	c.Put(1, "a")
	c.Put(2, "b")

	c.Get(1)
	c.Get(1)

	// 1 is still the oldest despite being read.
	ek, _, evicted := c.Put(3, "c")
	require.True(evicted)
	require.Equal(1, ek)
}

func TestPutExistingKeyAtCapacity(t *testing.T) {
	require := require.New(t)

	c := New[int, string](2)
	c.Put(1, "a")
	c.Put(2, "b")

	// Overwriting a resident key does not evict, it relocates to the back.
	_, _, evicted := c.Put(1, "A")
	require.False(evicted)
	require.Equal(2, c.Len())

	back, _ := c.Back()
	require.Equal("A", back)
	front, _ := c.Front()
	require.Equal("b", front)
}

func TestOutOfCapacity(t *testing.T) {
	require := require.New(t)

	c := New[int, string](0)
	require.Panics(func() {
		c.Put(1, "a")
	})
	require.Panics(func() {
		c.PutAndReturn(1, "a")
	})
}

func TestPutAndReturn(t *testing.T) {
	require := require.New(t)

	c := New[int, string](2)
	c.Put(1, "a")
	c.Put(2, "b")

	// The evicted entry is dropped; only the new one comes back.
	p := c.PutAndReturn(3, "c")
	require.Equal("c", *p)
	require.Equal(2, c.Len())
	require.False(c.Contains(1))

	*p = "cc"
	v, ok := c.Get(3)
	require.True(ok)
	require.Equal("cc", v)
}

func TestHitsRatio(t *testing.T) {
	require := require.New(t)

	c := New[int, string](2)
	c.Put(1, "a")
	c.Put(2, "b")

	c.Get(1)
	c.Get(1)
	c.Get(3)

	require.Equal(2.0/3.0, c.HitsRatio())
	require.Equal("66.67%", c.HitsRatioString())
}

func TestHitsRatioNoAccesses(t *testing.T) {
	require := require.New(t)

	c := New[int, string](2)
	require.True(math.IsNaN(c.HitsRatio()))
}

func TestCountersSaturate(t *testing.T) {
	require := require.New(t)

	c := New[int, string](2)
	c.Put(1, "a")

	c.hits = math.MaxUint64
	c.Get(1)
	require.Equal(uint64(math.MaxUint64), c.hits)

	c.misses = math.MaxUint64
	c.Get(9)
	require.Equal(uint64(math.MaxUint64), c.misses)
}

func TestRenew(t *testing.T) {
	require := require.New(t)

	c := New[int, string](2)
	c.Put(1, "a")
	c.Put(2, "b")

	front, ok := c.Front()
	require.True(ok)
	require.Equal("a", front)

	v, ok := c.Renew(1)
	require.True(ok)
	require.Equal("a", v)

	back, ok := c.Back()
	require.True(ok)
	require.Equal("a", back)

	// Renew leaves the counters alone.
	require.True(math.IsNaN(c.HitsRatio()))

	_, ok = c.Renew(9)
	require.False(ok)
}

func TestTake(t *testing.T) {
	require := require.New(t)

	c := New[int, string](3)
	c.Put(1, "a")
	c.Put(2, "b")

	k, v, ok := c.Take(1)
	require.True(ok)
	require.Equal(1, k)
	require.Equal("a", v)
	require.Equal(1, c.Len())

	_, ok = c.Get(1)
	require.False(ok)

	_, _, ok = c.Take(1)
	require.False(ok)
}

func TestLenIsEmptyClear(t *testing.T) {
	require := require.New(t)

	c := New[int, string](3)
	c.Put(1, "a")
	c.Put(2, "b")

	require.False(c.IsEmpty())
	require.Equal(2, c.Len())

	c.Clear()

	require.True(c.IsEmpty())
	require.Equal(0, c.Len())
	require.Equal(3, c.Capacity())

	// Clearing an empty cache is a no-op.
	c.Clear()
	require.Equal(0, c.Len())
	require.Equal(3, c.Capacity())
}

func TestPortionFilled(t *testing.T) {
	require := require.New(t)

	c := New[int, string](4)
	require.Equal(0.0, c.PortionFilled())
	c.Put(1, "a")
	c.Put(2, "b")
	require.Equal(0.5, c.PortionFilled())

	require.Equal(0.0, New[int, string](0).PortionFilled())
}

func TestLenNeverExceedsCapacity(t *testing.T) {
	require := require.New(t)

	c := New[int, int](3)
	for i := 0; i < 50; i++ {
		c.Put(i%7, i)
		if i%5 == 0 {
			c.Take(i % 3)
		}
		if i%4 == 0 {
			c.Renew(i % 7)
		}
		require.LessOrEqual(c.Len(), c.Capacity())
	}
}
