// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package metercacher wraps a cache.Cacher with prometheus instrumentation:
// put/get counts and durations (gets split by hit/miss), plus occupancy
// gauges. The wrapper adds no synchronization; it is exactly as
// concurrency-unsafe as the cache it wraps.
package metercacher

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ordmap/cache"
)

var _ cache.Cacher[struct{}, struct{}] = (*Cache[struct{}, struct{}])(nil)

// Cache wraps a Cacher with metrics.
type Cache[K comparable, V any] struct {
	cache.Cacher[K, V]
	metrics *cacheMetrics
}

// New creates a new metered cache wrapper registered under namespace.
func New[K comparable, V any](
	namespace string,
	registerer prometheus.Registerer,
	c cache.Cacher[K, V],
) (*Cache[K, V], error) {
	metrics, err := newMetrics(namespace, registerer)
	return &Cache[K, V]{
		Cacher:  c,
		metrics: metrics,
	}, err
}

func (c *Cache[K, V]) Put(key K, value V) (K, V, bool) {
	start := time.Now()
	ek, ev, evicted := c.Cacher.Put(key, value)
	putDuration := time.Since(start)

	c.metrics.putCount.Inc()
	c.metrics.putTime.Add(float64(putDuration))
	if evicted {
		c.metrics.evictedCount.Inc()
	}
	c.metrics.len.Set(float64(c.Cacher.Len()))
	c.metrics.portionFilled.Set(c.Cacher.PortionFilled())

	return ek, ev, evicted
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	start := time.Now()
	value, has := c.Cacher.Get(key)
	getDuration := time.Since(start)

	if has {
		c.metrics.getCount.With(hitLabels).Inc()
		c.metrics.getTime.With(hitLabels).Add(float64(getDuration))
	} else {
		c.metrics.getCount.With(missLabels).Inc()
		c.metrics.getTime.With(missLabels).Add(float64(getDuration))
	}

	// A get can migrate entries between tiers or none at all; refresh the
	// occupancy gauges either way.
	c.metrics.len.Set(float64(c.Cacher.Len()))
	c.metrics.portionFilled.Set(c.Cacher.PortionFilled())

	return value, has
}

func (c *Cache[_, _]) Clear() {
	c.Cacher.Clear()
	c.metrics.len.Set(float64(c.Cacher.Len()))
	c.metrics.portionFilled.Set(c.Cacher.PortionFilled())
}
