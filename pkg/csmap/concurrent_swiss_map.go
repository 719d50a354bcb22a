package csmap

import (
	csmap "github.com/mhmtszr/concurrent-swiss-map"
)

type ConcurrentSwissMap[K comparable, V any] struct {
	m *csmap.CsMap[K, V]
}

func Create[K comparable, V any]() *ConcurrentSwissMap[K, V] {
	return &ConcurrentSwissMap[K, V]{m: csmap.Create[K, V]()}
}

func (c *ConcurrentSwissMap[K, V]) Store(key K, value V) {
	c.m.Store(key, value)
}

func (c *ConcurrentSwissMap[K, V]) Load(key K) (V, bool) {
	return c.m.Load(key)
}

func (c *ConcurrentSwissMap[K, V]) Delete(key K) {
	c.m.Delete(key)
}

func (c *ConcurrentSwissMap[K, V]) Count() int {
	return c.m.Count()
}

// Range calls f for every entry until f returns true.
func (c *ConcurrentSwissMap[K, V]) Range(f func(key K, value V) (stop bool)) {
	c.m.Range(f)
}
