// Package cache provides a fixed-capacity in-memory cache with
// least-recently-used eviction. It is safe for concurrent use.
package cache

import (
	"container/list"
	"sync"
)

// DefaultCapacity is used when a cache is constructed with a
// non-positive capacity.
const DefaultCapacity = 1000

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Cache is a bounded key/value store. Both Get and Set promote the
// touched entry to most recently used, so eviction always removes the
// entry that has gone the longest without being read or written.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	order    *list.List // front = oldest, back = most recent
	index    map[K]*list.Element
}

// New builds an empty cache holding at most capacity entries.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache[K, V]{
		capacity: capacity,
		order:    list.New(),
		index:    make(map[K]*list.Element, capacity),
	}
}

// Get returns the value stored under key. A hit promotes the entry to
// most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	element, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.MoveToBack(element)
	return element.Value.(*entry[K, V]).value, true
}

// Set stores value under key. Writing an existing key overwrites its
// value and promotes it. Inserting a new key into a full cache first
// evicts the single oldest entry.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if element, ok := c.index[key]; ok {
		element.Value.(*entry[K, V]).value = value
		c.order.MoveToBack(element)
		return
	}

	if c.order.Len() >= c.capacity {
		oldest := c.order.Front()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.index, oldest.Value.(*entry[K, V]).key)
		}
	}

	c.index[key] = c.order.PushBack(&entry[K, V]{key: key, value: value})
}

// Clear drops every entry.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.order.Init()
	c.index = make(map[K]*list.Element, c.capacity)
}

// Len reports the number of resident entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Capacity reports the fixed maximum number of entries.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}
