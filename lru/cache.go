package lru

import (
	"container/list"
	"sync"
)

type Item[V any] struct {
	data   V
	keyPtr *list.Element
}

// Cache is a thread-safe LRU map. Zero capacity means no eviction.
type Cache[K comparable, V any] struct {
	queue    *list.List
	items    map[K]*Item[V]
	capacity int
	onEvict  func(K, V)
	mx       sync.Mutex
}

func New[K comparable, V any](capacity int) *Cache[K, V] {
	return &Cache[K, V]{
		queue:    list.New(),
		items:    map[K]*Item[V]{},
		capacity: capacity,
	}
}

// OnEvict sets the callback called (under the cache lock) for every entry
// removed because of capacity.
func (c *Cache[K, V]) OnEvict(fn func(K, V)) *Cache[K, V] {
	c.mx.Lock()
	defer c.mx.Unlock()

	c.onEvict = fn
	return c
}

func (c *Cache[K, V]) removeItem() {
	back := c.queue.Back()
	c.queue.Remove(back)
	k := back.Value.(K) //nolint:forcetypeassert // no need
	item := c.items[k]
	delete(c.items, k)
	if c.onEvict != nil {
		c.onEvict(k, item.data)
	}
}

func (c *Cache[K, V]) updateItem(item *Item[V], k K, v V) {
	item.data = v
	c.items[k] = item
	c.queue.MoveToFront(item.keyPtr)
}

func (c *Cache[K, V]) Put(k K, v V) {
	c.mx.Lock()
	defer c.mx.Unlock()

	if item, ok := c.items[k]; !ok {
		if c.capacity > 0 && c.capacity == len(c.items) {
			c.removeItem()
		}
		c.items[k] = &Item[V]{
			data:   v,
			keyPtr: c.queue.PushFront(k),
		}
	} else {
		c.updateItem(item, k, v)
	}
}

func (c *Cache[K, V]) Get(key K) (v V, ok bool) { //nolint:ireturn // returns generic interface (V) of type param any
	c.mx.Lock()
	defer c.mx.Unlock()

	if item, ok := c.items[key]; ok {
		c.queue.MoveToFront(item.keyPtr)
		return item.data, true
	}

	return v, false
}

// Peek returns the value without updating its recent-ness.
func (c *Cache[K, V]) Peek(key K) (v V, ok bool) { //nolint:ireturn // returns generic interface (V) of type param any
	c.mx.Lock()
	defer c.mx.Unlock()

	if item, ok := c.items[key]; ok {
		return item.data, true
	}
	return v, false
}

func (c *Cache[K, V]) Remove(key K) bool {
	c.mx.Lock()
	defer c.mx.Unlock()

	item, ok := c.items[key]
	if !ok {
		return false
	}
	c.queue.Remove(item.keyPtr)
	delete(c.items, key)
	return true
}

func (c *Cache[K, V]) Len() int {
	c.mx.Lock()
	defer c.mx.Unlock()

	return len(c.items)
}

func (c *Cache[K, V]) Purge() {
	c.mx.Lock()
	defer c.mx.Unlock()

	c.queue.Init()
	c.items = map[K]*Item[V]{}
}

func (c *Cache[K, V]) Keys() (keys []K) {
	c.mx.Lock()
	defer c.mx.Unlock()

	for e := c.queue.Front(); e != nil; e = e.Next() {
		keys = append(keys, e.Value.(K)) //nolint:forcetypeassert // no need
	}
	return keys
}
