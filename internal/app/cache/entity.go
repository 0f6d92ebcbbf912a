package cache

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/ledgerscope/explorer/internal/core"
	"github.com/ledgerscope/explorer/internal/reactive"
	"github.com/ledgerscope/explorer/lru"
)

// LoadFunc loads the entity for a key from the network.
type LoadFunc[K comparable, E any] func(ctx context.Context, key K) (E, error)

// FailurePolicy tells what an EntityCache does with a failed load.
type FailurePolicy int

const (
	// CacheFailures memoizes the failure: later lookups return the same error
	// until the key is forgotten.
	CacheFailures FailurePolicy = iota

	// RetryFailures drops a failed entry once it resolves,
	// so the next lookup loads again.
	RetryFailures

	// CacheNotFound memoizes core.ErrNotFound failures and retries any other one.
	CacheNotFound
)

// keep reports whether a failed entry stays memoized.
func (p FailurePolicy) keep(err error) bool {
	switch p {
	case RetryFailures:
		return false
	case CacheNotFound:
		return errors.Is(err, core.ErrNotFound)
	default:
		return true
	}
}

type Config struct {
	Failures FailurePolicy

	// Capacity bounds the number of entries, the least recently used one is evicted.
	// Zero means entries are kept until forgotten.
	Capacity int
}

// EntityCache memoizes loads by key. Concurrent lookups of the same key share
// one in-flight load.
type EntityCache[K comparable, E any] struct {
	cfg  Config
	load LoadFunc[K, E]

	entries   *lru.Cache[K, *future[E]]
	evictions int

	// updated is set to the key of every entry changed by Forget, Mutate or Populate.
	updated *reactive.Value[K]

	mx sync.Mutex
}

func NewEntityCache[K comparable, E any](load LoadFunc[K, E], cfg *Config) *EntityCache[K, E] {
	c := &EntityCache[K, E]{
		load: load,
	}
	if cfg != nil {
		c.cfg = *cfg
	}

	var zero K
	c.updated = reactive.NewValue(zero)
	c.entries = lru.New[K, *future[E]](c.cfg.Capacity).OnEvict(func(K, *future[E]) {
		c.evictions++ // every Put runs under c.mx
	})

	return c
}

// Lookup returns the memoized entity for the key, loading it on a miss or when forceLoad is set.
// ctx bounds the wait only: the shared load keeps running if the caller gives up.
func (c *EntityCache[K, E]) Lookup(ctx context.Context, key K, forceLoad bool) (E, error) { //nolint:ireturn // generic
	f := c.lookup(ctx, key, forceLoad)
	return f.wait(ctx)
}

func (c *EntityCache[K, E]) lookup(ctx context.Context, key K, forceLoad bool) *future[E] {
	c.mx.Lock()
	defer c.mx.Unlock()

	if f, ok := c.entries.Get(key); ok && !forceLoad {
		return f
	}

	f := newFuture[E]()
	c.entries.Put(key, f)
	go c.run(context.WithoutCancel(ctx), key, f)

	return f
}

func (c *EntityCache[K, E]) run(ctx context.Context, key K, f *future[E]) {
	v, err := c.load(ctx, key)
	c.settle(key, f, v, err)
}

func (c *EntityCache[K, E]) settle(key K, f *future[E], v E, err error) {
	// a failed entry is gone before anyone can see the failure
	if err != nil && !c.cfg.Failures.keep(err) {
		c.mx.Lock()
		if cur, ok := c.entries.Peek(key); ok && cur == f {
			c.entries.Remove(key)
		}
		c.mx.Unlock()
	}

	f.resolve(v, err)
}

// settled returns the entry if it is already resolved.
func (c *EntityCache[K, E]) settled(key K) (*future[E], bool) {
	c.mx.Lock()
	f, found := c.entries.Peek(key)
	c.mx.Unlock()

	if !found || !f.resolved() {
		return nil, false
	}
	return f, true
}

// Forget evicts the entry, the next lookup loads again.
func (c *EntityCache[K, E]) Forget(key K) {
	c.mx.Lock()
	removed := c.entries.Remove(key)
	c.mx.Unlock()

	if removed {
		c.updated.Set(key)
	}
}

// Clear forgets every entry.
func (c *EntityCache[K, E]) Clear() {
	c.mx.Lock()
	keys := c.entries.Keys()
	c.entries.Purge()
	c.mx.Unlock()

	for _, k := range keys {
		c.updated.Set(k)
	}
}

// Mutate force-sets the entry, e.g. after a local update made the loaded value obsolete.
func (c *EntityCache[K, E]) Mutate(key K, v E) {
	c.mx.Lock()
	c.entries.Put(key, resolvedFuture(v, nil))
	c.mx.Unlock()

	c.updated.Set(key)
}

// MutateLoad replaces the entry with a new pending load.
// Lookups issued from now on wait for it, mounted handles are notified once it resolves.
func (c *EntityCache[K, E]) MutateLoad(ctx context.Context, key K, load func(ctx context.Context) (E, error)) {
	f := newFuture[E]()

	c.mx.Lock()
	c.entries.Put(key, f)
	c.mx.Unlock()

	go func(ctx context.Context) {
		v, err := load(ctx)
		c.settle(key, f, v, err)
		c.updated.Set(key)
	}(context.WithoutCancel(ctx))
}

// Populate stores an already known entity unless the key is present.
// It returns false when an entry exists.
func (c *EntityCache[K, E]) Populate(key K, v E) bool {
	c.mx.Lock()
	if _, ok := c.entries.Peek(key); ok {
		c.mx.Unlock()
		return false
	}
	c.entries.Put(key, resolvedFuture(v, nil))
	c.mx.Unlock()

	c.updated.Set(key)
	return true
}

func (c *EntityCache[K, E]) IsEmpty() bool {
	return c.entries.Len() == 0
}

func (c *EntityCache[K, E]) Contains(key K) bool {
	_, ok := c.entries.Peek(key)
	return ok
}

func (c *EntityCache[K, E]) Len() int {
	return c.entries.Len()
}

// Evictions counts entries dropped to stay within Capacity.
func (c *EntityCache[K, E]) Evictions() int {
	c.mx.Lock()
	defer c.mx.Unlock()

	return c.evictions
}
