package cache

import (
	"context"
	"sync"

	"github.com/ledgerscope/explorer/internal/reactive"
)

// Collector memoizes loads by key forever (until Clear) and chains them:
// a newly requested key is loaded once the previously requested one finished,
// so loads run in the order keys were requested.
type Collector[K comparable, E any] struct {
	load LoadFunc[K, E]

	entries map[K]*future[E]
	tail    *future[E]
	mx      sync.Mutex
}

func NewCollector[K comparable, E any](load LoadFunc[K, E]) *Collector[K, E] {
	return &Collector[K, E]{
		load:    load,
		entries: map[K]*future[E]{},
	}
}

func (c *Collector[K, E]) Fetch(ctx context.Context, key K) (E, error) { //nolint:ireturn // generic
	return c.fetch(ctx, key).wait(ctx)
}

func (c *Collector[K, E]) fetch(ctx context.Context, key K) *future[E] {
	c.mx.Lock()
	defer c.mx.Unlock()

	if f, ok := c.entries[key]; ok {
		return f
	}

	f := newFuture[E]()
	prev := c.tail
	c.tail = f
	c.entries[key] = f

	go func(ctx context.Context) {
		if prev != nil {
			<-prev.done // failed or not
		}
		f.resolve(c.load(ctx, key))
	}(context.WithoutCancel(ctx))

	return f
}

// Clear forgets every memoized entity.
func (c *Collector[K, E]) Clear() {
	c.mx.Lock()
	defer c.mx.Unlock()

	c.entries = map[K]*future[E]{}
}

func (c *Collector[K, E]) Len() int {
	c.mx.Lock()
	defer c.mx.Unlock()

	return len(c.entries)
}

// Binding follows a dynamic key and holds the collected entity,
// or the zero value when the key is nil or the load failed.
type Binding[E any] struct {
	value  *reactive.Value[E]
	cancel func()

	cur   E
	epoch uint64
	pub   reactive.Publisher
	mx    sync.Mutex
}

func (b *Binding[E]) Value() reactive.Source[E] {
	return b.value
}

// Release detaches the binding from its key.
func (b *Binding[E]) Release() {
	b.mx.Lock()
	b.epoch++
	cancel := b.cancel
	b.cancel = nil
	b.mx.Unlock()

	if cancel != nil {
		cancel()
	}
}

func (b *Binding[E]) next() uint64 {
	b.mx.Lock()
	defer b.mx.Unlock()

	b.epoch++
	return b.epoch
}

func (b *Binding[E]) publish(epoch uint64, v E) {
	b.mx.Lock()
	if epoch != b.epoch {
		b.mx.Unlock()
		return
	}
	b.cur = v
	b.mx.Unlock()

	b.pub.Publish(func() {
		b.mx.Lock()
		cur := b.cur
		b.mx.Unlock()

		b.value.Set(cur)
	})
}

// Ref binds key to an auto-updating value. Load errors are swallowed.
func (c *Collector[K, E]) Ref(key reactive.Source[*K]) *Binding[E] {
	var zero E
	b := &Binding[E]{value: reactive.NewValue(zero)}

	update := func(k *K) {
		epoch := b.next()
		if k == nil {
			b.publish(epoch, zero)
			return
		}

		f := c.fetch(context.Background(), *k)
		go func() {
			<-f.done
			if f.err != nil {
				b.publish(epoch, zero)
			} else {
				b.publish(epoch, f.v)
			}
		}()
	}

	b.mx.Lock()
	b.cancel = key.Subscribe(update)
	b.mx.Unlock()

	update(key.Get())

	return b
}
