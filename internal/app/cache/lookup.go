package cache

import (
	"context"
	"sync"

	"github.com/ledgerscope/explorer/internal/reactive"
)

// LookupHandle is a view of an EntityCache entry selected by a dynamic key.
// Unmounting clears the view but keeps the cache entry.
type LookupHandle[K comparable, E any] struct {
	cache *EntityCache[K, E]
	key   reactive.Source[*K]

	entity  *reactive.Value[E]
	err     *reactive.Value[error]
	loading *reactive.Value[bool]

	mounted bool
	epoch   uint64
	cancel  []func()

	v    E
	e    error
	busy bool
	pub  reactive.Publisher
	mx   sync.Mutex
}

// MakeLookup returns an unmounted handle bound to key.
func (c *EntityCache[K, E]) MakeLookup(key reactive.Source[*K]) *LookupHandle[K, E] {
	var zero E
	return &LookupHandle[K, E]{
		cache:   c,
		key:     key,
		entity:  reactive.NewValue(zero),
		err:     reactive.NewValue[error](nil),
		loading: reactive.NewValue(false),
	}
}

func (h *LookupHandle[K, E]) Entity() reactive.Source[E]     { return h.entity }
func (h *LookupHandle[K, E]) Error() reactive.Source[error]  { return h.err }
func (h *LookupHandle[K, E]) Loading() reactive.Source[bool] { return h.loading }

func (h *LookupHandle[K, E]) Mounted() bool {
	h.mx.Lock()
	defer h.mx.Unlock()

	return h.mounted
}

func (h *LookupHandle[K, E]) Mount() {
	h.mx.Lock()
	if h.mounted {
		h.mx.Unlock()
		return
	}
	h.mounted = true
	h.cancel = append(h.cancel,
		h.key.Subscribe(h.onKey),
		h.cache.updated.Subscribe(h.onUpdate),
	)
	h.mx.Unlock()

	h.onKey(h.key.Get())
}

func (h *LookupHandle[K, E]) Unmount() {
	h.mx.Lock()
	if !h.mounted {
		h.mx.Unlock()
		return
	}
	h.mounted = false
	h.epoch++
	epoch := h.epoch
	cancel := h.cancel
	h.cancel = nil
	h.mx.Unlock()

	for _, c := range cancel {
		c()
	}
	h.publish(epoch, nil)
}

func (h *LookupHandle[K, E]) onUpdate(k K) {
	if cur := h.key.Get(); cur != nil && *cur == k {
		h.onKey(cur)
	}
}

func (h *LookupHandle[K, E]) onKey(k *K) {
	h.mx.Lock()
	if !h.mounted {
		h.mx.Unlock()
		return
	}
	h.epoch++
	epoch := h.epoch
	if k != nil {
		h.busy = true
	}
	h.mx.Unlock()

	if k == nil {
		h.publish(epoch, nil)
		return
	}

	h.pub.Publish(h.show)
	go func(key K) {
		f := h.cache.lookup(context.Background(), key, false)
		<-f.done
		h.publish(epoch, f)
	}(*k)
}

// publish shows the outcome of f, or clears the view when f is nil,
// unless a newer key was selected since epoch was taken.
func (h *LookupHandle[K, E]) publish(epoch uint64, f *future[E]) {
	h.mx.Lock()
	if epoch != h.epoch {
		h.mx.Unlock()
		return
	}

	var zero E
	switch {
	case f == nil:
		h.v, h.e = zero, nil
	case f.err != nil:
		h.v, h.e = zero, f.err
	default:
		h.v, h.e = f.v, nil
	}
	h.busy = false
	h.mx.Unlock()

	h.pub.Publish(h.show)
}

func (h *LookupHandle[K, E]) show() {
	h.mx.Lock()
	v, e, busy := h.v, h.e, h.busy
	h.mx.Unlock()

	h.entity.Set(v)
	h.err.Set(e)
	h.loading.Set(busy)
}
