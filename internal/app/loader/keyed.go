package loader

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/ledgerscope/explorer/internal/reactive"
)

var errNoKey = errors.New("no key")

// Keyed is a Loader whose load depends on a dynamic key.
// A nil key pauses the loader and clears its entity. A new key clears
// the entity of the previous key and loads the new one.
type Keyed[K comparable, E any] struct {
	*Loader[E]

	key    reactive.Source[*K]
	last   *K
	cancel func()
	mx     sync.Mutex
}

func NewKeyed[K comparable, E any](key reactive.Source[*K], load func(context.Context, K) (E, error), cfg *Config) *Keyed[K, E] {
	k := &Keyed[K, E]{key: key}
	k.Loader = New(func(ctx context.Context) (E, error) {
		cur := key.Get()
		if cur == nil {
			var zero E
			return zero, errNoKey
		}
		return load(ctx, *cur)
	}, cfg)
	return k
}

func (k *Keyed[K, E]) Mount() {
	cur := k.key.Get()

	k.mx.Lock()
	if k.cancel == nil {
		k.cancel = k.key.Subscribe(k.onKey)
	}
	k.last = cur
	k.mx.Unlock()

	k.Loader.mount(cur != nil)
}

func (k *Keyed[K, E]) Unmount() {
	k.mx.Lock()
	if k.cancel != nil {
		k.cancel()
		k.cancel = nil
	}
	k.last = nil
	k.mx.Unlock()

	k.Loader.Unmount()
}

func (k *Keyed[K, E]) Resume() {
	if k.key.Get() == nil {
		return
	}
	k.Loader.Resume()
}

func (k *Keyed[K, E]) Start() { k.Resume() }

// BindStarted starts and stops the loader following src. Without a key it stays paused.
func (k *Keyed[K, E]) BindStarted(src reactive.Source[bool]) (cancel func()) {
	apply := func(started bool) {
		if started {
			k.Start()
		} else {
			k.Stop()
		}
	}
	cancel = src.Subscribe(apply)
	apply(src.Get())
	return cancel
}

func (k *Keyed[K, E]) Reload() {
	if k.key.Get() == nil {
		return
	}
	k.Loader.Reload()
}

func (k *Keyed[K, E]) onKey(key *K) {
	k.mx.Lock()
	same := (key == nil && k.last == nil) || (key != nil && k.last != nil && *key == *k.last)
	k.last = key
	k.mx.Unlock()

	switch {
	case same:
		return
	case key == nil:
		k.Loader.Pause()
		k.Loader.Clear()
	default:
		k.Loader.restart(true)
	}
}
