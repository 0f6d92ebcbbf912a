package reactive

import "sync"

// Source is a read-only observable value.
type Source[T any] interface {
	Get() T
	Subscribe(fn func(T)) (cancel func())
}

var _ Source[int] = (*Value[int])(nil)

// Value holds a value and notifies subscribers on every Set.
// Subscribers are called after the internal lock is released,
// in subscription order.
type Value[T any] struct {
	v    T
	subs []subscriber[T]
	next uint64
	mx   sync.Mutex
}

type subscriber[T any] struct {
	id uint64
	fn func(T)
}

func NewValue[T any](v T) *Value[T] {
	return &Value[T]{v: v}
}

func (v *Value[T]) Get() T { //nolint:ireturn // returns generic T
	v.mx.Lock()
	defer v.mx.Unlock()

	return v.v
}

func (v *Value[T]) Set(x T) {
	v.mx.Lock()
	v.v = x
	subs := v.snapshot()
	v.mx.Unlock()

	for _, fn := range subs {
		fn(x)
	}
}

func (v *Value[T]) Subscribe(fn func(T)) (cancel func()) {
	v.mx.Lock()
	defer v.mx.Unlock()

	id := v.next
	v.next++
	v.subs = append(v.subs, subscriber[T]{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mx.Lock()
			defer v.mx.Unlock()
			for i := range v.subs {
				if v.subs[i].id == id {
					v.subs = append(v.subs[:i:i], v.subs[i+1:]...)
					return
				}
			}
		})
	}
}

func (v *Value[T]) snapshot() []func(T) {
	ret := make([]func(T), 0, len(v.subs))
	for _, s := range v.subs {
		ret = append(ret, s.fn)
	}
	return ret
}

// Derive returns a value computed from src, recomputed every time src changes.
// The returned cancel func detaches it from src.
func Derive[T, U any](src Source[T], fn func(T) U) (*Value[U], func()) {
	out := NewValue(fn(src.Get()))
	cancel := src.Subscribe(func(x T) {
		out.Set(fn(x))
	})
	return out, cancel
}

// Ptr returns a pointer to a copy of v, handy for optional keys.
func Ptr[T any](v T) *T {
	return &v
}
