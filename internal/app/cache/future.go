package cache

import "context"

// future is a single pending or resolved load shared by concurrent callers.
type future[E any] struct {
	done chan struct{}
	v    E
	err  error
}

func newFuture[E any]() *future[E] {
	return &future[E]{done: make(chan struct{})}
}

func resolvedFuture[E any](v E, err error) *future[E] {
	f := newFuture[E]()
	f.resolve(v, err)
	return f
}

func (f *future[E]) resolve(v E, err error) {
	f.v, f.err = v, err
	close(f.done)
}

func (f *future[E]) resolved() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

func (f *future[E]) wait(ctx context.Context) (E, error) { //nolint:ireturn // generic
	select {
	case <-f.done:
		return f.v, f.err
	case <-ctx.Done():
		var zero E
		return zero, ctx.Err()
	}
}
