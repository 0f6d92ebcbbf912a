package loader

import (
	"context"
	"sync"
	"time"

	"github.com/ledgerscope/explorer/internal/reactive"
)

// LoadFunc fetches the entity of a Loader.
type LoadFunc[E any] func(ctx context.Context) (E, error)

type Config struct {
	// RefreshPeriod is the delay between the end of a load and the next one.
	// Zero disables auto refresh: the loader loads once per start.
	RefreshPeriod time.Duration

	// MaxRefreshCount is the number of loads after which auto refresh stops
	// until the loader is started again. Zero means no limit.
	MaxRefreshCount int
}

// Loader holds a single asynchronously loaded entity bound to a mount lifecycle.
//
// Every load captures the loader epoch when issued; the epoch is bumped by every
// stop, restart and unmount, and a completion carrying another epoch is dropped.
type Loader[E any] struct {
	cfg  Config
	load LoadFunc[E]

	entity *reactive.Value[E]
	err    *reactive.Value[error]
	state  *reactive.Value[State]

	st        State
	v         E
	e         error
	epoch     uint64
	loadCount int
	timer     *time.Timer
	cancel    context.CancelFunc

	pub reactive.Publisher
	mx  sync.Mutex
}

func New[E any](load LoadFunc[E], cfg *Config) *Loader[E] {
	l := &Loader[E]{load: load}
	if cfg != nil {
		l.cfg = *cfg
	}

	var zero E
	l.entity = reactive.NewValue(zero)
	l.err = reactive.NewValue[error](nil)
	l.state = reactive.NewValue(Unmounted)

	return l
}

func (l *Loader[E]) Entity() reactive.Source[E]         { return l.entity }
func (l *Loader[E]) Error() reactive.Source[error]      { return l.err }
func (l *Loader[E]) StateValue() reactive.Source[State] { return l.state }

// Current returns the state as seen by the loader, which may be ahead
// of the published State value while subscribers are being notified.
func (l *Loader[E]) Current() State {
	l.mx.Lock()
	defer l.mx.Unlock()

	return l.st
}

// Last returns the last loaded entity held by the loader.
// Unlike Entity it is reset before a load following Clear is issued.
func (l *Loader[E]) Last() E { //nolint:ireturn // generic
	l.mx.Lock()
	defer l.mx.Unlock()

	return l.v
}

func (l *Loader[E]) LoadCount() int {
	l.mx.Lock()
	defer l.mx.Unlock()

	return l.loadCount
}

// Mount moves the loader from Unmounted to Paused and starts loading.
func (l *Loader[E]) Mount() {
	l.mount(true)
}

func (l *Loader[E]) mount(start bool) {
	l.mx.Lock()
	if l.st != Unmounted {
		l.mx.Unlock()
		return
	}
	l.st = Paused
	if start {
		l.startLocked()
	}
	l.mx.Unlock()

	l.publish()
}

// Unmount drops any in-flight load, stops the timer and clears the entity and error.
func (l *Loader[E]) Unmount() {
	l.mx.Lock()
	if l.st == Unmounted {
		l.mx.Unlock()
		return
	}
	l.stopLocked()
	l.st = Unmounted
	var zero E
	l.v, l.e = zero, nil
	l.mx.Unlock()

	l.publish()
}

// Pause stops the polling loop, keeping the current entity.
func (l *Loader[E]) Pause() {
	l.mx.Lock()
	if l.st == Unmounted || l.st == Paused {
		l.mx.Unlock()
		return
	}
	l.stopLocked()
	l.st = Paused
	l.mx.Unlock()

	l.publish()
}

// Resume starts the polling loop with a fresh refresh budget.
func (l *Loader[E]) Resume() {
	l.mx.Lock()
	if l.st != Paused && l.st != AutoStopped {
		l.mx.Unlock()
		return
	}
	l.startLocked()
	l.mx.Unlock()

	l.publish()
}

func (l *Loader[E]) Stop()  { l.Pause() }
func (l *Loader[E]) Start() { l.Resume() }

// Reload supersedes any in-flight load with a new one and restarts the refresh budget.
func (l *Loader[E]) Reload() {
	l.restart(false)
}

func (l *Loader[E]) restart(reset bool) {
	l.mx.Lock()
	if l.st == Unmounted {
		l.mx.Unlock()
		return
	}
	l.stopLocked()
	if reset {
		var zero E
		l.v, l.e = zero, nil
	}
	l.startLocked()
	l.mx.Unlock()

	l.publish()
}

// Clear resets the entity, the error and the refresh budget.
// A started loader is stopped and immediately started again.
func (l *Loader[E]) Clear() {
	l.mx.Lock()
	var zero E
	l.v, l.e = zero, nil
	l.loadCount = 0
	if l.st.Started() {
		l.stopLocked()
		l.startLocked()
	}
	l.mx.Unlock()

	l.publish()
}

// BindStarted starts and stops the loader following src.
func (l *Loader[E]) BindStarted(src reactive.Source[bool]) (cancel func()) {
	apply := func(started bool) {
		if started {
			l.Start()
		} else {
			l.Stop()
		}
	}
	cancel = src.Subscribe(apply)
	apply(src.Get())
	return cancel
}

func (l *Loader[E]) stopLocked() {
	l.epoch++
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

func (l *Loader[E]) startLocked() {
	l.loadCount = 0
	l.issueLocked()
}

func (l *Loader[E]) issueLocked() {
	l.epoch++
	epoch := l.epoch

	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.st = Loading

	go func() {
		v, err := l.load(ctx)
		l.complete(epoch, v, err)
	}()
}

func (l *Loader[E]) complete(epoch uint64, v E, err error) {
	l.mx.Lock()
	if epoch != l.epoch {
		l.mx.Unlock()
		return
	}

	l.cancel = nil
	l.loadCount++
	if err != nil {
		l.e = err // the last loaded entity is kept
	} else {
		l.v, l.e = v, nil
	}

	if l.cfg.RefreshPeriod > 0 && (l.cfg.MaxRefreshCount == 0 || l.loadCount < l.cfg.MaxRefreshCount) {
		l.st = Sleeping
		l.timer = time.AfterFunc(l.cfg.RefreshPeriod, func() { l.tick(epoch) })
	} else {
		l.st = AutoStopped
	}
	l.mx.Unlock()

	l.publish()
}

func (l *Loader[E]) tick(epoch uint64) {
	l.mx.Lock()
	if epoch != l.epoch || l.st != Sleeping {
		l.mx.Unlock()
		return
	}
	l.timer = nil
	l.issueLocked()
	l.mx.Unlock()

	l.publish()
}

// publish copies the loader fields into the reactive outputs.
func (l *Loader[E]) publish() {
	l.pub.Publish(func() {
		l.mx.Lock()
		st, v, e := l.st, l.v, l.e
		l.mx.Unlock()

		l.entity.Set(v)
		l.err.Set(e)
		l.state.Set(st)
	})
}
