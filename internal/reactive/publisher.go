package reactive

import "sync"

// Publisher runs publications one at a time.
// A publication requested while another one is running is folded into it:
// the running goroutine calls its fn once more instead, so fn must read
// the latest state of its owner on every call.
type Publisher struct {
	running bool
	dirty   bool
	mx      sync.Mutex
}

func (p *Publisher) Publish(fn func()) {
	p.mx.Lock()
	p.dirty = true
	if p.running {
		p.mx.Unlock()
		return
	}
	p.running = true

	for p.dirty {
		p.dirty = false
		p.mx.Unlock()
		fn()
		p.mx.Lock()
	}

	p.running = false
	p.mx.Unlock()
}
