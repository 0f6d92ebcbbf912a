package table

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ledgerscope/explorer/internal/core/filter"
)

// refreshController polls the head of the table and replaces the buffer on every tick.
// It runs under the lock of its controller.
type refreshController[R any, K comparable] struct {
	c *Controller[R, K]

	session     uint64
	running     bool
	autoStopped bool
	inFlight    bool
	count       int
	timer       *time.Timer
	cancel      context.CancelFunc
}

func (r *refreshController[R, K]) startLocked() {
	r.stopLocked()

	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.running = true
	r.count = 0

	r.issueLocked(ctx, r.session)
}

func (r *refreshController[R, K]) stopLocked() {
	r.session++
	r.running = false
	r.autoStopped = false
	r.inFlight = false
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}

func (r *refreshController[R, K]) issueLocked(ctx context.Context, session uint64) {
	c := r.c
	limit := c.size
	r.inFlight = true

	go func() {
		rows, err := c.src.Load(ctx, nil, filter.GT, c.cfg.Order, limit)
		r.complete(ctx, session, limit, rows, err)
	}()
}

func (r *refreshController[R, K]) complete(ctx context.Context, session uint64, limit int, rows []R, err error) {
	c := r.c

	c.mx.Lock()
	if session != r.session {
		c.mx.Unlock()
		return
	}

	r.inFlight = false
	r.count++
	if err != nil {
		log.Error().Err(err).Str("table", c.cfg.TableID).Msg("refresh table")
		c.lastErr = err
	} else {
		c.buf = &RowBuffer[R]{Rows: rows, Drained: len(rows) < limit}
		c.lastErr = nil
	}

	if c.cfg.MaxUpdateCount == 0 || r.count < c.cfg.MaxUpdateCount {
		r.timer = time.AfterFunc(c.cfg.UpdatePeriod, func() { r.tick(ctx, session) })
	} else {
		log.Debug().Str("table", c.cfg.TableID).Int("updates", r.count).Msg("auto refresh stopped")
		r.running = false
		r.autoStopped = true
		r.cancel()
		r.cancel = nil
	}
	c.mx.Unlock()

	c.publish()
}

func (r *refreshController[R, K]) tick(ctx context.Context, session uint64) {
	c := r.c

	c.mx.Lock()
	if session != r.session || !r.running {
		c.mx.Unlock()
		return
	}
	r.timer = nil
	r.issueLocked(ctx, session)
	c.mx.Unlock()

	c.publish()
}
