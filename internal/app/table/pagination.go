package table

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/ledgerscope/explorer/internal/core/filter"
)

// paginationController follows the table forward from an anchor key
// and keeps every visited page in the buffer.
// It runs under the lock of its controller.
type paginationController[R any, K comparable] struct {
	c *Controller[R, K]

	session  uint64
	anchor   *K // first row of page 1, nil for the head of the table
	inFlight bool
	ctx      context.Context
	cancel   context.CancelFunc
}

func (p *paginationController[R, K]) startLocked(anchor *K, initial *RowBuffer[R]) {
	p.stopLocked()

	p.ctx, p.cancel = context.WithCancel(context.Background())
	p.anchor = anchor
	if initial == nil {
		initial = &RowBuffer[R]{}
	}
	p.c.buf = initial

	p.ensureLocked()
}

func (p *paginationController[R, K]) stopLocked() {
	p.session++
	p.inFlight = false
	p.anchor = nil
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

// ensureLocked loads pages until the current page is buffered or the table is drained.
func (p *paginationController[R, K]) ensureLocked() {
	c := p.c
	if p.cancel == nil || p.inFlight || c.buf.Drained || len(c.buf.Rows) >= c.curPage*c.size {
		return
	}

	key, op := p.anchor, filter.GTE
	if n := len(c.buf.Rows); n > 0 {
		last := c.src.KeyFor(c.buf.Rows[n-1])
		key, op = &last, filter.GT
	}

	ctx, session, limit := p.ctx, p.session, c.size
	p.inFlight = true

	go func() {
		rows, err := c.src.Load(ctx, key, op, c.cfg.Order, limit)
		p.complete(session, limit, rows, err)
	}()
}

func (p *paginationController[R, K]) complete(session uint64, limit int, rows []R, err error) {
	c := p.c

	c.mx.Lock()
	if session != p.session {
		c.mx.Unlock()
		return
	}

	p.inFlight = false
	if err != nil {
		log.Error().Err(err).Str("table", c.cfg.TableID).Msg("load table page")
		c.lastErr = err
		c.mx.Unlock()
		c.publish()
		return
	}

	c.lastErr = nil
	if p.anchor == nil && len(c.buf.Rows) == 0 && len(rows) > 0 {
		first := c.src.KeyFor(rows[0])
		p.anchor = &first
	}
	c.buf = c.buf.Append(rows, len(rows) < limit)
	p.ensureLocked()
	c.mx.Unlock()

	c.publish()
}
