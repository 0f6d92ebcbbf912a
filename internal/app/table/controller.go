package table

import (
	"context"
	"net/url"
	"strconv"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/ledgerscope/explorer/internal/reactive"
)

type mode int

const (
	refreshMode mode = iota
	paginationMode
)

// Controller shows one page of a table at a time.
//
// Without a key in the url query the controller is in refresh mode: it polls
// the head of the table and only shows page 1. Navigating to another page,
// or opening an url carrying a key, switches it to pagination mode anchored
// at that key, where pages are loaded forward and kept for the session.
type Controller[R any, K comparable] struct {
	src   Source[R, K]
	cfg   Config
	query *reactive.Value[url.Values]

	rows        *reactive.Value[[]R]
	total       *reactive.Value[int]
	page        *reactive.Value[int]
	pageSize    *reactive.Value[int]
	loading     *reactive.Value[bool]
	autoRefresh *reactive.Value[bool]
	autoStopped *reactive.Value[bool]
	err         *reactive.Value[error]

	refresh    refreshController[R, K]
	pagination paginationController[R, K]

	mounted     bool
	mode        mode
	buf         *RowBuffer[R]
	curPage     int
	size        int
	lastErr     error
	written     string // last query written by the controller
	cancelQuery func()

	pub reactive.Publisher
	mx  sync.Mutex
}

// New returns an unmounted controller. query is the router state shared
// with the rest of the application, nil for a private one.
func New[R any, K comparable](src Source[R, K], query *reactive.Value[url.Values], cfg *Config) *Controller[R, K] {
	if query == nil {
		query = reactive.NewValue(url.Values{})
	}
	if cfg == nil {
		cfg = new(Config)
	}

	c := &Controller[R, K]{
		src:   src,
		cfg:   cfg.withDefaults(),
		query: query,

		rows:        reactive.NewValue[[]R](nil),
		total:       reactive.NewValue(0),
		page:        reactive.NewValue(1),
		loading:     reactive.NewValue(false),
		autoRefresh: reactive.NewValue(false),
		autoStopped: reactive.NewValue(false),
		err:         reactive.NewValue[error](nil),

		buf:     &RowBuffer[R]{},
		curPage: 1,
	}
	c.size = c.cfg.PageSize
	c.pageSize = reactive.NewValue(c.size)
	c.refresh.c = c
	c.pagination.c = c

	return c
}

func (c *Controller[R, K]) Rows() reactive.Source[[]R]          { return c.rows }
func (c *Controller[R, K]) TotalRowCount() reactive.Source[int] { return c.total }
func (c *Controller[R, K]) CurrentPage() reactive.Source[int]   { return c.page }
func (c *Controller[R, K]) PageSize() reactive.Source[int]      { return c.pageSize }
func (c *Controller[R, K]) Loading() reactive.Source[bool]      { return c.loading }
func (c *Controller[R, K]) AutoRefresh() reactive.Source[bool]  { return c.autoRefresh }
func (c *Controller[R, K]) AutoStopped() reactive.Source[bool]  { return c.autoStopped }
func (c *Controller[R, K]) Error() reactive.Source[error]       { return c.err }
func (c *Controller[R, K]) Query() reactive.Source[url.Values]  { return c.query }

// Mount reads the page size preference and the url query and starts loading.
func (c *Controller[R, K]) Mount(ctx context.Context) {
	size := c.cfg.PageSize
	if c.cfg.Settings != nil {
		s, ok, err := c.cfg.Settings.GetPageSize(ctx, c.cfg.TableID)
		if err != nil {
			log.Error().Err(err).Str("table", c.cfg.TableID).Msg("get page size")
		}
		if ok && s > 0 {
			size = s
		}
	}

	cancel := c.query.Subscribe(c.onQuery)

	c.mx.Lock()
	if c.mounted {
		c.mx.Unlock()
		cancel()
		return
	}
	c.mounted = true
	c.cancelQuery = cancel
	c.size = size
	c.applyLocked(c.query.Get(), true)
	c.mx.Unlock()

	c.publish()
}

func (c *Controller[R, K]) Unmount() {
	c.mx.Lock()
	if !c.mounted {
		c.mx.Unlock()
		return
	}
	c.mounted = false
	c.refresh.stopLocked()
	c.pagination.stopLocked()
	c.buf = &RowBuffer[R]{}
	c.lastErr = nil
	cancel := c.cancelQuery
	c.cancelQuery = nil
	c.mx.Unlock()

	cancel()
	c.publish()
}

// StartAutoRefresh goes back to the head of the table and polls it.
func (c *Controller[R, K]) StartAutoRefresh() {
	c.mx.Lock()
	if !c.mounted {
		c.mx.Unlock()
		return
	}
	c.startRefreshLocked()
	c.mx.Unlock()

	c.publish()
}

// StopAutoRefresh keeps the rows shown but stops polling.
func (c *Controller[R, K]) StopAutoRefresh() {
	c.mx.Lock()
	if c.mode == refreshMode {
		c.refresh.stopLocked()
	}
	c.mx.Unlock()

	c.publish()
}

// SetPage shows the page numbered n from 1.
func (c *Controller[R, K]) SetPage(n int) {
	if n < 1 {
		n = 1
	}

	c.mx.Lock()
	if !c.mounted || n == c.curPage {
		c.mx.Unlock()
		return
	}

	c.curPage = n
	if c.mode == refreshMode {
		var anchor *K
		if len(c.buf.Rows) > 0 {
			first := c.src.KeyFor(c.buf.Rows[0])
			anchor = &first
		}
		c.startPaginationLocked(anchor, c.buf)
	} else {
		c.pagination.ensureLocked()
	}
	c.mx.Unlock()

	c.publish()
}

// SetPageSize changes the page size and saves it as the table preference.
// In pagination mode the first row of the current page stays visible.
func (c *Controller[R, K]) SetPageSize(ctx context.Context, n int) error {
	if n <= 0 {
		return errors.Errorf("wrong page size %d", n)
	}

	c.mx.Lock()
	if n != c.size {
		first := (c.curPage - 1) * c.size
		c.size = n
		switch {
		case !c.mounted:
		case c.mode == paginationMode:
			c.curPage = first/n + 1
			c.pagination.ensureLocked()
		case c.refresh.running:
			c.refresh.startLocked()
		}
	}
	c.mx.Unlock()

	c.publish()

	if c.cfg.Settings == nil {
		return nil
	}
	return errors.Wrap(c.cfg.Settings.SetPageSize(ctx, c.cfg.TableID, n), "save page size")
}

func (c *Controller[R, K]) onQuery(q url.Values) {
	c.mx.Lock()
	if !c.mounted || q.Encode() == c.written {
		c.mx.Unlock()
		return
	}
	c.applyLocked(q, false)
	c.mx.Unlock()

	c.publish()
}

// applyLocked moves the controller to the position described by q.
// Unless forced, nothing happens when q describes the current position.
func (c *Controller[R, K]) applyLocked(q url.Values, force bool) {
	size := c.size
	if v, err := strconv.Atoi(q.Get(c.cfg.PageSizeParam)); err == nil && v > 0 {
		size = v
	}
	page := 1
	if v, err := strconv.Atoi(q.Get(c.cfg.PageParam)); err == nil && v > 0 {
		page = v
	}
	var key *K
	if s := q.Get(c.cfg.KeyParam); s != "" {
		key = c.src.KeyFromString(s) // malformed keys start from the head
	}

	var anchor *K
	if c.mode == paginationMode {
		anchor = c.pagination.anchor
	}
	if !force && size == c.size && page == c.curPage && sameKey(key, anchor) {
		return
	}

	// another page of the current session: visited pages stay buffered
	if !force && c.mode == paginationMode && key != nil && sameKey(key, anchor) && size == c.size {
		c.curPage = page
		c.pagination.ensureLocked()
		return
	}

	c.size, c.curPage = size, page
	if key == nil && page == 1 {
		c.startRefreshLocked()
		return
	}
	c.startPaginationLocked(key, nil)
}

func (c *Controller[R, K]) startRefreshLocked() {
	c.pagination.stopLocked()
	if c.mode != refreshMode {
		c.buf = &RowBuffer[R]{}
	}
	c.mode = refreshMode
	c.curPage = 1
	c.refresh.startLocked()
}

func (c *Controller[R, K]) startPaginationLocked(anchor *K, initial *RowBuffer[R]) {
	c.refresh.stopLocked()
	c.mode = paginationMode
	c.pagination.startLocked(anchor, initial)
}

// queryLocked returns the url query describing the current position.
func (c *Controller[R, K]) queryLocked() url.Values {
	ret := url.Values{}
	for k, v := range c.query.Get() {
		ret[k] = append([]string(nil), v...)
	}

	ret.Set(c.cfg.PageSizeParam, strconv.Itoa(c.size))
	if c.mode == refreshMode {
		ret.Del(c.cfg.PageParam)
		ret.Del(c.cfg.KeyParam)
		return ret
	}

	ret.Set(c.cfg.PageParam, strconv.Itoa(c.curPage))
	if a := c.pagination.anchor; a != nil {
		ret.Set(c.cfg.KeyParam, c.src.StringFromKey(*a))
	} else {
		ret.Del(c.cfg.KeyParam)
	}
	return ret
}

func (c *Controller[R, K]) publish() {
	c.pub.Publish(func() {
		c.mx.Lock()
		buf, page, size := c.buf, c.curPage, c.size
		loading := c.refresh.inFlight || c.pagination.inFlight
		auto, stopped, err := c.refresh.running, c.refresh.autoStopped, c.lastErr

		var q url.Values
		if c.mounted {
			next := c.queryLocked()
			if enc := next.Encode(); enc != c.written {
				c.written = enc
				q = next
			}
		}
		c.mx.Unlock()

		c.rows.Set(buf.Page(page, size))
		c.total.Set(buf.TotalRowCount(size))
		c.page.Set(page)
		c.pageSize.Set(size)
		c.autoRefresh.Set(auto)
		c.autoStopped.Set(stopped)
		c.err.Set(err)
		if q != nil {
			c.query.Set(q)
		}
		c.loading.Set(loading) // last: !Loading means the rest is in place
	})
}

func sameKey[K comparable](a, b *K) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
