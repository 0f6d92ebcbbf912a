package table

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerscope/explorer/internal/core/repository/settings"
	"github.com/ledgerscope/explorer/internal/reactive"
)

const (
	waitFor = time.Second
	tick    = 5 * time.Millisecond
)

func noRefresh() *Config {
	return &Config{TableID: "Numbers", PageSize: 10, UpdatePeriod: time.Hour}
}

func waitRows(t *testing.T, c *Controller[int64, int64], want []int64) {
	t.Helper()
	require.Eventually(t, func() bool {
		return assert.ObjectsAreEqual(want, c.Rows().Get()) && !c.Loading().Get()
	}, waitFor, tick, "want rows %v, got %v", want, c.Rows().Get())
}

func TestRowBuffer(t *testing.T) {
	b := &RowBuffer[int]{Rows: []int{1, 2, 3, 4, 5, 6, 7}}

	assert.Equal(t, []int{4, 5, 6}, b.Page(2, 3))
	assert.Equal(t, []int{7}, b.Page(3, 3))
	assert.Nil(t, b.Page(4, 3))
	assert.Nil(t, b.Page(0, 3))

	assert.Equal(t, 9, b.TotalRowCount(3))
	assert.Equal(t, 10, b.TotalRowCount(5))

	d := b.Append([]int{8}, true)
	assert.Len(t, b.Rows, 7)
	assert.Equal(t, 8, d.TotalRowCount(3))
}

func TestController_Refresh(t *testing.T) {
	src := newIntSource(50)
	c := New[int64, int64](src, nil, &Config{PageSize: 10, UpdatePeriod: 20 * time.Millisecond, MaxUpdateCount: 3})
	defer c.Unmount()

	c.Mount(context.Background())
	waitRows(t, c, seq(50, 41))
	assert.Equal(t, 20, c.TotalRowCount().Get())
	assert.Equal(t, url.Values{"ps": {"10"}}, c.Query().Get())
	assert.True(t, c.AutoRefresh().Get())

	src.add(1)
	waitRows(t, c, seq(51, 42))

	require.Eventually(t, func() bool { return c.AutoStopped().Get() }, waitFor, tick)
	assert.False(t, c.AutoRefresh().Get())
	time.Sleep(60 * time.Millisecond)
	assert.Len(t, src.Calls(), 3)

	c.StartAutoRefresh()
	require.Eventually(t, func() bool { return len(src.Calls()) == 4 }, waitFor, tick)
	assert.False(t, c.AutoStopped().Get())

	c.StopAutoRefresh()
	n := len(src.Calls())
	time.Sleep(60 * time.Millisecond)
	assert.Len(t, src.Calls(), n)
	assert.Equal(t, seq(51, 42), c.Rows().Get())
}

func TestController_Pagination(t *testing.T) {
	src := newIntSource(25)
	c := New[int64, int64](src, nil, noRefresh())
	defer c.Unmount()

	c.Mount(context.Background())
	waitRows(t, c, seq(25, 16))

	c.SetPage(2)
	waitRows(t, c, seq(15, 6))
	assert.Equal(t, 2, c.CurrentPage().Get())
	assert.Equal(t, 30, c.TotalRowCount().Get())
	assert.Equal(t, url.Values{"ps": {"10"}, "p": {"2"}, "k": {"25"}}, c.Query().Get())
	assert.Equal(t, []string{"", "lt:16"}, src.Calls()) // "after 16" in descending order

	c.SetPage(3)
	waitRows(t, c, seq(5, 1))
	assert.Equal(t, 25, c.TotalRowCount().Get())

	c.SetPage(1) // buffered
	waitRows(t, c, seq(25, 16))
	assert.Len(t, src.Calls(), 3)

	c.StartAutoRefresh()
	waitRows(t, c, seq(25, 16))
	assert.Equal(t, url.Values{"ps": {"10"}}, c.Query().Get())
	assert.Equal(t, 1, c.CurrentPage().Get())
}

func TestController_Query(t *testing.T) {
	src := newIntSource(50)

	t.Run("reproduces page", func(t *testing.T) {
		query := reactive.NewValue(url.Values{"ps": {"10"}, "p": {"2"}, "k": {"48"}})
		c := New[int64, int64](src, query, noRefresh())
		defer c.Unmount()

		c.Mount(context.Background())
		waitRows(t, c, seq(38, 29))
		assert.False(t, c.AutoRefresh().Get())
		assert.Equal(t, 2, c.CurrentPage().Get())
		assert.Equal(t, "lte:48", src.Calls()[0])

		// navigating back in the browser
		query.Set(url.Values{"ps": {"5"}, "p": {"3"}, "k": {"30"}})
		waitRows(t, c, seq(20, 16))
		assert.Equal(t, 5, c.PageSize().Get())
	})

	t.Run("back and forward keep visited pages", func(t *testing.T) {
		pages := newIntSource(50)
		query := reactive.NewValue(url.Values{})
		c := New[int64, int64](pages, query, noRefresh())
		defer c.Unmount()

		c.Mount(context.Background())
		waitRows(t, c, seq(50, 41))
		c.SetPage(2)
		waitRows(t, c, seq(40, 31))
		c.SetPage(3)
		waitRows(t, c, seq(30, 21))
		require.Equal(t, []string{"", "lt:41", "lt:31"}, pages.Calls())

		query.Set(url.Values{"ps": {"10"}, "p": {"2"}, "k": {"50"}})
		waitRows(t, c, seq(40, 31))
		assert.Equal(t, 2, c.CurrentPage().Get())

		query.Set(url.Values{"ps": {"10"}, "p": {"4"}, "k": {"50"}})
		waitRows(t, c, seq(20, 11))
		assert.Equal(t, []string{"", "lt:41", "lt:31", "lt:21"}, pages.Calls())
	})

	t.Run("malformed key", func(t *testing.T) {
		query := reactive.NewValue(url.Values{"k": {"abc"}, "other": {"x"}})
		c := New[int64, int64](src, query, noRefresh())
		defer c.Unmount()

		c.Mount(context.Background())
		waitRows(t, c, seq(50, 41))
		assert.True(t, c.AutoRefresh().Get())
		assert.Equal(t, url.Values{"ps": {"10"}, "other": {"x"}}, query.Get())
	})

	t.Run("custom names", func(t *testing.T) {
		cfg := noRefresh()
		cfg.PageParam, cfg.KeyParam, cfg.PageSizeParam = "tx_p", "tx_k", "tx_ps"

		query := reactive.NewValue(url.Values{"tx_p": {"2"}, "tx_k": {"45"}, "p": {"7"}})
		c := New[int64, int64](src, query, cfg)
		defer c.Unmount()

		c.Mount(context.Background())
		waitRows(t, c, seq(35, 26))
		assert.Equal(t, url.Values{"tx_p": {"2"}, "tx_k": {"45"}, "tx_ps": {"10"}, "p": {"7"}}, query.Get())
	})
}

func TestController_PageSize(t *testing.T) {
	ctx := context.Background()
	src := newIntSource(50)
	s := settings.NewMemory()
	require.NoError(t, s.SetPageSize(ctx, "Numbers", 5))

	cfg := noRefresh()
	cfg.Settings = s
	c := New[int64, int64](src, nil, cfg)
	defer c.Unmount()

	c.Mount(ctx)
	waitRows(t, c, seq(50, 46))
	assert.Equal(t, 5, c.PageSize().Get())

	c.SetPage(3)
	waitRows(t, c, seq(40, 36))

	require.NoError(t, c.SetPageSize(ctx, 10))
	waitRows(t, c, seq(40, 31)) // first row of the page kept
	assert.Equal(t, 2, c.CurrentPage().Get())

	size, ok, err := s.GetPageSize(ctx, "numbers")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 10, size)

	assert.Error(t, c.SetPageSize(ctx, 0))
}

func TestController_Errors(t *testing.T) {
	src := newIntSource(30)
	c := New[int64, int64](src, nil, noRefresh())
	defer c.Unmount()

	c.Mount(context.Background())
	waitRows(t, c, seq(30, 21))

	src.setFail(true)
	c.SetPage(2)
	require.Eventually(t, func() bool { return c.Error().Get() != nil && !c.Loading().Get() }, waitFor, tick)
	assert.ErrorIs(t, c.Error().Get(), errLoad)
	assert.Nil(t, c.Rows().Get())

	src.setFail(false)
	c.SetPage(1)
	c.SetPage(2)
	waitRows(t, c, seq(20, 11))
	assert.Nil(t, c.Error().Get())
}

func TestController_Unmount(t *testing.T) {
	src := newIntSource(30)
	c := New[int64, int64](src, nil, &Config{PageSize: 10, UpdatePeriod: 10 * time.Millisecond})

	c.Mount(context.Background())
	require.Eventually(t, func() bool { return len(src.Calls()) >= 2 }, waitFor, tick)

	c.Unmount()
	n := len(src.Calls())
	time.Sleep(50 * time.Millisecond)
	assert.LessOrEqual(t, len(src.Calls()), n+1)
	assert.Nil(t, c.Rows().Get())
	assert.False(t, c.AutoRefresh().Get())
}
