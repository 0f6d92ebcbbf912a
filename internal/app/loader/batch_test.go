package loader

import (
	"context"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type page struct {
	items []int
	next  *string
}

type pager struct {
	pages  int // pages available before next links end; zero means endless
	failAt int64
	calls  atomic.Int64
}

func (p *pager) loadNext(_ context.Context, next *string) (*page, error) {
	n := p.calls.Add(1)
	if n == p.failAt {
		return nil, errLoad
	}
	if next != nil {
		want := "/page/" + strconv.FormatInt(n, 10)
		if *next != want {
			return nil, errLoad
		}
	}

	ret := &page{items: []int{int(n)}}
	if p.pages == 0 || int(n) < p.pages {
		link := "/page/" + strconv.FormatInt(n+1, 10)
		ret.next = &link
	}
	return ret, nil
}

func (p *pager) batch(limit int) *BatchLoader[*page] {
	return &BatchLoader[*page]{
		LoadNext: p.loadNext,
		Merge: func(acc, next *page) *page {
			return &page{items: append(acc.items, next.items...), next: next.next}
		},
		NextLink:       func(p *page) *string { return p.next },
		RecursionLimit: limit,
	}
}

func TestBatchLoader_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("follows next links", func(t *testing.T) {
		p := &pager{pages: 3}
		got, err := p.batch(0).Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, got.items)
		assert.Equal(t, int64(3), p.calls.Load())
	})

	t.Run("recursion limit", func(t *testing.T) {
		p := &pager{}
		got, err := p.batch(2).Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, got.items)
		assert.Equal(t, int64(2), p.calls.Load())
	})

	t.Run("default recursion limit", func(t *testing.T) {
		p := &pager{}
		got, err := p.batch(0).Load(ctx)
		require.NoError(t, err)
		assert.Len(t, got.items, DefaultRecursionLimit)
	})

	t.Run("first page fails", func(t *testing.T) {
		p := &pager{pages: 3, failAt: 1}
		_, err := p.batch(0).Load(ctx)
		require.ErrorIs(t, err, errLoad)
	})

	t.Run("later page fails", func(t *testing.T) {
		p := &pager{pages: 5, failAt: 3}
		got, err := p.batch(0).Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, got.items)
	})
}

func TestBatchLoader_Loader(t *testing.T) {
	p := &pager{pages: 2}
	l := p.batch(0).Loader(nil)
	defer l.Unmount()

	l.Mount()
	require.Eventually(t, func() bool { return l.Current() == AutoStopped }, waitFor, tick)
	assert.Equal(t, []int{1, 2}, l.Entity().Get().items)
}
