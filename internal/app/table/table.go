// Package table drives paginated tables whose position is kept in url query parameters.
package table

import (
	"context"
	"time"

	"github.com/ledgerscope/explorer/internal/core/filter"
	"github.com/ledgerscope/explorer/internal/core/repository"
)

const (
	DefaultPageSize     = 15
	DefaultUpdatePeriod = 5 * time.Second
)

// Source loads the rows of a table.
type Source[R any, K comparable] interface {
	// Load issues exactly one request for up to limit rows following key in table order.
	// op is given in ascending terms ("gt" means after key) and is inverted
	// by the implementation for descending order. A nil key loads the head of the table.
	Load(ctx context.Context, key *K, op filter.Operator, order filter.Order, limit int) ([]R, error)

	KeyFor(row R) K
	// KeyFromString returns nil on malformed input.
	KeyFromString(s string) *K
	StringFromKey(key K) string
}

type Config struct {
	// TableID names the table in persisted settings.
	TableID string

	Order    filter.Order
	PageSize int

	UpdatePeriod   time.Duration
	MaxUpdateCount int // zero means refresh until stopped

	PageSizeParam string
	PageParam     string
	KeyParam      string

	Settings repository.Settings
}

func (c *Config) withDefaults() Config {
	ret := *c
	if ret.Order == "" {
		ret.Order = filter.DESC
	}
	if ret.PageSize <= 0 {
		ret.PageSize = DefaultPageSize
	}
	if ret.UpdatePeriod <= 0 {
		ret.UpdatePeriod = DefaultUpdatePeriod
	}
	if ret.PageSizeParam == "" {
		ret.PageSizeParam = "ps"
	}
	if ret.PageParam == "" {
		ret.PageParam = "p"
	}
	if ret.KeyParam == "" {
		ret.KeyParam = "k"
	}
	return ret
}

// RowBuffer holds the rows loaded so far in table order.
// Buffers are never modified, every change produces a new one.
type RowBuffer[R any] struct {
	Rows []R
	// Drained is set once a load returned less rows than requested.
	Drained bool
}

func (b *RowBuffer[R]) Append(rows []R, drained bool) *RowBuffer[R] {
	ret := make([]R, 0, len(b.Rows)+len(rows))
	ret = append(ret, b.Rows...)
	ret = append(ret, rows...)
	return &RowBuffer[R]{Rows: ret, Drained: drained}
}

// Page returns the rows of a page numbered from 1.
func (b *RowBuffer[R]) Page(page, size int) []R {
	start := (page - 1) * size
	if page < 1 || size <= 0 || start >= len(b.Rows) {
		return nil
	}
	end := start + size
	if end > len(b.Rows) {
		end = len(b.Rows)
	}
	return b.Rows[start:end]
}

// TotalRowCount is exact once the buffer is drained.
// Before that it is rounded up to the end of the page following the buffered rows.
func (b *RowBuffer[R]) TotalRowCount(size int) int {
	if b.Drained || size <= 0 {
		return len(b.Rows)
	}
	return (len(b.Rows)/size + 1) * size
}
