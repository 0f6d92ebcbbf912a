package table

import (
	"context"
	"strconv"
	"sync"

	"github.com/pkg/errors"

	"github.com/ledgerscope/explorer/internal/core/filter"
)

var errLoad = errors.New("load failed")

// intSource is a table of int64 rows keyed by themselves.
type intSource struct {
	rows  []int64 // ascending
	calls []string
	fail  bool
	mx    sync.Mutex
}

func newIntSource(n int) *intSource {
	s := &intSource{}
	for i := 1; i <= n; i++ {
		s.rows = append(s.rows, int64(i))
	}
	return s
}

func (s *intSource) add(n int) {
	s.mx.Lock()
	defer s.mx.Unlock()

	last := s.rows[len(s.rows)-1]
	for i := 1; i <= n; i++ {
		s.rows = append(s.rows, last+int64(i))
	}
}

func (s *intSource) setFail(fail bool) {
	s.mx.Lock()
	defer s.mx.Unlock()

	s.fail = fail
}

// Calls returns the range query parameter of every load, "" for a load without key.
func (s *intSource) Calls() []string {
	s.mx.Lock()
	defer s.mx.Unlock()

	return append([]string(nil), s.calls...)
}

func (s *intSource) Load(_ context.Context, key *int64, op filter.Operator, order filter.Order, limit int) ([]int64, error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	var param string
	if key != nil {
		param = filter.KeyParam(op, order, s.StringFromKey(*key))
	}
	s.calls = append(s.calls, param)
	if s.fail {
		return nil, errLoad
	}

	var ret []int64
	for i := range s.rows {
		v := s.rows[i]
		if order == filter.DESC {
			v = s.rows[len(s.rows)-1-i]
		}
		if key != nil && !match(order.Apply(op), v, *key) {
			continue
		}
		ret = append(ret, v)
		if len(ret) == limit {
			break
		}
	}
	return ret, nil
}

func match(op filter.Operator, v, key int64) bool {
	switch op {
	case filter.GT:
		return v > key
	case filter.GTE:
		return v >= key
	case filter.LT:
		return v < key
	case filter.LTE:
		return v <= key
	default:
		return v == key
	}
}

func (s *intSource) KeyFor(row int64) int64 { return row }

func (s *intSource) KeyFromString(str string) *int64 {
	v, err := strconv.ParseInt(str, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

func (s *intSource) StringFromKey(key int64) string {
	return strconv.FormatInt(key, 10)
}

func seq(from, to int64) []int64 {
	var ret []int64
	if from > to {
		for i := from; i >= to; i-- {
			ret = append(ret, i)
		}
		return ret
	}
	for i := from; i <= to; i++ {
		ret = append(ret, i)
	}
	return ret
}
