package explorer

import (
	"context"

	"github.com/ledgerscope/explorer/internal/app"
	"github.com/ledgerscope/explorer/internal/app/loader"
	"github.com/ledgerscope/explorer/internal/app/merge"
	"github.com/ledgerscope/explorer/internal/core"
	"github.com/ledgerscope/explorer/internal/core/filter"
	"github.com/ledgerscope/explorer/internal/reactive"
)

// newPoller returns a loader keeping the newest rows of a table.
// Every load fetches the rows newer than the current head and merges them
// with merge.Poll, so the list keeps its length once full.
func newPoller[R any](fetch func(ctx context.Context, head *R) ([]R, error), newer func(a, b R) bool, cfg *loader.Config) *loader.Loader[[]R] {
	var l *loader.Loader[[]R]
	l = loader.New(func(ctx context.Context) ([]R, error) {
		return pollOnce(ctx, l.Last(), fetch, newer)
	}, cfg)
	return l
}

func newKeyedPoller[K comparable, R any](key reactive.Source[*K], fetch func(ctx context.Context, key K, head *R) ([]R, error), newer func(a, b R) bool, cfg *loader.Config) *loader.Keyed[K, []R] {
	var l *loader.Keyed[K, []R]
	l = loader.NewKeyed(key, func(ctx context.Context, k K) ([]R, error) {
		return pollOnce(ctx, l.Last(), func(ctx context.Context, head *R) ([]R, error) {
			return fetch(ctx, k, head)
		}, newer)
	}, cfg)
	return l
}

func pollOnce[R any](ctx context.Context, prev []R, fetch func(ctx context.Context, head *R) ([]R, error), newer func(a, b R) bool) ([]R, error) {
	var head *R
	if len(prev) > 0 {
		head = &prev[0]
	}
	fresh, err := fetch(ctx, head)
	if err != nil {
		return nil, err
	}
	return merge.Poll(fresh, prev, newer), nil
}

func newerBlock(a, b *core.Block) bool {
	return a.Number > b.Number
}

func newerTransaction(a, b *core.Transaction) bool {
	return compareTimestamps(a.ConsensusTimestamp, b.ConsensusTimestamp) > 0
}

func newerMessage(a, b *core.TopicMessage) bool {
	return a.SequenceNumber > b.SequenceNumber
}

func compareTimestamps(a, b string) int {
	x, errX := core.ParseTimestamp(a)
	y, errY := core.ParseTimestamp(b)
	if errX != nil || errY != nil {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
	return x.Compare(y)
}

// NewBlockCache polls the latest blocks.
func NewBlockCache(m app.MirrorService, limit int, cfg *loader.Config) *loader.Loader[[]*core.Block] {
	return newPoller(func(ctx context.Context, head **core.Block) ([]*core.Block, error) {
		req := &filter.BlocksReq{Order: filter.DESC, Limit: limit}
		if head != nil {
			req.BlockNumber = &(*head).Number
			req.Operator = filter.LT // before the head in descending order: newer
		}
		res, err := m.GetBlocks(ctx, req)
		if err != nil {
			return nil, err
		}
		return res.Blocks, nil
	}, newerBlock, cfg)
}

func fetchTransactions(ctx context.Context, m app.MirrorService, req *filter.TransactionsReq, head *core.Transaction) ([]*core.Transaction, error) {
	req.Order = filter.DESC
	if head != nil {
		ts := head.ConsensusTimestamp
		req.Timestamp = &ts
		req.Operator = filter.LT
	}
	res, err := m.GetTransactions(ctx, req)
	if err != nil {
		return nil, err
	}
	return res.Transactions, nil
}

// NewTransactionCache polls the latest transactions.
func NewTransactionCache(m app.MirrorService, limit int, cfg *loader.Config) *loader.Loader[[]*core.Transaction] {
	return newPoller(func(ctx context.Context, head **core.Transaction) ([]*core.Transaction, error) {
		return fetchTransactions(ctx, m, &filter.TransactionsReq{Limit: limit}, deref(head))
	}, newerTransaction, cfg)
}

// NewTransactionCacheV2 polls the latest transactions of the given type, e.g. CRYPTOTRANSFER.
func NewTransactionCacheV2(m app.MirrorService, txType string, limit int, cfg *loader.Config) *loader.Loader[[]*core.Transaction] {
	return newPoller(func(ctx context.Context, head **core.Transaction) ([]*core.Transaction, error) {
		return fetchTransactions(ctx, m, &filter.TransactionsReq{TransactionType: txType, Limit: limit}, deref(head))
	}, newerTransaction, cfg)
}

// NewAccountTransactionCache polls the latest transactions of the selected account.
func NewAccountTransactionCache(m app.MirrorService, account reactive.Source[*string], limit int, cfg *loader.Config) *loader.Keyed[string, []*core.Transaction] {
	return newKeyedPoller(account, func(ctx context.Context, id string, head **core.Transaction) ([]*core.Transaction, error) {
		return fetchTransactions(ctx, m, &filter.TransactionsReq{AccountID: id, Limit: limit}, deref(head))
	}, newerTransaction, cfg)
}

// NewTopicMessageCache polls the latest messages of the selected topic.
func NewTopicMessageCache(m app.MirrorService, topic reactive.Source[*string], limit int, cfg *loader.Config) *loader.Keyed[string, []*core.TopicMessage] {
	return newKeyedPoller(topic, func(ctx context.Context, id string, head **core.TopicMessage) ([]*core.TopicMessage, error) {
		req := &filter.TopicMessagesReq{TopicID: id, Order: filter.DESC, Limit: limit}
		if head != nil {
			req.SequenceNumber = &(*head).SequenceNumber
			req.Operator = filter.LT
		}
		res, err := m.GetTopicMessages(ctx, req)
		if err != nil {
			return nil, err
		}
		return res.Messages, nil
	}, newerMessage, cfg)
}

func deref[T any](p *T) T { //nolint:ireturn // generic
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
