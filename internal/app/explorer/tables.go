package explorer

import (
	"context"
	"strconv"

	"github.com/ledgerscope/explorer/internal/app"
	"github.com/ledgerscope/explorer/internal/app/table"
	"github.com/ledgerscope/explorer/internal/core"
	"github.com/ledgerscope/explorer/internal/core/filter"
)

var (
	_ table.Source[*core.Transaction, string] = (*TransactionTable)(nil)
	_ table.Source[*core.Block, int64]        = (*BlockTable)(nil)
	_ table.Source[*core.TopicMessage, int64] = (*TopicMessageTable)(nil)
)

// TransactionTable pages transactions by consensus timestamp.
type TransactionTable struct {
	Mirror app.MirrorService

	AccountID       string
	TransactionType string
	Result          string
}

func (t *TransactionTable) Load(ctx context.Context, key *string, op filter.Operator, order filter.Order, limit int) ([]*core.Transaction, error) {
	res, err := t.Mirror.GetTransactions(ctx, &filter.TransactionsReq{
		AccountID:       t.AccountID,
		TransactionType: t.TransactionType,
		Result:          t.Result,
		Timestamp:       key,
		Operator:        op,
		Order:           order,
		Limit:           limit,
	})
	if err != nil {
		return nil, err
	}
	return res.Transactions, nil
}

func (t *TransactionTable) KeyFor(row *core.Transaction) string {
	return row.ConsensusTimestamp
}

func (t *TransactionTable) KeyFromString(s string) *string {
	if !core.IsTimestamp(s) {
		return nil
	}
	return &s
}

func (t *TransactionTable) StringFromKey(key string) string {
	return key
}

// BlockTable pages blocks by number.
type BlockTable struct {
	Mirror app.MirrorService
}

func (t *BlockTable) Load(ctx context.Context, key *int64, op filter.Operator, order filter.Order, limit int) ([]*core.Block, error) {
	res, err := t.Mirror.GetBlocks(ctx, &filter.BlocksReq{
		BlockNumber: key,
		Operator:    op,
		Order:       order,
		Limit:       limit,
	})
	if err != nil {
		return nil, err
	}
	return res.Blocks, nil
}

func (t *BlockTable) KeyFor(row *core.Block) int64 { return row.Number }

func (t *BlockTable) KeyFromString(s string) *int64 { return parseSeq(s) }

func (t *BlockTable) StringFromKey(key int64) string { return strconv.FormatInt(key, 10) }

// TopicMessageTable pages the messages of a topic by sequence number.
type TopicMessageTable struct {
	Mirror  app.MirrorService
	TopicID string
}

func (t *TopicMessageTable) Load(ctx context.Context, key *int64, op filter.Operator, order filter.Order, limit int) ([]*core.TopicMessage, error) {
	res, err := t.Mirror.GetTopicMessages(ctx, &filter.TopicMessagesReq{
		TopicID:        t.TopicID,
		SequenceNumber: key,
		Operator:       op,
		Order:          order,
		Limit:          limit,
	})
	if err != nil {
		return nil, err
	}
	return res.Messages, nil
}

func (t *TopicMessageTable) KeyFor(row *core.TopicMessage) int64 { return row.SequenceNumber }

func (t *TopicMessageTable) KeyFromString(s string) *int64 { return parseSeq(s) }

func (t *TopicMessageTable) StringFromKey(key int64) string { return strconv.FormatInt(key, 10) }

func parseSeq(s string) *int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}
