package explorer

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerscope/explorer/internal/app/loader"
	"github.com/ledgerscope/explorer/internal/app/table"
	"github.com/ledgerscope/explorer/internal/core"
	"github.com/ledgerscope/explorer/internal/core/rndm"
	"github.com/ledgerscope/explorer/internal/reactive"
)

func TestTables_KeyRoundTrip(t *testing.T) {
	txs := &TransactionTable{}
	for _, tx := range rndm.Transactions(10) {
		k := txs.KeyFor(tx)
		got := txs.KeyFromString(txs.StringFromKey(k))
		require.NotNil(t, got)
		assert.Equal(t, k, *got)
	}
	assert.Nil(t, txs.KeyFromString("yesterday"))
	assert.Nil(t, txs.KeyFromString(""))

	blocks := &BlockTable{}
	for _, b := range rndm.Blocks(10) {
		k := blocks.KeyFor(b)
		got := blocks.KeyFromString(blocks.StringFromKey(k))
		require.NotNil(t, got)
		assert.Equal(t, k, *got)
	}
	assert.Nil(t, blocks.KeyFromString("-1"))
	assert.Nil(t, blocks.KeyFromString("0x10"))

	msgs := &TopicMessageTable{TopicID: "0.0.7"}
	for _, m := range rndm.TopicMessages("0.0.7", 10) {
		k := msgs.KeyFor(m)
		got := msgs.KeyFromString(msgs.StringFromKey(k))
		require.NotNil(t, got)
		assert.Equal(t, k, *got)
	}
}

func TestTransactionTable_Controller(t *testing.T) {
	s, srv := newService(t)
	txs := rndm.Transactions(12) // ascending
	srv.AddTransactions(txs...)

	c := table.New[*core.Transaction, string](&TransactionTable{Mirror: s.Config().Mirror}, nil, &table.Config{
		TableID:      "Transactions",
		PageSize:     5,
		UpdatePeriod: time.Hour,
	})
	defer c.Unmount()

	wantPage := func(from, to int) {
		t.Helper()
		require.Eventually(t, func() bool {
			rows := c.Rows().Get()
			if len(rows) != from-to+1 {
				return false
			}
			for i, r := range rows {
				if r.ConsensusTimestamp != txs[from-i].ConsensusTimestamp {
					return false
				}
			}
			return true
		}, waitFor, tick)
	}

	c.Mount(context.Background())
	wantPage(11, 7)

	c.SetPage(2)
	wantPage(6, 2)
	assert.Equal(t, 15, c.TotalRowCount().Get())

	var next string
	for _, r := range srv.Requests() {
		if strings.Contains(r, "timestamp=") {
			next = r
		}
	}
	assert.Contains(t, next, "timestamp=lt%3A"+txs[7].ConsensusTimestamp)
	assert.Contains(t, next, "order=desc")

	c.SetPage(3)
	wantPage(1, 0)
	assert.Equal(t, 12, c.TotalRowCount().Get())
	assert.Equal(t, txs[11].ConsensusTimestamp, c.Query().Get().Get("k"))
}

func TestService_Polling(t *testing.T) {
	s, srv := newService(t)
	m := s.Config().Mirror

	t.Run("blocks", func(t *testing.T) {
		blocks := rndm.Blocks(4)
		srv.AddBlocks(blocks[:3]...)

		l := NewBlockCache(m, 3, nil)
		defer l.Unmount()

		l.Mount()
		waitStopped(t, l)
		assert.Equal(t, []*core.Block{blocks[2], blocks[1], blocks[0]}, l.Entity().Get())

		srv.AddBlocks(blocks[3])
		l.Reload()
		require.Eventually(t, func() bool { return l.LoadCount() == 1 && l.Current() == loader.AutoStopped }, waitFor, tick)
		assert.Equal(t, []*core.Block{blocks[3], blocks[2], blocks[1]}, l.Entity().Get())
		assert.Equal(t, 1, srv.RequestCount("/api/v1/blocks?block.number=gt%3A"))
	})

	t.Run("transactions of type", func(t *testing.T) {
		txs := rndm.Transactions(3)
		txs[1].Name = "CONSENSUSSUBMITMESSAGE"
		srv.AddTransactions(txs...)

		l := NewTransactionCacheV2(m, "CONSENSUSSUBMITMESSAGE", 5, nil)
		defer l.Unmount()

		l.Mount()
		waitStopped(t, l)
		assert.Equal(t, []*core.Transaction{txs[1]}, l.Entity().Get())
	})

	t.Run("account transactions", func(t *testing.T) {
		a, b := rndm.Transaction(), rndm.Transaction()
		srv.AddTransactions(a, b)

		account := reactive.NewValue(reactive.Ptr(a.Transfers[0].Account))
		l := NewAccountTransactionCache(m, account, 5, nil)
		defer l.Unmount()

		l.Mount()
		require.Eventually(t, func() bool {
			got := l.Entity().Get()
			return len(got) == 1 && got[0].TransactionID == a.TransactionID
		}, waitFor, tick)

		account.Set(reactive.Ptr(b.Transfers[0].Account))
		require.Eventually(t, func() bool {
			got := l.Entity().Get()
			return len(got) == 1 && got[0].TransactionID == b.TransactionID
		}, waitFor, tick)
	})

	t.Run("topic messages", func(t *testing.T) {
		msgs := rndm.TopicMessages("0.0.7", 6)
		srv.AddMessages("0.0.7", msgs[:5]...)

		topic := reactive.NewValue(reactive.Ptr("0.0.7"))
		l := NewTopicMessageCache(m, topic, 3, nil)
		defer l.Unmount()

		l.Mount()
		require.Eventually(t, func() bool { return len(l.Entity().Get()) == 3 }, waitFor, tick)
		assert.Equal(t, []*core.TopicMessage{msgs[4], msgs[3], msgs[2]}, l.Entity().Get())

		srv.AddMessages("0.0.7", msgs[5])
		l.Reload()
		require.Eventually(t, func() bool { return l.Entity().Get()[0].SequenceNumber == 6 }, waitFor, tick)
		assert.Equal(t, []*core.TopicMessage{msgs[5], msgs[4], msgs[3]}, l.Entity().Get())
	})
}
