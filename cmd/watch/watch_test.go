package watch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerscope/explorer/internal/core"
	"github.com/ledgerscope/explorer/internal/core/rndm"
)

func reversed(txs []*core.Transaction) []*core.Transaction {
	ret := make([]*core.Transaction, len(txs))
	for i, tx := range txs {
		ret[len(txs)-1-i] = tx
	}
	return ret
}

func TestTail_Fresh(t *testing.T) {
	txs := rndm.Transactions(6) // ascending
	tl := newTail(4)

	require.Equal(t, txs[:3], tl.fresh(reversed(txs[:3])))
	require.Empty(t, tl.fresh(reversed(txs[:3])))

	// the table moved on by two rows, the shown ones are not logged again
	require.Equal(t, txs[3:5], tl.fresh(reversed(txs[2:5])))

	// over the limit the least recently shown row is forgotten, not every row
	require.Equal(t, txs[5:], tl.fresh(reversed(txs[3:])))
	assert.Empty(t, tl.fresh(reversed(txs[2:])))
	assert.Equal(t, txs[:1], tl.fresh(reversed(txs[:1])))
}
