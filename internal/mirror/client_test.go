package mirror_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/ledgerscope/explorer/internal/app"
	"github.com/ledgerscope/explorer/internal/core"
	"github.com/ledgerscope/explorer/internal/core/filter"
	"github.com/ledgerscope/explorer/internal/core/rndm"
	"github.com/ledgerscope/explorer/internal/mirror"
	"github.com/ledgerscope/explorer/internal/mirror/mirrortest"
)

func newClient(t *testing.T) (*mirror.Client, *mirrortest.Server) {
	srv := mirrortest.NewServer()
	t.Cleanup(srv.Close)

	c, err := mirror.NewClient(&app.MirrorConfig{URL: srv.URL})
	require.NoError(t, err)

	return c, srv
}

func TestNewClient_WrongURL(t *testing.T) {
	_, err := mirror.NewClient(&app.MirrorConfig{URL: "localhost"})
	require.Error(t, err)
}

func TestClient_GetAccount(t *testing.T) {
	c, srv := newClient(t)
	ctx := context.Background()

	acc := rndm.Account()
	srv.Accounts[acc.Account] = acc

	t.Run("found", func(t *testing.T) {
		got, err := c.GetAccount(ctx, acc.Account)
		require.NoError(t, err)
		require.Equal(t, acc, got)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := c.GetAccount(ctx, "0.0.404")
		require.Error(t, err)
		require.True(t, mirror.IsNotFound(err))
		require.True(t, mirror.IsNotFound(errors.Wrap(err, "lookup account")))
		require.True(t, errors.Is(err, core.ErrNotFound))

		var merr *mirror.Error
		require.True(t, errors.As(err, &merr))
		require.Equal(t, http.StatusNotFound, merr.Status)
		require.Equal(t, "Not found", merr.Message)
	})

	t.Run("server failure is not a not found", func(t *testing.T) {
		srv.SetFail(http.StatusServiceUnavailable)
		defer srv.SetFail(0)

		_, err := c.GetAccount(ctx, acc.Account)
		require.Error(t, err)
		require.False(t, mirror.IsNotFound(err))
		require.ErrorIs(t, err, core.ErrNotAvailable)
	})

	t.Run("id is escaped", func(t *testing.T) {
		_, err := c.GetAccount(ctx, "0.0.1/../../network/nodes")
		require.True(t, mirror.IsNotFound(err))
		require.Equal(t, 1, srv.RequestCount("/api/v1/accounts/0.0.1%2F..%2F..%2Fnetwork%2Fnodes"))
		require.Equal(t, 0, srv.RequestCount("/api/v1/network/nodes"))
	})
}

func TestClient_GetTransactions_FollowNext(t *testing.T) {
	c, srv := newClient(t)
	ctx := context.Background()

	txs := rndm.Transactions(7)
	srv.AddTransactions(txs...)

	res, err := c.GetTransactions(ctx, &filter.TransactionsReq{Order: filter.DESC, Limit: 5})
	require.NoError(t, err)
	require.Len(t, res.Transactions, 5)
	require.NotNil(t, res.Links.Next)
	require.Equal(t, txs[6].ConsensusTimestamp, res.Transactions[0].ConsensusTimestamp)

	var next core.TransactionsResponse
	require.NoError(t, c.GetNext(ctx, *res.Links.Next, &next))
	require.Len(t, next.Transactions, 2)
	require.Nil(t, next.Links.Next)
	require.Equal(t, txs[1].ConsensusTimestamp, next.Transactions[0].ConsensusTimestamp)
	require.Equal(t, txs[0].ConsensusTimestamp, next.Transactions[1].ConsensusTimestamp)
}

func TestClient_GetTransactions_RangeQuery(t *testing.T) {
	c, srv := newClient(t)
	ctx := context.Background()

	txs := rndm.Transactions(5)
	srv.AddTransactions(txs...)

	res, err := c.GetTransactions(ctx, &filter.TransactionsReq{
		Timestamp: &txs[2].ConsensusTimestamp,
		Operator:  filter.GT, // after the key in descending order, i.e. older
		Order:     filter.DESC,
	})
	require.NoError(t, err)
	require.Equal(t, []*core.Transaction{txs[1], txs[0]}, res.Transactions)

	res, err = c.GetTransactions(ctx, &filter.TransactionsReq{
		Timestamp: &txs[2].ConsensusTimestamp,
		Operator:  filter.GT,
		Order:     filter.ASC,
	})
	require.NoError(t, err)
	require.Equal(t, []*core.Transaction{txs[3], txs[4]}, res.Transactions)

	require.Contains(t, srv.Requests()[0], "timestamp=lt%3A"+txs[2].ConsensusTimestamp)
	require.Contains(t, srv.Requests()[1], "timestamp=gt%3A"+txs[2].ConsensusTimestamp)
}

func TestClient_ContractCall(t *testing.T) {
	c, _ := newClient(t)

	res, err := c.ContractCall(context.Background(), &core.ContractCallRequest{Data: "0x06fdde03", To: "0x00000000000000000000000000000000000003e9"})
	require.NoError(t, err)
	require.Equal(t, "0x06fdde03", res.Result)

	_, err = c.ContractCall(context.Background(), &core.ContractCallRequest{Data: "0x06fdde03"})
	require.Error(t, err)
}

func TestClient_RateLimit(t *testing.T) {
	srv := mirrortest.NewServer()
	defer srv.Close()

	c, err := mirror.NewClient(&app.MirrorConfig{URL: srv.URL, RateLimit: 20, Burst: 1})
	require.NoError(t, err)

	start := time.Now()
	for i := 0; i < 3; i++ {
		_, _ = c.GetBlocks(context.Background(), &filter.BlocksReq{})
	}
	require.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
	require.Equal(t, 3, srv.RequestCount("/api/v1/blocks"))
}
