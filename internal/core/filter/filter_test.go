package filter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyParam_OrderInvertsOperator(t *testing.T) {
	var testCases = []*struct {
		op   Operator
		asc  string
		desc string
	}{
		{op: GT, asc: "gt:100", desc: "lt:100"},
		{op: GTE, asc: "gte:100", desc: "lte:100"},
		{op: LT, asc: "lt:100", desc: "gt:100"},
		{op: LTE, asc: "lte:100", desc: "gte:100"},
		{op: EQ, asc: "eq:100", desc: "eq:100"},
	}

	for _, c := range testCases {
		require.Equal(t, c.asc, KeyParam(c.op, ASC, "100"))
		require.Equal(t, c.desc, KeyParam(c.op, DESC, "100"))
		require.Equal(t, c.op, c.op.Invert().Invert())
	}
}

func TestSplitKeyParam(t *testing.T) {
	op, v, err := SplitKeyParam("lte:1700000000.000000001")
	require.NoError(t, err)
	require.Equal(t, LTE, op)
	require.Equal(t, "1700000000.000000001", v)

	op, v, err = SplitKeyParam("42")
	require.NoError(t, err)
	require.Equal(t, EQ, op)
	require.Equal(t, "42", v)

	_, _, err = SplitKeyParam("ne:42")
	require.Error(t, err)
}

func TestTransactionsReq_Query(t *testing.T) {
	ts := "1700000000.000000001"

	q := (&TransactionsReq{
		AccountID: "0.0.98",
		Timestamp: &ts,
		Operator:  GT,
		Order:     DESC,
		Limit:     15,
	}).Query()

	require.Equal(t, "0.0.98", q.Get("account.id"))
	require.Equal(t, "lt:"+ts, q.Get("timestamp"))
	require.Equal(t, "desc", q.Get("order"))
	require.Equal(t, "15", q.Get("limit"))

	q = (&TransactionsReq{Timestamp: &ts, Operator: GT, Order: ASC}).Query()
	require.Equal(t, "gt:"+ts, q.Get("timestamp"))
	require.Equal(t, "asc", q.Get("order"))
	require.Empty(t, q.Get("limit"))
}

func TestBlocksReq_Query(t *testing.T) {
	n := int64(1000)

	q := (&BlocksReq{BlockNumber: &n, Operator: GTE, Order: DESC, Limit: 5}).Query()
	require.Equal(t, "lte:1000", q.Get("block.number"))

	q = (&BlocksReq{}).Query()
	require.Empty(t, q.Get("block.number"))
	require.Equal(t, "desc", q.Get("order"))
}
