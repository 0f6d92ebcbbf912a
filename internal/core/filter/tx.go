package filter

import (
	"net/url"
	"strconv"
)

type TransactionsReq struct {
	AccountID       string
	TransactionType string // e.g. CRYPTOTRANSFER
	Result          string // success, fail

	Timestamp *string // consensus timestamp cursor
	Operator  Operator

	Order Order
	Limit int
}

func (r *TransactionsReq) Query() url.Values {
	q := url.Values{}
	if r.AccountID != "" {
		q.Set("account.id", r.AccountID)
	}
	if r.TransactionType != "" {
		q.Set("transactiontype", r.TransactionType)
	}
	if r.Result != "" {
		q.Set("result", r.Result)
	}
	if r.Timestamp != nil {
		q.Set("timestamp", KeyParam(opOrGT(r.Operator), orderOrDesc(r.Order), *r.Timestamp))
	}
	q.Set("order", string(orderOrDesc(r.Order)))
	if r.Limit > 0 {
		q.Set("limit", strconv.Itoa(r.Limit))
	}
	return q
}

func opOrGT(op Operator) Operator {
	if op == "" {
		return GT
	}
	return op
}

func orderOrDesc(o Order) Order {
	if o == "" {
		return DESC
	}
	return o
}
