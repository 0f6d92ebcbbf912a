package filter

import (
	"net/url"
	"strconv"
)

type TopicMessagesReq struct {
	TopicID string

	SequenceNumber *int64
	Operator       Operator

	Order Order
	Limit int
}

func (r *TopicMessagesReq) Query() url.Values {
	q := url.Values{}
	if r.SequenceNumber != nil {
		q.Set("sequencenumber", KeyParam(opOrGT(r.Operator), orderOrDesc(r.Order), formatInt(*r.SequenceNumber)))
	}
	q.Set("order", string(orderOrDesc(r.Order)))
	if r.Limit > 0 {
		q.Set("limit", strconv.Itoa(r.Limit))
	}
	return q
}
