package filter

import (
	"net/url"
	"strconv"
)

type BlocksReq struct {
	BlockNumber *int64
	Operator    Operator

	Order Order
	Limit int
}

func (r *BlocksReq) Query() url.Values {
	q := url.Values{}
	if r.BlockNumber != nil {
		q.Set("block.number", KeyParam(opOrGT(r.Operator), orderOrDesc(r.Order), formatInt(*r.BlockNumber)))
	}
	q.Set("order", string(orderOrDesc(r.Order)))
	if r.Limit > 0 {
		q.Set("limit", strconv.Itoa(r.Limit))
	}
	return q
}
