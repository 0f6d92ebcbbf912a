package mirror

import (
	"context"
	"net/url"

	"github.com/ledgerscope/explorer/internal/core"
	"github.com/ledgerscope/explorer/internal/core/filter"
)

func (c *Client) GetAccount(ctx context.Context, id string) (*core.Account, error) {
	var ret core.Account
	if err := c.Get(ctx, "/accounts/"+url.PathEscape(id), nil, &ret); err != nil {
		return nil, err
	}
	return &ret, nil
}

func (c *Client) GetContract(ctx context.Context, id string) (*core.Contract, error) {
	var ret core.Contract
	if err := c.Get(ctx, "/contracts/"+url.PathEscape(id), nil, &ret); err != nil {
		return nil, err
	}
	return &ret, nil
}

func (c *Client) GetToken(ctx context.Context, id string) (*core.Token, error) {
	var ret core.Token
	if err := c.Get(ctx, "/tokens/"+url.PathEscape(id), nil, &ret); err != nil {
		return nil, err
	}
	return &ret, nil
}

func (c *Client) GetTransaction(ctx context.Context, id string) (*core.TransactionByIDResponse, error) {
	var ret core.TransactionByIDResponse
	if err := c.Get(ctx, "/transactions/"+url.PathEscape(id), nil, &ret); err != nil {
		return nil, err
	}
	return &ret, nil
}

func (c *Client) GetTransactions(ctx context.Context, req *filter.TransactionsReq) (*core.TransactionsResponse, error) {
	var ret core.TransactionsResponse
	if err := c.Get(ctx, "/transactions", req.Query(), &ret); err != nil {
		return nil, err
	}
	return &ret, nil
}

func (c *Client) GetBlocks(ctx context.Context, req *filter.BlocksReq) (*core.BlocksResponse, error) {
	var ret core.BlocksResponse
	if err := c.Get(ctx, "/blocks", req.Query(), &ret); err != nil {
		return nil, err
	}
	return &ret, nil
}

func (c *Client) GetTopicMessages(ctx context.Context, req *filter.TopicMessagesReq) (*core.TopicMessagesResponse, error) {
	var ret core.TopicMessagesResponse
	if err := c.Get(ctx, "/topics/"+url.PathEscape(req.TopicID)+"/messages", req.Query(), &ret); err != nil {
		return nil, err
	}
	return &ret, nil
}

// GetNetworkNodes returns the first page of nodes when next is nil, otherwise follows next.
func (c *Client) GetNetworkNodes(ctx context.Context, next *string) (*core.NetworkNodesResponse, error) {
	var (
		ret core.NetworkNodesResponse
		err error
	)
	if next == nil {
		err = c.Get(ctx, "/network/nodes", nil, &ret)
	} else {
		err = c.GetNext(ctx, *next, &ret)
	}
	if err != nil {
		return nil, err
	}
	return &ret, nil
}

func (c *Client) ContractCall(ctx context.Context, req *core.ContractCallRequest) (*core.ContractCallResult, error) {
	var ret core.ContractCallResult
	if err := c.Post(ctx, "/contracts/call", req, &ret); err != nil {
		return nil, err
	}
	return &ret, nil
}
