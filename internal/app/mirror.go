package app

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/ledgerscope/explorer/internal/core"
	"github.com/ledgerscope/explorer/internal/core/filter"
)

type MirrorConfig struct {
	URL string // e.g. https://mainnet-public.mirrornode.hedera.com

	HTTPClient *http.Client

	// RateLimit bounds outgoing requests per second, zero means no limit.
	RateLimit rate.Limit
	Burst     int
}

func TimeTrack(start time.Time, fun string, args ...any) {
	elapsed := float64(time.Since(start)) / 1e9
	if elapsed < 0.1 {
		return
	}
	log.Debug().Str("func", fmt.Sprintf(fun, args...)).Float64("elapsed", elapsed).Msg("timer")
}

// MirrorService performs requests to the mirror node REST API.
type MirrorService interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	GetNext(ctx context.Context, next string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	FetchURL(ctx context.Context, rawURL string, out any) error

	GetAccount(ctx context.Context, id string) (*core.Account, error)
	GetContract(ctx context.Context, id string) (*core.Contract, error)
	GetToken(ctx context.Context, id string) (*core.Token, error)

	GetTransaction(ctx context.Context, id string) (*core.TransactionByIDResponse, error)
	GetTransactions(ctx context.Context, req *filter.TransactionsReq) (*core.TransactionsResponse, error)
	GetBlocks(ctx context.Context, req *filter.BlocksReq) (*core.BlocksResponse, error)
	GetTopicMessages(ctx context.Context, req *filter.TopicMessagesReq) (*core.TopicMessagesResponse, error)
	GetNetworkNodes(ctx context.Context, next *string) (*core.NetworkNodesResponse, error)

	ContractCall(ctx context.Context, req *core.ContractCallRequest) (*core.ContractCallResult, error)
}
