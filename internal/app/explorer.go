package app

import (
	"context"
	"time"

	"github.com/ledgerscope/explorer/internal/core"
	"github.com/ledgerscope/explorer/internal/core/repository"
)

type ExplorerConfig struct {
	Mirror   MirrorService
	Settings repository.Settings

	// RefreshPeriod and MaxRefreshCount bound every polling loop.
	RefreshPeriod   time.Duration
	MaxRefreshCount int

	// PageSize is the default table page size and the length of polled lists.
	PageSize int

	// CacheCapacity bounds every entity cache, zero means unbounded.
	CacheCapacity int

	// MetadataGateway resolves ipfs:// token metadata locations.
	MetadataGateway string
}

// ExplorerService answers explorer queries from process-wide caches.
type ExplorerService interface {
	GetAccount(ctx context.Context, id string) (*core.Account, error)
	GetContract(ctx context.Context, id string) (*core.Contract, error)
	GetToken(ctx context.Context, id string) (*core.Token, error)
	GetTokenMetadata(ctx context.Context, id string) (*core.TokenMetadata, error)
	GetTransaction(ctx context.Context, id string) ([]*core.Transaction, error)
	GetNetworkNodes(ctx context.Context) ([]*core.NetworkNode, error)

	LatestBlocks() []*core.Block
	LatestTransactions() []*core.Transaction

	CallContract(ctx context.Context, req *core.ContractCallRequest) (*core.ContractCallResult, error)
}
