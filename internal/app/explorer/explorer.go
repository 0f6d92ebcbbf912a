package explorer

import (
	"context"

	"github.com/pkg/errors"

	"github.com/ledgerscope/explorer/internal/app"
	"github.com/ledgerscope/explorer/internal/app/cache"
	"github.com/ledgerscope/explorer/internal/app/loader"
	"github.com/ledgerscope/explorer/internal/core"
)

var _ app.ExplorerService = (*Service)(nil)

const defaultPageSize = 15

// Service holds the caches shared by every consumer of the explorer.
type Service struct {
	cfg *app.ExplorerConfig

	Accounts     *cache.EntityCache[string, *core.Account]
	Contracts    *cache.EntityCache[string, *core.Contract]
	Transactions *cache.EntityCache[string, []*core.Transaction]
	Tokens       *cache.Collector[string, *core.Token]
	Metadata     *cache.EntityCache[string, *core.TokenMetadata]
	Nodes        *loader.BatchLoader[*core.NetworkNodesResponse]

	BlockFeed       *loader.Loader[[]*core.Block]
	TransactionFeed *loader.Loader[[]*core.Transaction]
}

func NewService(_ context.Context, cfg *app.ExplorerConfig) (*Service, error) {
	if cfg.Mirror == nil {
		return nil, errors.New("no mirror service")
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}

	var s = new(Service)
	s.cfg = cfg

	m := cfg.Mirror
	entities := &cache.Config{Failures: cache.CacheNotFound, Capacity: cfg.CacheCapacity}

	s.Accounts = cache.NewEntityCache(m.GetAccount, entities)
	s.Contracts = cache.NewEntityCache(m.GetContract, entities)
	s.Transactions = cache.NewEntityCache(func(ctx context.Context, id string) ([]*core.Transaction, error) {
		res, err := m.GetTransaction(ctx, id)
		if err != nil {
			return nil, err
		}
		return res.Transactions, nil
	}, entities)
	s.Tokens = cache.NewCollector(m.GetToken)
	s.Metadata = cache.NewEntityCache(s.loadMetadata, &cache.Config{
		Failures: cache.RetryFailures,
		Capacity: cfg.CacheCapacity,
	})
	s.Nodes = NewNodesLoader(m)

	poll := s.LoaderConfig()
	s.BlockFeed = NewBlockCache(m, cfg.PageSize, poll)
	s.TransactionFeed = NewTransactionCache(m, cfg.PageSize, poll)

	return s, nil
}

// LoaderConfig returns the refresh settings of polling loaders.
func (s *Service) LoaderConfig() *loader.Config {
	return &loader.Config{
		RefreshPeriod:   s.cfg.RefreshPeriod,
		MaxRefreshCount: s.cfg.MaxRefreshCount,
	}
}

func (s *Service) Config() *app.ExplorerConfig {
	return s.cfg
}

// Start mounts the polling caches of the latest blocks and transactions.
func (s *Service) Start() {
	s.BlockFeed.Mount()
	s.TransactionFeed.Mount()
}

func (s *Service) Stop() {
	s.BlockFeed.Unmount()
	s.TransactionFeed.Unmount()
}

// checkID accepts "shard.realm.num" ids and, when evm is set, evm addresses.
func checkID(id string, evm bool) error {
	if core.IsEntityID(id) || (evm && core.IsEVMAddress(id)) {
		return nil
	}
	return errors.Wrapf(core.ErrInvalidArg, "wrong id '%s'", id)
}

func (s *Service) GetAccount(ctx context.Context, id string) (*core.Account, error) {
	if err := checkID(id, true); err != nil {
		return nil, err
	}
	return s.Accounts.Lookup(ctx, id, false)
}

func (s *Service) GetContract(ctx context.Context, id string) (*core.Contract, error) {
	if err := checkID(id, true); err != nil {
		return nil, err
	}
	return s.Contracts.Lookup(ctx, id, false)
}

func (s *Service) GetToken(ctx context.Context, id string) (*core.Token, error) {
	if err := checkID(id, false); err != nil {
		return nil, err
	}
	return s.Tokens.Fetch(ctx, id)
}

func (s *Service) GetTransaction(ctx context.Context, id string) ([]*core.Transaction, error) {
	if !core.IsTransactionID(id) {
		return nil, errors.Wrapf(core.ErrInvalidArg, "wrong transaction id '%s'", id)
	}
	return s.Transactions.Lookup(ctx, id, false)
}

func (s *Service) GetTokenMetadata(ctx context.Context, id string) (*core.TokenMetadata, error) {
	if err := checkID(id, false); err != nil {
		return nil, err
	}
	t, err := s.Tokens.Fetch(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "get token %s", id)
	}
	loc := MetadataLocation(t.Metadata)
	if loc == "" {
		return nil, errors.Wrapf(core.ErrNotFound, "token %s has no metadata", id)
	}
	return s.Metadata.Lookup(ctx, loc, false)
}

func (s *Service) GetNetworkNodes(ctx context.Context) ([]*core.NetworkNode, error) {
	res, err := s.Nodes.Load(ctx)
	if err != nil {
		return nil, err
	}
	return res.Nodes, nil
}

func (s *Service) LatestBlocks() []*core.Block {
	return s.BlockFeed.Entity().Get()
}

func (s *Service) LatestTransactions() []*core.Transaction {
	return s.TransactionFeed.Entity().Get()
}

// CallContract simulates a contract call on the mirror node.
func (s *Service) CallContract(ctx context.Context, req *core.ContractCallRequest) (*core.ContractCallResult, error) {
	if req.To == "" {
		return nil, errors.Wrap(core.ErrInvalidArg, "no contract address")
	}
	res, err := s.cfg.Mirror.ContractCall(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "contract call")
	}
	return res, nil
}
