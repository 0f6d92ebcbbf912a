// Package setup builds the services shared by commands from environment variables.
package setup

import (
	"context"
	"time"

	"github.com/allisson/go-env"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"
	"golang.org/x/time/rate"

	"github.com/ledgerscope/explorer/internal/app"
	"github.com/ledgerscope/explorer/internal/app/explorer"
	"github.com/ledgerscope/explorer/internal/core/repository"
	"github.com/ledgerscope/explorer/internal/core/repository/settings"
	"github.com/ledgerscope/explorer/internal/mirror"
)

func Mirror() (*mirror.Client, error) {
	return mirror.NewClient(&app.MirrorConfig{
		URL:       env.GetString("MIRROR_URL", "https://mainnet-public.mirrornode.hedera.com"),
		RateLimit: rate.Limit(env.GetInt("RATE_LIMIT", 0)),
		Burst:     env.GetInt("RATE_BURST", 1),
	})
}

// Settings connects to postgres when DB_PG_URL is set and keeps settings in memory otherwise.
// The returned db is nil in the latter case.
func Settings(ctx context.Context) (repository.Settings, *bun.DB, error) {
	pgURL := env.GetString("DB_PG_URL", "")
	if pgURL == "" {
		log.Info().Msg("DB_PG_URL is not set, settings are kept in memory")
		return settings.NewMemory(), nil, nil
	}

	db, err := repository.ConnectDB(ctx, pgURL)
	if err != nil {
		return nil, nil, errors.Wrap(err, "cannot connect to a database")
	}
	if err := settings.CreateTables(ctx, db); err != nil {
		db.Close()
		return nil, nil, err
	}
	return settings.NewRepository(db), db, nil
}

func Explorer(ctx context.Context) (*explorer.Service, *bun.DB, error) {
	m, err := Mirror()
	if err != nil {
		return nil, nil, err
	}

	s, db, err := Settings(ctx)
	if err != nil {
		return nil, nil, err
	}

	svc, err := explorer.NewService(ctx, &app.ExplorerConfig{
		Mirror:          m,
		Settings:        s,
		RefreshPeriod:   time.Duration(env.GetInt("REFRESH_PERIOD_MS", 5000)) * time.Millisecond,
		MaxRefreshCount: env.GetInt("MAX_REFRESH_COUNT", 0),
		PageSize:        env.GetInt("PAGE_SIZE", 15),
		CacheCapacity:   env.GetInt("CACHE_CAPACITY", 10000),
		MetadataGateway: env.GetString("IPFS_GATEWAY", "https://ipfs.io"),
	})
	if err != nil {
		if db != nil {
			db.Close()
		}
		return nil, nil, err
	}

	return svc, db, nil
}
