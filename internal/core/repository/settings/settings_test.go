package settings_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/allisson/go-env"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/ledgerscope/explorer/internal/core/repository"
	"github.com/ledgerscope/explorer/internal/core/repository/settings"
)

func testSettings(t *testing.T, s repository.Settings) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	t.Run("missing", func(t *testing.T) {
		_, ok, err := s.GetPageSize(ctx, "BlockTable")
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("set and overwrite", func(t *testing.T) {
		require.NoError(t, s.SetPageSize(ctx, "BlockTable", 15))
		require.NoError(t, s.SetPageSize(ctx, "block_table", 25))

		size, ok, err := s.GetPageSize(ctx, "blockTable")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, 25, size)
	})
}

func TestMemory(t *testing.T) {
	testSettings(t, settings.NewMemory())
}

func TestRepository(t *testing.T) {
	dsnPG := env.GetString("DB_PG_URL", "")
	if dsnPG == "" {
		t.Skip("DB_PG_URL is not set")
	}

	pg := bun.NewDB(sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsnPG))), pgdialect.New())
	require.NoError(t, pg.Ping())
	defer pg.Close()

	ctx := context.Background()

	_, err := pg.NewDropTable().Model((*settings.Setting)(nil)).IfExists().Exec(ctx)
	require.NoError(t, err)
	require.NoError(t, settings.CreateTables(ctx, pg))

	testSettings(t, settings.NewRepository(pg))
}

func TestSettingKey(t *testing.T) {
	require.Equal(t, "page_size.account_transactions", repository.SettingKey("AccountTransactions"))
	require.Equal(t, repository.SettingKey("AccountTransactions"), repository.SettingKey("account-transactions"))
}
