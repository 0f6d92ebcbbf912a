package pgmigrations

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/ledgerscope/explorer/internal/core/repository/settings"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		return settings.CreateTables(ctx, db)
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewDropTable().Model((*settings.Setting)(nil)).IfExists().Exec(ctx)
		return err
	})
}
