package db

import (
	"context"
	"time"

	"github.com/allisson/go-env"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun/migrate"
	"github.com/urfave/cli/v2"

	"github.com/ledgerscope/explorer/internal/core/repository"
	"github.com/ledgerscope/explorer/migrations/pg"
)

func newMigrator() (*migrate.Migrator, error) {
	pgURL := env.GetString("DB_PG_URL", "")
	if pgURL == "" {
		return nil, errors.New("DB_PG_URL is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := repository.ConnectDB(ctx, pgURL)
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to a database")
	}

	return migrate.NewMigrator(db, pgmigrations.Migrations), nil
}

func unlock(ctx context.Context, m *migrate.Migrator) {
	if err := m.Unlock(ctx); err != nil {
		log.Error().Err(err).Msg("cannot unlock pg")
	}
}

var Command = &cli.Command{
	Name:  "migrate",
	Usage: "Migrates settings database",

	Subcommands: []*cli.Command{
		{
			Name:  "init",
			Usage: "Creates migration tables",
			Action: func(c *cli.Context) error {
				m, err := newMigrator()
				if err != nil {
					return err
				}
				return m.Init(c.Context)
			},
		},
		{
			Name:  "up",
			Usage: "Migrates database",
			Action: func(c *cli.Context) error {
				m, err := newMigrator()
				if err != nil {
					return err
				}

				if err := m.Lock(c.Context); err != nil {
					return err
				}
				defer unlock(c.Context, m)

				group, err := m.Migrate(c.Context)
				if err != nil {
					return err
				}
				if group.IsZero() {
					log.Info().Msg("there are no new migrations to run (database is up to date)")
					return nil
				}
				log.Info().Str("group", group.String()).Msg("migrated")

				return nil
			},
		},
		{
			Name:  "down",
			Usage: "Rollbacks the last migration group",
			Action: func(c *cli.Context) error {
				m, err := newMigrator()
				if err != nil {
					return err
				}

				if err := m.Lock(c.Context); err != nil {
					return err
				}
				defer unlock(c.Context, m)

				group, err := m.Rollback(c.Context)
				if err != nil {
					return err
				}
				if group.IsZero() {
					log.Info().Msg("there are no groups to roll back")
					return nil
				}
				log.Info().Str("group", group.String()).Msg("rolled back")

				return nil
			},
		},
		{
			Name:  "status",
			Usage: "Prints migrations status",
			Action: func(c *cli.Context) error {
				m, err := newMigrator()
				if err != nil {
					return err
				}

				ms, err := m.MigrationsWithStatus(c.Context)
				if err != nil {
					return err
				}
				log.Info().Str("slice", ms.String()).Msg("all")
				log.Info().Str("slice", ms.Unapplied().String()).Msg("unapplied")
				log.Info().Str("group", ms.LastGroup().String()).Msg("last migration")

				return nil
			},
		},
	},
}
