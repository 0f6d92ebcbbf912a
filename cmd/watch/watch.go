package watch

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/allisson/go-env"
	"github.com/urfave/cli/v2"

	"github.com/rs/zerolog/log"

	"github.com/ledgerscope/explorer/cmd/setup"
	"github.com/ledgerscope/explorer/internal/app/explorer"
	"github.com/ledgerscope/explorer/internal/app/table"
	"github.com/ledgerscope/explorer/internal/core"
	"github.com/ledgerscope/explorer/lru"
)

// seenLimit bounds the set of logged transaction timestamps.
const seenLimit = 1024

// tail remembers logged transactions, forgetting the least recently shown ones first.
type tail struct {
	seen *lru.Cache[string, struct{}]
}

func newTail(limit int) *tail {
	return &tail{seen: lru.New[string, struct{}](limit)}
}

// fresh returns rows not returned before, oldest first.
// rows are in descending order, as the table shows them.
func (t *tail) fresh(rows []*core.Transaction) []*core.Transaction {
	var ret []*core.Transaction
	for i := len(rows) - 1; i >= 0; i-- {
		tx := rows[i]
		if _, ok := t.seen.Get(tx.ConsensusTimestamp); ok {
			continue
		}
		t.seen.Put(tx.ConsensusTimestamp, struct{}{})
		ret = append(ret, tx)
	}
	return ret
}

var Command = &cli.Command{
	Name:  "watch",
	Usage: "Tails latest transactions",

	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "account",
			Usage: "only transactions involving the account",
		},
		&cli.StringFlag{
			Name:  "type",
			Usage: "transaction type, e.g. CRYPTOTRANSFER",
		},
		&cli.StringFlag{
			Name:  "result",
			Usage: "success or fail",
		},
	},

	Action: func(ctx *cli.Context) error {
		m, err := setup.Mirror()
		if err != nil {
			return err
		}
		s, db, err := setup.Settings(ctx.Context)
		if err != nil {
			return err
		}
		if db != nil {
			defer db.Close()
		}

		c := table.New[*core.Transaction, string](&explorer.TransactionTable{
			Mirror:          m,
			AccountID:       ctx.String("account"),
			TransactionType: ctx.String("type"),
			Result:          ctx.String("result"),
		}, nil, &table.Config{
			TableID:        "watch-transactions",
			PageSize:       env.GetInt("PAGE_SIZE", table.DefaultPageSize),
			UpdatePeriod:   time.Duration(env.GetInt("REFRESH_PERIOD_MS", 5000)) * time.Millisecond,
			MaxUpdateCount: env.GetInt("MAX_REFRESH_COUNT", 0),
			Settings:       s,
		})

		var once sync.Once
		done := make(chan struct{})
		seen := newTail(seenLimit)

		cancelRows := c.Rows().Subscribe(func(rows []*core.Transaction) {
			for _, tx := range seen.fresh(rows) {
				log.Info().
					Str("timestamp", tx.ConsensusTimestamp).
					Str("id", tx.TransactionID).
					Str("name", tx.Name).
					Str("result", tx.Result).
					Msg("transaction")
			}
		})
		defer cancelRows()

		cancelErr := c.Error().Subscribe(func(err error) {
			if err != nil {
				log.Error().Err(err).Msg("load transactions")
			}
		})
		defer cancelErr()

		cancelStopped := c.AutoStopped().Subscribe(func(stopped bool) {
			if stopped {
				log.Info().Msg("refresh count limit reached")
				once.Do(func() { close(done) })
			}
		})
		defer cancelStopped()

		c.Mount(ctx.Context)
		defer c.Unmount()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

		select {
		case <-sig:
		case <-done:
		}

		return nil
	},
}
