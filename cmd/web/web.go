package web

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/allisson/go-env"
	"github.com/urfave/cli/v2"

	"github.com/ledgerscope/explorer/cmd/setup"
	"github.com/ledgerscope/explorer/internal/api/http"
)

var Command = &cli.Command{
	Name:  "web",
	Usage: "HTTP JSON API",

	Action: func(ctx *cli.Context) error {
		svc, db, err := setup.Explorer(ctx.Context)
		if err != nil {
			return err
		}

		svc.Start()

		srv := http.NewServer(
			env.GetString("LISTEN", "0.0.0.0:80"),
		)
		srv.RegisterRoutes(http.NewController(svc))

		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-c
			svc.Stop()
			if db != nil {
				db.Close()
			}
			os.Exit(0)
		}()

		if err = srv.Run(); err != nil {
			return err
		}

		return nil
	},
}
