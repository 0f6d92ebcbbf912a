package main

import (
	"fmt"
	"os"

	"github.com/allisson/go-env"
	"github.com/urfave/cli/v2"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ledgerscope/explorer/cmd/db"
	"github.com/ledgerscope/explorer/cmd/lookup"
	"github.com/ledgerscope/explorer/cmd/watch"
	"github.com/ledgerscope/explorer/cmd/web"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level := zerolog.InfoLevel
	if env.GetBool("DEBUG_LOGS", false) {
		level = zerolog.DebugLevel
	}

	// add file and line number to log
	log.Logger = log.With().Caller().Logger().Level(level)
}

func main() {
	app := &cli.App{
		Name:  "explorer",
		Usage: "a mirror node explorer backend",
		Commands: []*cli.Command{
			web.Command,
			watch.Command,
			lookup.Command,
			db.Command,
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
