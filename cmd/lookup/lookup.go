package lookup

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/ledgerscope/explorer/cmd/setup"
	"github.com/ledgerscope/explorer/internal/app/explorer"
)

func printJSON(v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal")
	}
	fmt.Println(string(raw))
	return nil
}

func withService(f func(c *cli.Context, svc *explorer.Service, id string) (any, error)) cli.ActionFunc {
	return func(c *cli.Context) error {
		id := c.Args().First()
		if id == "" && c.Command.ArgsUsage != "" {
			return errors.Errorf("expected %s", c.Command.ArgsUsage)
		}

		svc, db, err := setup.Explorer(c.Context)
		if err != nil {
			return err
		}
		if db != nil {
			defer db.Close()
		}

		ret, err := f(c, svc, id)
		if err != nil {
			return err
		}
		return printJSON(ret)
	}
}

var Command = &cli.Command{
	Name:  "lookup",
	Usage: "Fetches an entity from the mirror node and prints it",

	Subcommands: []*cli.Command{
		{
			Name:      "account",
			Usage:     "Prints account",
			ArgsUsage: "<account id>",
			Action: withService(func(c *cli.Context, svc *explorer.Service, id string) (any, error) {
				return svc.GetAccount(c.Context, id)
			}),
		},
		{
			Name:      "contract",
			Usage:     "Prints contract",
			ArgsUsage: "<contract id>",
			Action: withService(func(c *cli.Context, svc *explorer.Service, id string) (any, error) {
				return svc.GetContract(c.Context, id)
			}),
		},
		{
			Name:      "token",
			Usage:     "Prints token",
			ArgsUsage: "<token id>",
			Action: withService(func(c *cli.Context, svc *explorer.Service, id string) (any, error) {
				return svc.GetToken(c.Context, id)
			}),
		},
		{
			Name:      "metadata",
			Usage:     "Prints token metadata",
			ArgsUsage: "<token id>",
			Action: withService(func(c *cli.Context, svc *explorer.Service, id string) (any, error) {
				return svc.GetTokenMetadata(c.Context, id)
			}),
		},
		{
			Name:      "tx",
			Usage:     "Prints transactions sharing the transaction id",
			ArgsUsage: "<transaction id>",
			Action: withService(func(c *cli.Context, svc *explorer.Service, id string) (any, error) {
				return svc.GetTransaction(c.Context, id)
			}),
		},
		{
			Name:  "nodes",
			Usage: "Prints network nodes",
			Action: withService(func(c *cli.Context, svc *explorer.Service, _ string) (any, error) {
				return svc.GetNetworkNodes(c.Context)
			}),
		},
	},
}
