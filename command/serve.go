package command

import (
	"github.com/tickerboard/tickerboard/server"
	"github.com/tickerboard/tickerboard/sources"
	"github.com/urfave/cli/v2"
)

type Serve struct{}

func (s Serve) Command() *cli.Command {
	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "serve live dashboards over http",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:    "address",
				Aliases: []string{"l"},
				Value:   ":21000",
				Usage:   "listen address",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := setup(c.String("config"))
			if err != nil {
				return err
			}

			return server.NewServer(sources.NewYahooFinance(), cfg).Run(c.String("address"))
		},
	}
}
