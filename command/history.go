package command

import (
	"fmt"
	"time"

	"github.com/tickerboard/tickerboard/constants"
	"github.com/tickerboard/tickerboard/journal"
	"github.com/urfave/cli/v2"
)

type History struct{}

func (h History) Command() *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "list recorded publish receipts",
		Flags: []cli.Flag{
			configFlag(),
		},
		Action: func(c *cli.Context) error {
			cfg, err := setup(c.String("config"))
			if err != nil {
				return err
			}

			j, err := journal.Open(cfg.Journal.Path)
			if err != nil {
				return err
			}
			defer j.Close()

			receipts, err := j.List()
			if err != nil {
				return err
			}

			for _, receipt := range receipts {
				outcome := "ok"
				if !receipt.Success {
					outcome = "failed"
				}

				fmt.Printf("%s %-6s %s (%s) -> %s charts=%d bytes=%d skipped=%d in %dms\n",
					time.Unix(0, receipt.FinishedAt).Format(constants.DatePattern+" 15:04:05"),
					outcome,
					receipt.Group,
					receipt.Window,
					receipt.Destination,
					receipt.Charts,
					receipt.Bytes,
					len(receipt.Skipped),
					receipt.ElapsedMS)
			}

			return nil
		},
	}
}
