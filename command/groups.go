package command

import (
	"fmt"
	"strings"

	"github.com/tickerboard/tickerboard/groups"
	"github.com/urfave/cli/v2"
)

type ListGroups struct{}

func (l ListGroups) Command() *cli.Command {
	return &cli.Command{
		Name:    "groups",
		Aliases: []string{"g"},
		Usage:   "list registered ticker groups",
		Flags: []cli.Flag{
			configFlag(),
		},
		Action: func(c *cli.Context) error {
			_, err := setup(c.String("config"))
			if err != nil {
				return err
			}

			for _, group := range groups.All() {
				fmt.Printf("%s: %s\n", group.Name, strings.Join(group.Tickers, ","))
			}

			return nil
		},
	}
}
