package main

import (
	"log"
	"os"

	"github.com/tickerboard/tickerboard/command"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:     "tickerboard",
		Usage:    "render interactive financial dashboards for ticker groups",
		Commands: []*cli.Command{},
	}

	for _, command := range command.Commands {
		app.Commands = append(app.Commands, command.Command())
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
