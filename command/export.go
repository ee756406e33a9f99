package command

import (
	"errors"
	"fmt"

	"github.com/tickerboard/tickerboard/constants"
	"github.com/tickerboard/tickerboard/export"
	"github.com/tickerboard/tickerboard/groups"
	"github.com/tickerboard/tickerboard/quotes"
	"github.com/tickerboard/tickerboard/sources"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

type ExportWorkbook struct{}

func (e ExportWorkbook) Command() *cli.Command {
	return &cli.Command{
		Name:    "export",
		Aliases: []string{"e"},
		Usage:   "export fetched group data as an excel workbook",
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:    "group",
				Aliases: []string{"g"},
				Usage:   "ticker group name",
			},
			&cli.StringFlag{
				Name:    "range",
				Aliases: []string{"r"},
				Usage:   "date range: eg 1y 5y max",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "workbook file path",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := setup(c.String("config"))
			if err != nil {
				return err
			}

			name := cfg.Group
			if c.String("group") != "" {
				name = c.String("group")
			}

			window := cfg.Range
			if c.String("range") != "" {
				window = c.String("range")
			}
			if !constants.ValidRange(window) {
				return cli.Exit("range invalid: "+window, 1)
			}

			group, err := groups.Resolve(name)
			if err != nil {
				zap.L().Error("resolve group failed", zap.Error(err), zap.String("group", name))
				return err
			}

			data, err := e.fetch(c, group, window)
			if err != nil {
				return err
			}

			file, err := export.Workbook(group, data)
			if err != nil {
				return err
			}

			output := c.String("output")
			if output == "" {
				output = fmt.Sprintf("%s_data_%s.xlsx", group.Slug(), window)
			}

			err = file.SaveAs(output)
			if err != nil {
				zap.L().Error("save workbook failed", zap.Error(err), zap.String("output", output))
				return err
			}

			zap.L().Info("export workbook success",
				zap.String("group", group.Name),
				zap.String("output", output))

			return nil
		},
	}
}

func (e ExportWorkbook) fetch(c *cli.Context, group groups.Group, window string) ([]quotes.TickerData, error) {
	source := sources.NewYahooFinance()

	data := make([]quotes.TickerData, 0, len(group.Tickers))
	for _, symbol := range group.Tickers {
		series, err := source.PriceHistory(c.Context, symbol, window)
		if err != nil {
			if errors.Is(err, constants.ErrDataUnavailable) {
				zap.L().Warn("ticker skipped", zap.Error(err), zap.String("symbol", symbol))
				continue
			}

			zap.L().Error("fetch price history failed", zap.Error(err), zap.String("symbol", symbol))
			return nil, err
		}

		financials, err := source.Financials(c.Context, symbol, window)
		if err != nil {
			financials = quotes.Financials{}
		}

		data = append(data, quotes.TickerData{Symbol: symbol, Series: series, Financials: financials})
	}

	return data, nil
}
