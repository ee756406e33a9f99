package command

import (
	"github.com/tickerboard/tickerboard/config"
	"github.com/tickerboard/tickerboard/constants"
	"github.com/tickerboard/tickerboard/destinations"
	"github.com/tickerboard/tickerboard/groups"
	"github.com/tickerboard/tickerboard/journal"
	"github.com/tickerboard/tickerboard/notifiers"
	"github.com/tickerboard/tickerboard/pipeline"
	"github.com/tickerboard/tickerboard/sources"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

type RenderDashboard struct{}

func (r RenderDashboard) Command() *cli.Command {
	return &cli.Command{
		Name:    "render",
		Aliases: []string{"r"},
		Usage:   "render a group dashboard and publish it to the configured destination",
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
			&cli.BoolFlag{
				Name:    "all",
				Aliases: []string{"a"},
				Usage:   "render every registered group",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := setup(c.String("config"))
			if err != nil {
				return err
			}

			window := cfg.Range
			if c.String("range") != "" {
				window = c.String("range")
			}
			if !constants.ValidRange(window) {
				return cli.Exit("range invalid: "+window, 1)
			}

			targets, err := r.targets(c, cfg)
			if err != nil {
				return err
			}

			var options []pipeline.Option

			if cfg.Journal.Enabled {
				j, err := journal.Open(cfg.Journal.Path)
				if err != nil {
					return err
				}
				defer j.Close()

				options = append(options, pipeline.WithJournal(j))
			}

			if cfg.Nsq.Broker != "" {
				notifier, err := notifiers.NewNsq(cfg.Nsq.Broker, cfg.Nsq.TLSCert, cfg.Nsq.TLSKey, cfg.Nsq.Topic)
				if err != nil {
					return err
				}
				defer notifier.Close()

				options = append(options, pipeline.WithNotifier(notifier))
			}

			source := sources.NewYahooFinance()
			for _, group := range targets {
				err = r.renderGroup(c, cfg, source, group, window, options)
				if err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func (r RenderDashboard) targets(c *cli.Context, cfg *config.Config) ([]groups.Group, error) {
	if c.Bool("all") {
		return groups.All(), nil
	}

	name := cfg.Group
	if c.String("group") != "" {
		name = c.String("group")
	}

	group, err := groups.Resolve(name)
	if err != nil {
		zap.L().Error("resolve group failed", zap.Error(err), zap.String("group", name))
		return nil, err
	}

	return []groups.Group{group}, nil
}

func (r RenderDashboard) renderGroup(c *cli.Context, cfg *config.Config, source sources.Source, group groups.Group, window string, options []pipeline.Option) error {
	dest := destination(cfg, group, window)

	pub, err := destinations.NewPublisher(dest)
	if err != nil {
		zap.L().Error("create publisher failed",
			zap.Error(err),
			zap.String("group", group.Name),
			zap.String("destination", dest.String()))
		return err
	}
	defer pub.Close()

	_, err = pipeline.New(source, dest, pub, options...).Run(c.Context, group, window)
	return err
}
