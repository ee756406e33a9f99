package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tickerboard/tickerboard/charts"
	"github.com/tickerboard/tickerboard/dashboard"
	"github.com/tickerboard/tickerboard/destinations"
	"github.com/tickerboard/tickerboard/groups"
	"github.com/tickerboard/tickerboard/journal"
	"github.com/tickerboard/tickerboard/notifiers"
	"github.com/tickerboard/tickerboard/quotes"
	"github.com/tickerboard/tickerboard/sources"
	"go.uber.org/zap"
)

// Pipeline runs one group through resolve, fetch, render, assemble and publish
type Pipeline struct {
	source   sources.Source
	dest     destinations.Destination
	pub      destinations.Publisher
	journal  *journal.Journal
	notifier notifiers.Notifier
}

// Option configure optional pipeline collaborators
type Option func(*Pipeline)

// WithJournal record publish receipts
func WithJournal(j *journal.Journal) Option {
	return func(p *Pipeline) { p.journal = j }
}

// WithNotifier send publish notifications
func WithNotifier(n notifiers.Notifier) Option {
	return func(p *Pipeline) { p.notifier = n }
}

// New create a pipeline
func New(source sources.Source, dest destinations.Destination, pub destinations.Publisher, options ...Option) *Pipeline {
	p := &Pipeline{
		source: source,
		dest:   dest,
		pub:    pub,
	}

	for _, option := range options {
		option(p)
	}

	return p
}

// Result outcome of one pipeline run
type Result struct {
	RunID     string
	Group     string
	Window    string
	Charts    int
	Skipped   []string
	Bytes     int
	Published bool
	Elapsed   time.Duration
}

// ArtifactName default artifact name of a group dashboard
func ArtifactName(group groups.Group, window string) string {
	return fmt.Sprintf("%s_dashboard_%s.html", group.Slug(), window)
}

// Run execute the pipeline once, strictly sequential and ordering preserving.
// Per ticker fetch failures are logged and skipped, publish failures abort the run.
func (p *Pipeline) Run(ctx context.Context, group groups.Group, window string) (*Result, error) {
	start := time.Now()
	result := &Result{
		RunID:  uuid.NewString(),
		Group:  group.Name,
		Window: window,
	}

	zap.L().Info("dashboard run start",
		zap.String("run_id", result.RunID),
		zap.String("group", group.Name),
		zap.String("window", window),
		zap.Strings("tickers", group.Tickers),
		zap.String("destination", p.dest.String()))

	data := p.fetch(ctx, group, window, result)
	if len(data) == 0 {
		result.Elapsed = time.Since(start)
		zap.L().Warn("no ticker data fetched, publish skipped",
			zap.String("run_id", result.RunID),
			zap.String("group", group.Name),
			zap.Strings("skipped", result.Skipped))
		p.report(result, nil)
		return result, nil
	}

	rendered := charts.Render(group.Name, window, data)
	result.Charts = len(rendered)

	document, err := dashboard.Assemble(group.Name, window, rendered)
	if err != nil {
		result.Elapsed = time.Since(start)
		p.report(result, err)
		return result, err
	}

	err = p.pub.Publish(document)
	result.Elapsed = time.Since(start)
	if err != nil {
		zap.L().Error("dashboard publish failed",
			zap.Error(err),
			zap.String("run_id", result.RunID),
			zap.String("group", group.Name),
			zap.String("destination", p.dest.String()))
		p.report(result, err)
		return result, err
	}

	result.Bytes = len(document)
	result.Published = true

	zap.L().Info("dashboard run success",
		zap.String("run_id", result.RunID),
		zap.String("group", group.Name),
		zap.String("destination", p.dest.String()),
		zap.Int("charts", result.Charts),
		zap.Int("bytes", result.Bytes),
		zap.Strings("skipped", result.Skipped),
		zap.Duration("elapsed", result.Elapsed))

	p.report(result, nil)

	return result, nil
}

// fetch collect ticker data in group order, skipping unavailable tickers
func (p *Pipeline) fetch(ctx context.Context, group groups.Group, window string, result *Result) []quotes.TickerData {
	data := make([]quotes.TickerData, 0, len(group.Tickers))
	for _, symbol := range group.Tickers {
		series, err := p.source.PriceHistory(ctx, symbol, window)
		if err != nil {
			zap.L().Warn("ticker skipped",
				zap.Error(err),
				zap.String("run_id", result.RunID),
				zap.String("symbol", symbol))
			result.Skipped = append(result.Skipped, symbol)
			continue
		}

		financials, err := p.source.Financials(ctx, symbol, window)
		if err != nil {
			// revenue is optional, the ticker still charts prices
			zap.L().Warn("ticker financials unavailable",
				zap.Error(err),
				zap.String("run_id", result.RunID),
				zap.String("symbol", symbol))
			financials = quotes.Financials{}
		}

		data = append(data, quotes.TickerData{
			Symbol:     symbol,
			Series:     series,
			Financials: financials,
		})
	}

	return data
}

// report record the receipt and send the publish notification when configured
func (p *Pipeline) report(result *Result, runErr error) {
	if p.journal != nil {
		err := p.journal.Record(&journal.Receipt{
			RunID:       result.RunID,
			Group:       result.Group,
			Window:      result.Window,
			Destination: p.dest.String(),
			Bytes:       result.Bytes,
			Charts:      result.Charts,
			Skipped:     result.Skipped,
			Success:     runErr == nil,
			FinishedAt:  time.Now().UnixNano(),
			ElapsedMS:   result.Elapsed.Milliseconds(),
		})
		if err != nil {
			zap.L().Warn("record receipt failed",
				zap.Error(err),
				zap.String("run_id", result.RunID))
		}
	}

	if p.notifier != nil {
		p.notifier.Notify(&notifiers.PublishResult{
			RunID:       result.RunID,
			Group:       result.Group,
			Destination: p.dest.String(),
			Bytes:       result.Bytes,
			Charts:      result.Charts,
			Skipped:     result.Skipped,
			Success:     runErr == nil,
			ElapsedMS:   result.Elapsed.Milliseconds(),
		})
	}
}
