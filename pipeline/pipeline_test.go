package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tickerboard/tickerboard/constants"
	"github.com/tickerboard/tickerboard/destinations"
	"github.com/tickerboard/tickerboard/groups"
	"github.com/tickerboard/tickerboard/quotes"
)

type fakeSource struct {
	series     map[string]quotes.Series
	financials map[string]quotes.Financials
}

func (f fakeSource) PriceHistory(ctx context.Context, symbol, window string) (quotes.Series, error) {
	series, found := f.series[symbol]
	if !found {
		return nil, constants.ErrDataUnavailable
	}

	return series, nil
}

func (f fakeSource) Financials(ctx context.Context, symbol, window string) (quotes.Financials, error) {
	financials, found := f.financials[symbol]
	if !found {
		return nil, constants.ErrDataUnavailable
	}

	return financials, nil
}

type fakePublisher struct {
	document []byte
	err      error
	calls    int
}

func (f *fakePublisher) Publish(document []byte) error {
	f.calls++
	if f.err != nil {
		return f.err
	}

	f.document = document
	return nil
}

func (f *fakePublisher) Close() error { return nil }

func seriesOf(closes ...float32) quotes.Series {
	series := make(quotes.Series, len(closes))
	for index, c := range closes {
		series[index] = quotes.Bar{Timestamp: uint64(1700000000 + index*86400), Close: c}
	}

	return series
}

func TestPipeline_Run_SkipsFailedTicker(t *testing.T) {
	source := fakeSource{
		series: map[string]quotes.Series{
			"BBB": seriesOf(10, 11, 12),
		},
	}

	pub := &fakePublisher{}
	dest := destinations.LocalPath{Path: "/tmp/dashboard.html"}
	group := groups.Group{Name: "Pair", Tickers: []string{"AAA", "BBB"}}

	result, err := New(source, dest, pub).Run(context.Background(), group, "5y")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !result.Published {
		t.Fatal("run did not publish")
	}

	if len(result.Skipped) != 1 || result.Skipped[0] != "AAA" {
		t.Errorf("skipped mismatch, got %v, want [AAA]", result.Skipped)
	}

	html := string(pub.document)
	if !strings.Contains(html, "BBB") {
		t.Error("dashboard missing surviving ticker")
	}

	if strings.Contains(html, "AAA") {
		t.Error("dashboard contains skipped ticker")
	}
}

func TestPipeline_Run_AllTickersFailed(t *testing.T) {
	source := fakeSource{}
	pub := &fakePublisher{}
	dest := destinations.LocalPath{Path: "/tmp/dashboard.html"}
	group := groups.Group{Name: "Pair", Tickers: []string{"AAA", "BBB"}}

	result, err := New(source, dest, pub).Run(context.Background(), group, "5y")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Published {
		t.Error("run published with no ticker data")
	}

	if pub.calls != 0 {
		t.Errorf("publisher called %d times, want 0", pub.calls)
	}

	if len(result.Skipped) != 2 {
		t.Errorf("skipped mismatch, got %v", result.Skipped)
	}
}

func TestPipeline_Run_PublishFailureIsFatal(t *testing.T) {
	source := fakeSource{
		series: map[string]quotes.Series{
			"AAA": seriesOf(10, 11),
		},
	}

	pub := &fakePublisher{err: constants.ErrUpload}
	dest := destinations.S3Object{Bucket: "reports", Key: "pair.html"}
	group := groups.Group{Name: "Pair", Tickers: []string{"AAA"}}

	result, err := New(source, dest, pub).Run(context.Background(), group, "5y")
	if !errors.Is(err, constants.ErrUpload) {
		t.Fatalf("Run() error = %v, want %v", err, constants.ErrUpload)
	}

	if result.Published {
		t.Error("failed run reported as published")
	}
}

func TestPipeline_Run_MissingFinancialsStillCharts(t *testing.T) {
	source := fakeSource{
		series: map[string]quotes.Series{
			"AAA": seriesOf(10, 11, 12),
		},
		// no financials at all
	}

	pub := &fakePublisher{}
	dest := destinations.LocalPath{Path: "/tmp/dashboard.html"}
	group := groups.Group{Name: "Solo", Tickers: []string{"AAA"}}

	result, err := New(source, dest, pub).Run(context.Background(), group, "5y")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !result.Published {
		t.Fatal("run did not publish")
	}

	// price, returns and cumulative survive, revenue is omitted
	if result.Charts != 3 {
		t.Errorf("chart count = %d, want 3", result.Charts)
	}
}

func TestArtifactName(t *testing.T) {
	group := groups.Group{Name: "US Banks"}
	if got := ArtifactName(group, "5y"); got != "us_banks_dashboard_5y.html" {
		t.Errorf("ArtifactName() = %s, want us_banks_dashboard_5y.html", got)
	}
}
