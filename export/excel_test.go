package export

import (
	"errors"
	"testing"

	"github.com/tickerboard/tickerboard/constants"
	"github.com/tickerboard/tickerboard/groups"
	"github.com/tickerboard/tickerboard/quotes"
)

func TestWorkbook(t *testing.T) {
	group := groups.Group{Name: "Pair", Tickers: []string{"AAA", "BBB"}}
	data := []quotes.TickerData{
		{
			Symbol: "AAA",
			Series: quotes.Series{
				{Timestamp: 1700000000, Open: 99, High: 102, Low: 98, Close: 100, Volume: 1000},
				{Timestamp: 1700086400, Open: 100, High: 111, Low: 100, Close: 110, Volume: 1100},
			},
			Financials: quotes.Financials{
				quotes.QuarterlyRevenueItem: {{Period: "2023-09-30", Value: 1234}},
			},
		},
		{
			Symbol: "BBB",
			Series: quotes.Series{{Timestamp: 1700000000, Close: 50}},
		},
	}

	file, err := Workbook(group, data)
	if err != nil {
		t.Fatalf("Workbook() error = %v", err)
	}

	if got := file.GetCellValue("AAA", "A1"); got != "Date" {
		t.Errorf("header cell = %s, want Date", got)
	}

	if got := file.GetCellValue("AAA", "E2"); got != "100" {
		t.Errorf("close cell = %s, want 100", got)
	}

	if got := file.GetCellValue("BBB", "E2"); got != "50" {
		t.Errorf("close cell = %s, want 50", got)
	}

	if got := file.GetCellValue(revenueSheet, "A2"); got != "AAA" {
		t.Errorf("revenue ticker cell = %s, want AAA", got)
	}

	if got := file.GetCellValue(revenueSheet, "B2"); got != "2023-09-30" {
		t.Errorf("revenue period cell = %s, want 2023-09-30", got)
	}
}

func TestWorkbook_NoData(t *testing.T) {
	group := groups.Group{Name: "Empty"}

	_, err := Workbook(group, nil)
	if !errors.Is(err, constants.ErrNoSeries) {
		t.Errorf("Workbook() error = %v, want %v", err, constants.ErrNoSeries)
	}
}
