package quotes

import (
	"time"

	"github.com/tickerboard/tickerboard/constants"
)

// Bar one daily OHLCV record
type Bar struct {
	Timestamp uint64
	Open      float32
	Close     float32
	High      float32
	Low       float32
	Volume    uint64
}

// Date return the bar date in UTC
func (b Bar) Date() time.Time {
	return time.Unix(int64(b.Timestamp), 0).UTC()
}

// Series ordered daily bars of one ticker, ascending by date
type Series []Bar

// Dates return formatted bar dates in series order
func (s Series) Dates() []string {
	dates := make([]string, len(s))
	for index, bar := range s {
		dates[index] = bar.Date().Format(constants.DatePattern)
	}

	return dates
}

// Closes return close prices in series order
func (s Series) Closes() []float64 {
	closes := make([]float64, len(s))
	for index, bar := range s {
		closes[index] = float64(bar.Close)
	}

	return closes
}

// CloseByDate return a date to close price lookup
func (s Series) CloseByDate() map[string]float64 {
	closes := make(map[string]float64, len(s))
	for _, bar := range s {
		closes[bar.Date().Format(constants.DatePattern)] = float64(bar.Close)
	}

	return closes
}

// TickerData fetched data of one ticker
type TickerData struct {
	Symbol     string
	Series     Series
	Financials Financials
}
