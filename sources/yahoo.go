package sources

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/tickerboard/tickerboard/constants"
	"github.com/tickerboard/tickerboard/quotes"
	"github.com/tickerboard/tickerboard/utils"
	"go.uber.org/zap"
)

// yahooNotFoundCode define error code raised by yahoo finance on unknown symbols
const yahooNotFoundCode = "Not Found"

// YahooFinance yahoo finance source
type YahooFinance struct {
	chartURL        string
	fundamentalsURL string
}

// NewYahooFinance create yahoo finance source
func NewYahooFinance() *YahooFinance {
	return &YahooFinance{
		chartURL:        "https://query1.finance.yahoo.com/v8/finance/chart",
		fundamentalsURL: "https://query1.finance.yahoo.com/ws/fundamentals-timeseries/v1/finance/timeseries",
	}
}

// PriceHistory fetch daily bars of a symbol over a named history window
func (yahoo YahooFinance) PriceHistory(ctx context.Context, symbol, window string) (quotes.Series, error) {
	pattern := "%s/%s?interval=1d&range=%s&events=div%%7Csplit&corsDomain=finance.yahoo.com"
	address := fmt.Sprintf(pattern, yahoo.chartURL, url.PathEscape(symbol), window)

	chart, err := httpGet[yahooChart](ctx, address)
	if err != nil {
		zap.L().Warn("download yahoo finance chart failed",
			zap.Error(err),
			zap.String("symbol", symbol),
			zap.String("window", window))
		return nil, err
	}

	err = chart.Validate()
	if err != nil {
		if errors.Is(err, constants.ErrDataUnavailable) {
			zap.L().Info("yahoo finance has no data for symbol",
				zap.String("symbol", symbol),
				zap.String("window", window))
			return nil, err
		}

		zap.L().Error("yahoo chart validate failed",
			zap.Error(err),
			zap.String("symbol", symbol),
			zap.String("window", window))
		return nil, err
	}

	series := chart.ToSeries()
	if len(series) == 0 {
		return nil, constants.ErrDataUnavailable
	}

	return series, nil
}

// Financials fetch quarterly and annual total revenue of a symbol
func (yahoo YahooFinance) Financials(ctx context.Context, symbol, window string) (quotes.Financials, error) {
	now := time.Now()
	items := strings.Join([]string{quotes.QuarterlyRevenueItem, quotes.AnnualRevenueItem}, ",")
	pattern := "%s/%s?symbol=%s&type=%s&period1=%d&period2=%d"
	address := fmt.Sprintf(pattern,
		yahoo.fundamentalsURL,
		url.PathEscape(symbol),
		url.QueryEscape(symbol),
		items,
		utils.RangeStart(window, now).Unix(),
		now.Unix())

	timeseries, err := httpGet[yahooFundamentals](ctx, address)
	if err != nil {
		zap.L().Warn("download yahoo finance fundamentals failed",
			zap.Error(err),
			zap.String("symbol", symbol),
			zap.String("window", window))
		return nil, err
	}

	return timeseries.ToFinancials(), nil
}

// yahooChart define yahoo finance chart api response structure
type yahooChart struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency       string `json:"currency"`
				Symbol         string `json:"symbol"`
				ExchangeName   string `json:"exchangeName"`
				InstrumentType string `json:"instrumentType"`
				FirstTradeDate int64  `json:"firstTradeDate"`
				Timezone       string `json:"timezone"`
			} `json:"meta"`
			Timestamp  []uint64 `json:"timestamp"`
			Indicators struct {
				Quotes []struct {
					Open   []float32 `json:"open"`
					Close  []float32 `json:"close"`
					High   []float32 `json:"high"`
					Low    []float32 `json:"low"`
					Volume []uint64  `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Err *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// Validate validate response is valid
func (q yahooChart) Validate() error {
	if q.Chart.Err != nil {
		if q.Chart.Err.Code == yahooNotFoundCode {
			return constants.ErrDataUnavailable
		}
		return errors.New(q.Chart.Err.Description)
	}

	if len(q.Chart.Result) == 0 {
		return constants.ErrDataUnavailable
	}

	if len(q.Chart.Result[0].Indicators.Quotes) == 0 {
		return constants.ErrDataUnavailable
	}

	result, quote := q.Chart.Result[0], q.Chart.Result[0].Indicators.Quotes[0]

	if len(result.Timestamp) != len(quote.Open) ||
		len(result.Timestamp) != len(quote.Close) ||
		len(result.Timestamp) != len(quote.High) ||
		len(result.Timestamp) != len(quote.Low) ||
		len(result.Timestamp) != len(quote.Volume) {
		return errors.New("quotes count mismatch")
	}

	return nil
}

// ToSeries convert yahoo finance response to a daily series
func (q yahooChart) ToSeries() quotes.Series {
	result := q.Chart.Result[0]
	quote := result.Indicators.Quotes[0]

	series := make(quotes.Series, 0, len(result.Timestamp))
	for index, ts := range result.Timestamp {
		// ignore all zero bars
		if quote.Open[index] == 0 && quote.Close[index] == 0 && quote.High[index] == 0 && quote.Low[index] == 0 && quote.Volume[index] == 0 {
			continue
		}

		series = append(series, quotes.Bar{
			Timestamp: ts,
			Open:      quote.Open[index],
			Close:     quote.Close[index],
			High:      quote.High[index],
			Low:       quote.Low[index],
			Volume:    quote.Volume[index],
		})
	}

	return series
}

// yahooFundamentals define yahoo finance fundamentals timeseries response structure
type yahooFundamentals struct {
	Timeseries struct {
		Result []struct {
			Meta struct {
				Symbol []string `json:"symbol"`
				Type   []string `json:"type"`
			} `json:"meta"`
			Timestamp             []int64           `json:"timestamp"`
			QuarterlyTotalRevenue []*yahooLineValue `json:"quarterlyTotalRevenue"`
			AnnualTotalRevenue    []*yahooLineValue `json:"annualTotalRevenue"`
		} `json:"result"`
		Err *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"timeseries"`
}

type yahooLineValue struct {
	AsOfDate      string `json:"asOfDate"`
	PeriodType    string `json:"periodType"`
	ReportedValue struct {
		Raw float64 `json:"raw"`
		Fmt string  `json:"fmt"`
	} `json:"reportedValue"`
}

// ToFinancials convert yahoo fundamentals response to statement line items
func (f yahooFundamentals) ToFinancials() quotes.Financials {
	financials := quotes.Financials{}
	for _, result := range f.Timeseries.Result {
		if len(result.QuarterlyTotalRevenue) > 0 {
			financials[quotes.QuarterlyRevenueItem] = toFiscalValues(result.QuarterlyTotalRevenue)
		}

		if len(result.AnnualTotalRevenue) > 0 {
			financials[quotes.AnnualRevenueItem] = toFiscalValues(result.AnnualTotalRevenue)
		}
	}

	return financials
}

func toFiscalValues(values []*yahooLineValue) []quotes.FiscalValue {
	fiscal := make([]quotes.FiscalValue, 0, len(values))
	for _, value := range values {
		// provider pads missing periods with null
		if value == nil {
			continue
		}

		fiscal = append(fiscal, quotes.FiscalValue{
			Period: value.AsOfDate,
			Value:  value.ReportedValue.Raw,
		})
	}

	return fiscal
}
