package sources

import (
	"context"

	"github.com/tickerboard/tickerboard/quotes"
)

// Source define ticker history and fundamentals source
type Source interface {
	// PriceHistory fetch daily OHLCV bars of a symbol over a named history window
	PriceHistory(ctx context.Context, symbol, window string) (quotes.Series, error)
	// Financials fetch statement line items of a symbol over a named history window
	Financials(ctx context.Context, symbol, window string) (quotes.Financials, error)
}
