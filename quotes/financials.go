package quotes

// statement line items fetched from the provider
const (
	QuarterlyRevenueItem = "quarterlyTotalRevenue"
	AnnualRevenueItem    = "annualTotalRevenue"
)

// FiscalValue one reported line item value
type FiscalValue struct {
	Period string
	Value  float64
}

// Financials statement line item name to period values, ascending by period
type Financials map[string][]FiscalValue

// Revenue return revenue per period, quarterly preferred, annual fallback
func (f Financials) Revenue() []FiscalValue {
	if len(f[QuarterlyRevenueItem]) > 0 {
		return f[QuarterlyRevenueItem]
	}

	return f[AnnualRevenueItem]
}

// IsEmpty report whether no line item carries values
func (f Financials) IsEmpty() bool {
	for _, values := range f {
		if len(values) > 0 {
			return false
		}
	}

	return true
}
