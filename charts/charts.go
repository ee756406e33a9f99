package charts

import (
	"fmt"
	"html/template"
	"sort"

	echarts "github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/render"
	"github.com/tickerboard/tickerboard/constants"
	"github.com/tickerboard/tickerboard/quotes"
	"go.uber.org/zap"
)

// fixed chart ids keep rendering deterministic for identical input data
const (
	PriceChartID      = "price"
	ReturnsChartID    = "returns"
	RevenueChartID    = "revenue"
	CumulativeChartID = "cumulative"
)

const chartHeight = "460px"

// missing marks a hole in a category axis, echarts skips it
const missing = "-"

// Chart one renderable dashboard chart
type Chart struct {
	ID      string
	Title   string
	Element template.HTML
	Script  template.HTML
}

// Render produce the dashboard charts for a group in fixed order.
// Charts without any surviving series are omitted.
func Render(group, window string, data []quotes.TickerData) []*Chart {
	builders := []struct {
		id    string
		build func(string, string, []quotes.TickerData) (*Chart, error)
	}{
		{PriceChartID, PriceLine},
		{ReturnsChartID, ReturnsBox},
		{RevenueChartID, RevenueBar},
		{CumulativeChartID, CumulativeLine},
	}

	rendered := make([]*Chart, 0, len(builders))
	for _, builder := range builders {
		chart, err := builder.build(group, window, data)
		if err != nil {
			zap.L().Warn("chart omitted",
				zap.Error(err),
				zap.String("chart", builder.id),
				zap.String("group", group))
			continue
		}

		rendered = append(rendered, chart)
	}

	return rendered
}

// PriceLine close price over time, one trace per ticker
func PriceLine(group, window string, data []quotes.TickerData) (*Chart, error) {
	dates := dateAxis(data, func(td quotes.TickerData) []string { return td.Series.Dates() })
	if len(dates) == 0 {
		return nil, constants.ErrNoSeries
	}

	title := fmt.Sprintf("Price Trend Over Time (%s)", group)
	line := echarts.NewLine()
	line.SetGlobalOptions(
		echarts.WithInitializationOpts(opts.Initialization{ChartID: PriceChartID, Height: chartHeight}),
		echarts.WithTitleOpts(opts.Title{Title: title}),
		echarts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		echarts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	line.SetXAxis(dates)
	for _, td := range data {
		if len(td.Series) == 0 {
			continue
		}

		closes := td.Series.CloseByDate()
		values := make([]opts.LineData, len(dates))
		for index, date := range dates {
			if v, ok := closes[date]; ok {
				values[index] = opts.LineData{Value: v}
			} else {
				values[index] = opts.LineData{Value: missing}
			}
		}

		line.AddSeries(td.Symbol, values)
	}

	return newChart(PriceChartID, title, line.Renderer), nil
}

// ReturnsBox distribution of day over day percentage returns, one box per ticker
func ReturnsBox(group, window string, data []quotes.TickerData) (*Chart, error) {
	symbols := make([]string, 0, len(data))
	boxes := make([]opts.BoxPlotData, 0, len(data))
	for _, td := range data {
		returns := td.Series.DailyReturns()
		// a single price point cannot produce a return
		if len(returns) == 0 {
			continue
		}

		q := quotes.Quartiles(returns)
		symbols = append(symbols, td.Symbol)
		boxes = append(boxes, opts.BoxPlotData{Name: td.Symbol, Value: q[:]})
	}

	if len(boxes) == 0 {
		return nil, constants.ErrNoSeries
	}

	title := "Daily Returns Distribution"
	box := echarts.NewBoxPlot()
	box.SetGlobalOptions(
		echarts.WithInitializationOpts(opts.Initialization{ChartID: ReturnsChartID, Height: chartHeight}),
		echarts.WithTitleOpts(opts.Title{Title: title}),
		echarts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
	)

	box.SetXAxis(symbols).AddSeries("daily returns", boxes)

	return newChart(ReturnsChartID, title, box.Renderer), nil
}

// RevenueBar reported revenue per fiscal period, grouped by period
func RevenueBar(group, window string, data []quotes.TickerData) (*Chart, error) {
	periods := periodAxis(data)
	if len(periods) == 0 {
		return nil, constants.ErrNoSeries
	}

	title := "Total Revenue by Period"
	bar := echarts.NewBar()
	bar.SetGlobalOptions(
		echarts.WithInitializationOpts(opts.Initialization{ChartID: RevenueChartID, Height: chartHeight}),
		echarts.WithTitleOpts(opts.Title{Title: title}),
		echarts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		echarts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	bar.SetXAxis(periods)
	for _, td := range data {
		revenue := td.Financials.Revenue()
		if len(revenue) == 0 {
			continue
		}

		byPeriod := make(map[string]float64, len(revenue))
		for _, fv := range revenue {
			byPeriod[fv.Period] = fv.Value
		}

		values := make([]opts.BarData, len(periods))
		for index, period := range periods {
			if v, ok := byPeriod[period]; ok {
				values[index] = opts.BarData{Value: v}
			} else {
				values[index] = opts.BarData{Value: missing}
			}
		}

		bar.AddSeries(td.Symbol, values)
	}

	return newChart(RevenueChartID, title, bar.Renderer), nil
}

// CumulativeLine running product of (1 + daily change) - 1, starting at zero
func CumulativeLine(group, window string, data []quotes.TickerData) (*Chart, error) {
	qualified := make([]quotes.TickerData, 0, len(data))
	for _, td := range data {
		if len(td.Series.CumulativeReturns()) > 0 {
			qualified = append(qualified, td)
		}
	}

	dates := dateAxis(qualified, func(td quotes.TickerData) []string { return td.Series.Dates() })
	if len(dates) == 0 {
		return nil, constants.ErrNoSeries
	}

	title := fmt.Sprintf("Cumulative Return (%s)", window)
	line := echarts.NewLine()
	line.SetGlobalOptions(
		echarts.WithInitializationOpts(opts.Initialization{ChartID: CumulativeChartID, Height: chartHeight}),
		echarts.WithTitleOpts(opts.Title{Title: title}),
		echarts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		echarts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	line.SetXAxis(dates)
	for _, td := range qualified {
		byDate := cumulativeByDate(td.Series)
		values := make([]opts.LineData, len(dates))
		for index, date := range dates {
			if v, ok := byDate[date]; ok {
				values[index] = opts.LineData{Value: v}
			} else {
				values[index] = opts.LineData{Value: missing}
			}
		}

		line.AddSeries(td.Symbol, values)
	}

	return newChart(CumulativeChartID, title, line.Renderer), nil
}

// cumulativeByDate map bar dates to the cumulative return up to that date
func cumulativeByDate(series quotes.Series) map[string]float64 {
	byDate := make(map[string]float64, len(series))
	if len(series) < 2 {
		return byDate
	}

	cumulative := 0.0
	byDate[series[0].Date().Format(constants.DatePattern)] = 0
	for index := 1; index < len(series); index++ {
		previous := float64(series[index-1].Close)
		if previous == 0 {
			continue
		}

		r := (float64(series[index].Close) - previous) / previous
		cumulative = (1+cumulative)*(1+r) - 1
		byDate[series[index].Date().Format(constants.DatePattern)] = cumulative
	}

	return byDate
}

// dateAxis union of per ticker dates, ascending
func dateAxis(data []quotes.TickerData, dates func(quotes.TickerData) []string) []string {
	set := map[string]struct{}{}
	for _, td := range data {
		for _, date := range dates(td) {
			set[date] = struct{}{}
		}
	}

	axis := make([]string, 0, len(set))
	for date := range set {
		axis = append(axis, date)
	}
	sort.Strings(axis)

	return axis
}

// periodAxis union of reported fiscal periods, ascending
func periodAxis(data []quotes.TickerData) []string {
	set := map[string]struct{}{}
	for _, td := range data {
		for _, fv := range td.Financials.Revenue() {
			set[fv.Period] = struct{}{}
		}
	}

	axis := make([]string, 0, len(set))
	for period := range set {
		axis = append(axis, period)
	}
	sort.Strings(axis)

	return axis
}

func newChart(id, title string, renderer render.Renderer) *Chart {
	snippet := renderer.RenderSnippet()
	return &Chart{
		ID:      id,
		Title:   title,
		Element: template.HTML(snippet.Element),
		Script:  template.HTML(snippet.Script),
	}
}
