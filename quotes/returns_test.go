package quotes

import (
	"math"
	"testing"
)

func TestSeries_DailyReturns(t *testing.T) {
	series := Series{
		{Timestamp: 1, Close: 100},
		{Timestamp: 2, Close: 110},
		{Timestamp: 3, Close: 99},
	}

	want := []float64{0.1, -0.1}

	returns := series.DailyReturns()
	if len(returns) != len(want) {
		t.Fatalf("returns length mismatch, got %d, want %d", len(returns), len(want))
	}

	for index, r := range returns {
		if math.Abs(r-want[index]) >= 0.0001 {
			t.Errorf("returns[%d] not equal, got %f, want %f", index, r, want[index])
		}
	}
}

func TestSeries_DailyReturns_TooShort(t *testing.T) {
	tests := []struct {
		name   string
		series Series
	}{
		{"empty", Series{}},
		{"single bar", Series{{Timestamp: 1, Close: 100}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.series.DailyReturns(); len(got) != 0 {
				t.Errorf("returns not empty, got %v", got)
			}

			if got := tt.series.CumulativeReturns(); len(got) != 0 {
				t.Errorf("cumulative returns not empty, got %v", got)
			}
		})
	}
}

func TestSeries_DailyReturns_ZeroClose(t *testing.T) {
	series := Series{
		{Timestamp: 1, Close: 0},
		{Timestamp: 2, Close: 100},
		{Timestamp: 3, Close: 110},
	}

	returns := series.DailyReturns()
	if len(returns) != 1 {
		t.Fatalf("returns length mismatch, got %d, want 1", len(returns))
	}

	if math.Abs(returns[0]-0.1) >= 0.0001 {
		t.Errorf("returns[0] not equal, got %f, want 0.1", returns[0])
	}
}

func TestSeries_CumulativeReturns(t *testing.T) {
	series := Series{
		{Timestamp: 1, Close: 100},
		{Timestamp: 2, Close: 110},
		{Timestamp: 3, Close: 99},
		{Timestamp: 4, Close: 118.8},
	}

	// starts at zero on the first date
	want := []float64{0, 0.1, -0.01, 0.188}

	cumulative := series.CumulativeReturns()
	if len(cumulative) != len(want) {
		t.Fatalf("cumulative length mismatch, got %d, want %d", len(cumulative), len(want))
	}

	for index, c := range cumulative {
		if math.Abs(c-want[index]) >= 0.0001 {
			t.Errorf("cumulative[%d] not equal, got %f, want %f", index, c, want[index])
		}
	}
}

func TestQuartiles(t *testing.T) {
	values := []float64{5, 1, 3, 2, 4}

	want := [5]float64{1, 2, 3, 4, 5}

	got := Quartiles(values)
	for index := range want {
		if math.Abs(got[index]-want[index]) >= 0.0001 {
			t.Errorf("quartiles[%d] not equal, got %f, want %f", index, got[index], want[index])
		}
	}
}

func TestQuartiles_Interpolated(t *testing.T) {
	values := []float64{1, 2, 3, 4}

	got := Quartiles(values)
	if math.Abs(got[1]-1.75) >= 0.0001 {
		t.Errorf("first quartile not equal, got %f, want 1.75", got[1])
	}

	if math.Abs(got[2]-2.5) >= 0.0001 {
		t.Errorf("median not equal, got %f, want 2.5", got[2])
	}

	if math.Abs(got[3]-3.25) >= 0.0001 {
		t.Errorf("third quartile not equal, got %f, want 3.25", got[3])
	}
}

func TestFinancials_Revenue(t *testing.T) {
	quarterly := Financials{
		QuarterlyRevenueItem: {{Period: "2023-03-31", Value: 10}},
		AnnualRevenueItem:    {{Period: "2022-12-31", Value: 40}},
	}
	if got := quarterly.Revenue(); len(got) != 1 || got[0].Value != 10 {
		t.Errorf("quarterly revenue not preferred, got %v", got)
	}

	annualOnly := Financials{
		AnnualRevenueItem: {{Period: "2022-12-31", Value: 40}},
	}
	if got := annualOnly.Revenue(); len(got) != 1 || got[0].Value != 40 {
		t.Errorf("annual fallback not used, got %v", got)
	}

	empty := Financials{}
	if got := empty.Revenue(); len(got) != 0 {
		t.Errorf("empty financials revenue not empty, got %v", got)
	}

	if !empty.IsEmpty() {
		t.Error("empty financials not reported empty")
	}

	if quarterly.IsEmpty() {
		t.Error("quarterly financials reported empty")
	}
}
