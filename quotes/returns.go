package quotes

import "sort"

// DailyReturns return day-over-day percentage changes of the close price.
// A series with fewer than 2 bars yields no returns.
func (s Series) DailyReturns() []float64 {
	if len(s) < 2 {
		return []float64{}
	}

	returns := make([]float64, 0, len(s)-1)
	for index := 1; index < len(s); index++ {
		previous := float64(s[index-1].Close)
		if previous == 0 {
			continue
		}

		returns = append(returns, (float64(s[index].Close)-previous)/previous)
	}

	return returns
}

// CumulativeReturns return the running product of (1 + daily change) - 1,
// starting at zero on the first date in range.
func (s Series) CumulativeReturns() []float64 {
	returns := s.DailyReturns()
	if len(returns) == 0 {
		return []float64{}
	}

	cumulative := make([]float64, len(returns)+1)
	cumulative[0] = 0
	for index, r := range returns {
		cumulative[index+1] = (1+cumulative[index])*(1+r) - 1
	}

	return cumulative
}

// Quartiles return min, first quartile, median, third quartile and max of values
func Quartiles(values []float64) [5]float64 {
	var q [5]float64
	if len(values) == 0 {
		return q
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	q[0] = sorted[0]
	q[1] = percentile(sorted, 0.25)
	q[2] = percentile(sorted, 0.5)
	q[3] = percentile(sorted, 0.75)
	q[4] = sorted[len(sorted)-1]

	return q
}

// percentile linear interpolation between closest ranks
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}

	rank := p * float64(len(sorted)-1)
	lower := int(rank)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[lower]
	}

	fraction := rank - float64(lower)
	return sorted[lower] + fraction*(sorted[upper]-sorted[lower])
}
