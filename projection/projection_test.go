package projection

import (
	"time"

	"github.com/avh/trend/shared"
)

// makeSeries builds a daily series from the provided closes and bar ranges.
func makeSeries(closes []float64, ranges []float64) *shared.Series {
	date := time.Date(2023, time.January, 2, 0, 0, 0, 0, time.UTC)
	bars := make([]shared.Bar, len(closes))
	for idx := range closes {
		bars[idx] = shared.Bar{
			Open:   closes[idx],
			High:   closes[idx] + ranges[idx],
			Low:    closes[idx] - ranges[idx],
			Close:  closes[idx],
			Volume: 1e6,
			Date:   date,
		}
		date = date.AddDate(0, 0, 1)
	}

	return shared.NewSeries("^GSPC", shared.Daily, bars)
}

// uniformRanges returns a constant bar-range slice of the provided size.
func uniformRanges(size int, r float64) []float64 {
	out := make([]float64, size)
	for idx := range out {
		out[idx] = r
	}

	return out
}
