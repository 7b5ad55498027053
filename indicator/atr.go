package indicator

import (
	"math"
)

const (
	// DefaultATRPeriod is the standard ATR period.
	DefaultATRPeriod = 14
)

// TrueRange computes the bar-by-bar true range of the provided highs, lows
// and closes. The first slot falls back to the plain high-low range.
func TrueRange(highs []float64, lows []float64, closes []float64) []float64 {
	out := nanSlice(len(closes))
	for idx := range closes {
		if idx == 0 {
			out[idx] = highs[idx] - lows[idx]
			continue
		}

		prevClose := closes[idx-1]
		out[idx] = math.Max(highs[idx]-lows[idx],
			math.Max(math.Abs(highs[idx]-prevClose), math.Abs(lows[idx]-prevClose)))
	}

	return out
}

// ATR computes the Wilder-smoothed average true range.
func ATR(highs []float64, lows []float64, closes []float64, period int) []float64 {
	tr := TrueRange(highs, lows, closes)
	return wilderSmooth(tr, period)
}

// ATRSimple computes the average true range as a simple rolling mean of the
// true range, the variant the supertrend bands are built on.
func ATRSimple(highs []float64, lows []float64, closes []float64, period int) []float64 {
	tr := TrueRange(highs, lows, closes)
	return SMA(tr, period)
}

// wilderSmooth applies Wilder's exponential smoothing (alpha = 1/period) to
// the provided values, seeded with the simple mean of the first period values.
func wilderSmooth(vals []float64, period int) []float64 {
	out := nanSlice(len(vals))
	if period <= 0 || len(vals) < period {
		return out
	}

	var sum float64
	for idx := 0; idx < period; idx++ {
		sum += vals[idx]
	}
	out[period-1] = sum / float64(period)

	for idx := period; idx < len(vals); idx++ {
		out[idx] = (out[idx-1]*float64(period-1) + vals[idx]) / float64(period)
	}

	return out
}
