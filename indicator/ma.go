package indicator

import (
	"math"
)

// SMA computes the simple rolling mean of the provided values over the
// provided period. The first period-1 slots are NaN.
func SMA(vals []float64, period int) []float64 {
	out := nanSlice(len(vals))
	if period <= 0 || len(vals) < period {
		return out
	}

	var sum float64
	for idx := range vals {
		sum += vals[idx]
		if idx >= period {
			sum -= vals[idx-period]
		}
		if idx >= period-1 {
			out[idx] = sum / float64(period)
		}
	}

	return out
}

// EMA computes the exponential moving average of the provided values, seeded
// with the simple mean of the first period values.
func EMA(vals []float64, period int) []float64 {
	out := nanSlice(len(vals))
	if period <= 0 || len(vals) < period {
		return out
	}

	var sum float64
	for idx := 0; idx < period; idx++ {
		sum += vals[idx]
	}
	out[period-1] = sum / float64(period)

	alpha := 2 / (float64(period) + 1)
	for idx := period; idx < len(vals); idx++ {
		out[idx] = vals[idx]*alpha + out[idx-1]*(1-alpha)
	}

	return out
}

// SpreadPercent computes the percentage spread of fast over slow per slot.
func SpreadPercent(fast []float64, slow []float64) []float64 {
	out := nanSlice(len(fast))
	for idx := range fast {
		if idx >= len(slow) {
			break
		}
		if math.IsNaN(fast[idx]) || math.IsNaN(slow[idx]) || slow[idx] == 0 {
			continue
		}
		out[idx] = (fast[idx] - slow[idx]) / slow[idx] * 100
	}

	return out
}

// Slope computes the per-bar difference of the provided values.
func Slope(vals []float64) []float64 {
	out := nanSlice(len(vals))
	for idx := 1; idx < len(vals); idx++ {
		if math.IsNaN(vals[idx]) || math.IsNaN(vals[idx-1]) {
			continue
		}
		out[idx] = vals[idx] - vals[idx-1]
	}

	return out
}

// nanSlice returns a slice of the provided size filled with NaN.
func nanSlice(size int) []float64 {
	out := make([]float64, size)
	for idx := range out {
		out[idx] = math.NaN()
	}

	return out
}
