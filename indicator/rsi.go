package indicator

import (
	"math"
)

const (
	// DefaultRSIPeriod is the standard Wilder RSI period.
	DefaultRSIPeriod = 14
)

// RSI computes the Wilder-smoothed relative strength index of the provided
// values. Slots before the warm-up window of period bars are NaN. Whenever
// defined the output lies in [0, 100].
func RSI(vals []float64, period int) []float64 {
	out := nanSlice(len(vals))
	if period <= 0 || len(vals) < period+1 {
		return out
	}

	// Seed the averages with the simple mean of the first period changes.
	var avgGain, avgLoss float64
	for idx := 1; idx <= period; idx++ {
		change := vals[idx] - vals[idx-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)
	out[period] = rsiFromAverages(avgGain, avgLoss)

	// Wilder smoothing with alpha = 1/period for the remaining bars.
	for idx := period + 1; idx < len(vals); idx++ {
		change := vals[idx] - vals[idx-1]
		var gain, loss float64
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}

		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		out[idx] = rsiFromAverages(avgGain, avgLoss)
	}

	return out
}

// rsiFromAverages converts smoothed gain/loss averages into an RSI value,
// guarding the zero-loss case.
func rsiFromAverages(avgGain float64, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}

	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}

// RSIMA computes the simple moving average of the provided RSI line,
// skipping the undefined warm-up slots.
func RSIMA(rsi []float64, period int) []float64 {
	out := nanSlice(len(rsi))
	if period <= 0 {
		return out
	}

	start := len(rsi)
	for idx := range rsi {
		if !math.IsNaN(rsi[idx]) {
			start = idx
			break
		}
	}

	var sum float64
	for idx := start; idx < len(rsi); idx++ {
		sum += rsi[idx]
		if idx-start >= period {
			sum -= rsi[idx-period]
		}
		if idx-start >= period-1 {
			out[idx] = sum / float64(period)
		}
	}

	return out
}
