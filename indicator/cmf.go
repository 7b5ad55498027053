package indicator

import (
	"math"
)

const (
	// DefaultCMFWindow is the standard chaikin money flow window.
	DefaultCMFWindow = 21
)

// CMF computes the chaikin money flow over the provided window: the rolling
// sum of money-flow volume over the rolling sum of volume.
func CMF(highs []float64, lows []float64, closes []float64, volumes []float64, window int) []float64 {
	size := len(closes)
	out := nanSlice(size)
	if window <= 0 || size < window {
		return out
	}

	flow := make([]float64, size)
	for idx := range closes {
		barRange := highs[idx] - lows[idx]
		if barRange == 0 {
			// Degenerate bar, the multiplier falls to zero.
			continue
		}

		multiplier := ((closes[idx] - lows[idx]) - (highs[idx] - closes[idx])) / barRange
		flow[idx] = multiplier * volumes[idx]
	}

	var flowSum, volumeSum float64
	for idx := range closes {
		flowSum += flow[idx]
		volumeSum += volumes[idx]
		if idx >= window {
			flowSum -= flow[idx-window]
			volumeSum -= volumes[idx-window]
		}
		if idx >= window-1 {
			if volumeSum == 0 {
				out[idx] = math.NaN()
				continue
			}
			out[idx] = flowSum / volumeSum
		}
	}

	return out
}
