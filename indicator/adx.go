package indicator

import (
	"math"
)

const (
	// DefaultADXPeriod is the standard ADX/DI period.
	DefaultADXPeriod = 14
)

// DirectionalIndex holds the aligned ADX and directional indicator lines.
type DirectionalIndex struct {
	ADX     []float64
	PlusDI  []float64
	MinusDI []float64
}

// ADX computes the average directional index and the +DI/-DI lines over the
// provided period. True range and directional movement are Wilder-smoothed;
// degenerate divisions propagate NaN rather than raising.
func ADX(highs []float64, lows []float64, closes []float64, period int) DirectionalIndex {
	size := len(closes)
	di := DirectionalIndex{
		ADX:     nanSlice(size),
		PlusDI:  nanSlice(size),
		MinusDI: nanSlice(size),
	}
	if period <= 0 || size < period+1 {
		return di
	}

	tr := TrueRange(highs, lows, closes)
	plusDM := make([]float64, size)
	minusDM := make([]float64, size)
	for idx := 1; idx < size; idx++ {
		upMove := highs[idx] - highs[idx-1]
		downMove := lows[idx-1] - lows[idx]

		if upMove > downMove && upMove > 0 {
			plusDM[idx] = upMove
		}
		if downMove > upMove && downMove > 0 {
			minusDM[idx] = downMove
		}
	}

	smoothedTR := wilderSmooth(tr[1:], period)
	smoothedPlus := wilderSmooth(plusDM[1:], period)
	smoothedMinus := wilderSmooth(minusDM[1:], period)

	dx := nanSlice(len(smoothedTR))
	for idx := range smoothedTR {
		if math.IsNaN(smoothedTR[idx]) || smoothedTR[idx] == 0 {
			continue
		}

		plusDI := 100 * smoothedPlus[idx] / smoothedTR[idx]
		minusDI := 100 * smoothedMinus[idx] / smoothedTR[idx]
		di.PlusDI[idx+1] = plusDI
		di.MinusDI[idx+1] = minusDI

		diSum := plusDI + minusDI
		if diSum == 0 {
			// Guard the 0/0 case, the slot stays undefined.
			continue
		}
		dx[idx] = 100 * math.Abs(plusDI-minusDI) / diSum
	}

	// ADX is the Wilder smoothing of DX over the defined slots.
	start := len(dx)
	for idx := range dx {
		if !math.IsNaN(dx[idx]) {
			start = idx
			break
		}
	}
	if len(dx)-start >= period {
		smoothedDX := wilderSmooth(dx[start:], period)
		for idx := range smoothedDX {
			di.ADX[start+idx+1] = smoothedDX[idx]
		}
	}

	return di
}
