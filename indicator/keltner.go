package indicator

import (
	"math"
)

// Keltner channel parameters.
const (
	KeltnerEMAPeriod = 20
	KeltnerATRPeriod = 10
	KeltnerFactor    = 2.0
)

// KeltnerChannel holds the aligned keltner channel lines.
type KeltnerChannel struct {
	Upper  []float64
	Middle []float64
	Lower  []float64
}

// Keltner computes an EMA-centered, ATR-banded keltner channel.
func Keltner(highs []float64, lows []float64, closes []float64, emaPeriod int, atrPeriod int, factor float64) KeltnerChannel {
	channel := KeltnerChannel{
		Upper:  nanSlice(len(closes)),
		Middle: EMA(closes, emaPeriod),
		Lower:  nanSlice(len(closes)),
	}

	atr := ATR(highs, lows, closes, atrPeriod)
	for idx := range closes {
		if math.IsNaN(channel.Middle[idx]) || math.IsNaN(atr[idx]) {
			continue
		}

		channel.Upper[idx] = channel.Middle[idx] + factor*atr[idx]
		channel.Lower[idx] = channel.Middle[idx] - factor*atr[idx]
	}

	return channel
}
