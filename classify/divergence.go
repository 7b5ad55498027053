package classify

import (
	"math"

	"github.com/avh/trend/pivot"
)

// Divergence lookback defaults, in bars.
const (
	// DefaultDivergenceStrength is the local extremum lookaround window.
	DefaultDivergenceStrength = 2
	// MinRSIDivergenceGap is the minimum RSI difference between matched
	// pivots for a divergence to register.
	MinRSIDivergenceGap = 1.0

	rsiMidline = 50
)

// DivergenceLabel represents the price/RSI divergence state of a bar.
type DivergenceLabel int

const (
	DivergenceNormal DivergenceLabel = iota
	BullishDivergence
	BearishDivergence
)

// String stringifies the provided divergence label.
func (l DivergenceLabel) String() string {
	switch l {
	case BullishDivergence:
		return "Bullish Divergence"
	case BearishDivergence:
		return "Bearish Divergence"
	default:
		return "Normal"
	}
}

// DivergenceConfig bounds the pivot matching scan.
type DivergenceConfig struct {
	// Strength is the local extremum lookaround window.
	Strength int
	// MinLookback is the smallest pivot-to-pivot offset scanned.
	MinLookback int
	// MaxLookback is the largest pivot-to-pivot offset scanned.
	MaxLookback int
}

// NewDivergenceConfig returns the scan bounds for the provided timeframe
// granularity: 5-30 bars for daily and weekly series, 3-12 for monthly.
func NewDivergenceConfig(monthly bool) DivergenceConfig {
	if monthly {
		return DivergenceConfig{Strength: DefaultDivergenceStrength, MinLookback: 3, MaxLookback: 12}
	}

	return DivergenceConfig{Strength: DefaultDivergenceStrength, MinLookback: 5, MaxLookback: 30}
}

// Divergences labels each bar by comparing price pivots against RSI values
// at matching pivots over the bounded lookback. First match wins.
func Divergences(closes []float64, rsi []float64, cfg DivergenceConfig) []DivergenceLabel {
	out := make([]DivergenceLabel, len(closes))
	ext := pivot.LocalExtrema(closes, cfg.Strength)

	for idx := range closes {
		if math.IsNaN(rsi[idx]) {
			continue
		}

		for lookback := cfg.MinLookback; lookback <= cfg.MaxLookback; lookback++ {
			prior := idx - lookback
			if prior < 0 {
				break
			}
			if math.IsNaN(rsi[prior]) {
				continue
			}

			if ext.Lows[idx] && ext.Lows[prior] &&
				closes[idx] < closes[prior] &&
				rsi[idx] > rsi[prior]+MinRSIDivergenceGap &&
				rsi[idx] < rsiMidline {
				out[idx] = BullishDivergence
				break
			}

			if ext.Highs[idx] && ext.Highs[prior] &&
				closes[idx] > closes[prior] &&
				rsi[idx] < rsi[prior]-MinRSIDivergenceGap &&
				rsi[idx] > rsiMidline {
				out[idx] = BearishDivergence
				break
			}
		}
	}

	return out
}
