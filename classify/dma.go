package classify

import (
	"math"
)

// DMATrend represents the position of price relative to its 50 and 150
// period moving averages.
type DMATrend int

const (
	DMAUnknown DMATrend = iota
	AboveBoth
	Above150Only
	BelowBoth
	Below150Only
	BetweenAverages
)

// String stringifies the provided DMA trend.
func (t DMATrend) String() string {
	switch t {
	case AboveBoth:
		return "Above Both (Uptrend)"
	case Above150Only:
		return "Above 150 Only"
	case BelowBoth:
		return "Below Both (Downtrend)"
	case Below150Only:
		return "Below 150 Only"
	case BetweenAverages:
		return "Between Averages"
	default:
		return "Unknown"
	}
}

// DMA classifies a close against its 50 and 150 period moving averages.
func DMA(close float64, ma50 float64, ma150 float64) DMATrend {
	if math.IsNaN(close) || math.IsNaN(ma50) || math.IsNaN(ma150) {
		return DMAUnknown
	}

	switch {
	case close > ma50 && ma50 > ma150:
		return AboveBoth
	case close > ma150 && ma150 > ma50:
		return Above150Only
	case close < ma50 && ma50 < ma150:
		return BelowBoth
	case close < ma150 && ma150 < ma50:
		return Below150Only
	default:
		return BetweenAverages
	}
}

// DMASeries classifies the provided aligned series per bar.
func DMASeries(closes []float64, ma50 []float64, ma150 []float64) []DMATrend {
	out := make([]DMATrend, len(closes))
	for idx := range closes {
		out[idx] = DMA(closes[idx], ma50[idx], ma150[idx])
	}

	return out
}
