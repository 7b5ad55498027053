package classify

import (
	"math"
)

// FortyWeekStatus represents the cross of price against the 40-period
// moving average and the average's slope sign.
type FortyWeekStatus int

const (
	FortyWeekUnknown FortyWeekStatus = iota
	AboveRisingMA
	AboveFallingMA
	BelowRisingMA
	BelowFallingMA
)

// String stringifies the provided status.
func (s FortyWeekStatus) String() string {
	switch s {
	case AboveRisingMA:
		return "Above Rising MA"
	case AboveFallingMA:
		return "Above Falling MA"
	case BelowRisingMA:
		return "Below Rising MA"
	case BelowFallingMA:
		return "Below Falling MA"
	default:
		return "Unknown"
	}
}

// FortyWeek classifies a close against its 40-period moving average and the
// average's slope. A slope of zero or less counts as falling.
func FortyWeek(close float64, ma float64, slope float64) FortyWeekStatus {
	if math.IsNaN(close) || math.IsNaN(ma) || math.IsNaN(slope) {
		return FortyWeekUnknown
	}

	above := close > ma
	rising := slope > 0
	switch {
	case above && rising:
		return AboveRisingMA
	case above && !rising:
		return AboveFallingMA
	case !above && rising:
		return BelowRisingMA
	default:
		return BelowFallingMA
	}
}

// FortyWeekSeries classifies the provided aligned series per bar.
func FortyWeekSeries(closes []float64, ma []float64, slope []float64) []FortyWeekStatus {
	out := make([]FortyWeekStatus, len(closes))
	for idx := range closes {
		out[idx] = FortyWeek(closes[idx], ma[idx], slope[idx])
	}

	return out
}
