package indicator

import (
	"math"
)

// Supertrend parameters.
const (
	SupertrendATRPeriod = 10
	SupertrendFactor    = 3.0
)

// TrendSignal represents the supertrend direction signal.
type TrendSignal int

const (
	TrendUndefined TrendSignal = iota
	TrendBuy
	TrendSell
)

// String stringifies the provided trend signal.
func (s TrendSignal) String() string {
	switch s {
	case TrendBuy:
		return "Buy"
	case TrendSell:
		return "Sell"
	default:
		return "Undefined"
	}
}

// SupertrendState is the carried band state of a single bar. While an
// uptrend persists only the lower band is active and it only ever rises;
// while a downtrend persists only the upper band is active and it only ever
// falls. The inactive band is NaN.
type SupertrendState struct {
	UpperBand float64
	LowerBand float64
	TrendUp   bool
	Signal    TrendSignal
}

// nextSupertrendState derives a bar's band state purely from the previous
// state and the current raw bands.
func nextSupertrendState(prev SupertrendState, close float64, rawUpper float64, rawLower float64) SupertrendState {
	trendUp := prev.TrendUp

	// The trend direction persists unless close crosses the previous bar's
	// carried band.
	switch {
	case trendUp && !math.IsNaN(prev.LowerBand) && close < prev.LowerBand:
		trendUp = false
	case !trendUp && !math.IsNaN(prev.UpperBand) && close > prev.UpperBand:
		trendUp = true
	}

	state := SupertrendState{TrendUp: trendUp}
	switch {
	case trendUp:
		state.LowerBand = rawLower
		// While the uptrend persists the lower band is tightened
		// monotonically.
		if prev.TrendUp && !math.IsNaN(prev.LowerBand) {
			state.LowerBand = math.Max(rawLower, prev.LowerBand)
		}
		state.UpperBand = math.NaN()
		state.Signal = TrendBuy
	default:
		state.UpperBand = rawUpper
		if !prev.TrendUp && !math.IsNaN(prev.UpperBand) {
			state.UpperBand = math.Min(rawUpper, prev.UpperBand)
		}
		state.LowerBand = math.NaN()
		state.Signal = TrendSell
	}

	return state
}

// Supertrend computes the causal supertrend band states for the provided
// series in a single left-to-right fold.
func Supertrend(highs []float64, lows []float64, closes []float64, atrPeriod int, factor float64) []SupertrendState {
	size := len(closes)
	out := make([]SupertrendState, size)
	for idx := range out {
		out[idx] = SupertrendState{UpperBand: math.NaN(), LowerBand: math.NaN()}
	}

	atr := ATRSimple(highs, lows, closes, atrPeriod)

	var seeded bool
	var prev SupertrendState
	for idx := range closes {
		if math.IsNaN(atr[idx]) {
			continue
		}

		basis := (highs[idx] + lows[idx]) / 2
		rawUpper := basis + factor*atr[idx]
		rawLower := basis - factor*atr[idx]

		if !seeded {
			seeded = true
			prev = SupertrendState{TrendUp: closes[idx] >= basis, UpperBand: math.NaN(), LowerBand: math.NaN()}
		}

		prev = nextSupertrendState(prev, closes[idx], rawUpper, rawLower)
		out[idx] = prev
	}

	return out
}

// SupertrendSignals extracts the per-bar direction signals from the provided
// band states.
func SupertrendSignals(states []SupertrendState) []TrendSignal {
	out := make([]TrendSignal, len(states))
	for idx := range states {
		out[idx] = states[idx].Signal
	}

	return out
}
