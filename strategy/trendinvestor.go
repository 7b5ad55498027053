package strategy

import (
	"math"

	"github.com/avh/trend/indicator"
	"github.com/avh/trend/shared"
)

// TrendInvestorPro parameters.
const (
	trendInvestorFastPeriod = 5
	trendInvestorSlowPeriod = 200
	// entrySpreadPercent is the fast/slow spread from which an entry fires.
	entrySpreadPercent = 1.0
	// exitSpreadPercent is the fast/slow spread at which an exit fires.
	exitSpreadPercent = -1.0
	// maxBarsBelowKeltner is the consecutive-bar tolerance below the lower
	// keltner band before a volatility exit fires.
	maxBarsBelowKeltner = 5
)

// TrendInvestor marker labels.
const (
	TrendInvestorEnterLabel  = "ENTER MA"
	TrendInvestorExitMALabel = "EXIT MA"
	TrendInvestorExitKCLabel = "EXIT KC"
)

// TrendInvestorState is the carried state of the TrendInvestorPro machine.
type TrendInvestorState struct {
	Position Position
	// PendingMAReentry blocks re-entry after a moving average exit until a
	// down-cross is observed.
	PendingMAReentry bool
	// PendingKCReentry blocks re-entry after a keltner channel exit until a
	// down-cross is observed.
	PendingKCReentry bool
	// SawDownCross records a spread down-cross observed while a pending
	// re-entry flag is active.
	SawDownCross bool
	// BelowKeltnerRun counts consecutive closes below the lower keltner
	// band while long.
	BelowKeltnerRun int
}

// TrendInvestorInputs are the per-bar indicator inputs of the machine.
type TrendInvestorInputs struct {
	SpreadPercent float64
	KeltnerLower  float64
}

// Next advances the machine by one bar, returning the successor state and
// an optional marker on a position transition.
func (s TrendInvestorState) Next(bar shared.Bar, inputs TrendInvestorInputs) (TrendInvestorState, *shared.SignalMarker) {
	if math.IsNaN(inputs.SpreadPercent) {
		return s, nil
	}

	switch s.Position {
	case Flat:
		pending := s.PendingMAReentry || s.PendingKCReentry
		if pending && inputs.SpreadPercent <= exitSpreadPercent {
			s.SawDownCross = true
		}

		crossedUp := inputs.SpreadPercent >= entrySpreadPercent
		switch {
		case crossedUp && !pending:
			// fall through to entry.
		case crossedUp && pending && s.SawDownCross:
			// A down-cross was observed since the last exit, re-entry may
			// fire.
		default:
			return s, nil
		}

		s.Position = Long
		s.PendingMAReentry = false
		s.PendingKCReentry = false
		s.SawDownCross = false
		s.BelowKeltnerRun = 0
		marker := shared.NewSignalMarker(bar.Date, bar.Close, shared.Buy, TrendInvestorEnterLabel)
		return s, &marker

	case Long:
		if !math.IsNaN(inputs.KeltnerLower) && bar.Close < inputs.KeltnerLower {
			s.BelowKeltnerRun++
		} else {
			s.BelowKeltnerRun = 0
		}

		switch {
		case inputs.SpreadPercent <= exitSpreadPercent:
			s.Position = Flat
			s.PendingMAReentry = true
			s.SawDownCross = false
			marker := shared.NewSignalMarker(bar.Date, bar.Close, shared.Sell, TrendInvestorExitMALabel)
			return s, &marker
		case s.BelowKeltnerRun >= maxBarsBelowKeltner:
			s.Position = Flat
			s.PendingKCReentry = true
			s.SawDownCross = false
			marker := shared.NewSignalMarker(bar.Date, bar.Close, shared.Sell, TrendInvestorExitKCLabel)
			return s, &marker
		}
	}

	return s, nil
}

// TrendInvestorPro evaluates the TrendInvestorPro machine over the provided
// series, returning the ordered marker sequence. Series shorter than the
// warm-up history yield no markers.
func TrendInvestorPro(series *shared.Series) []shared.SignalMarker {
	if series.Len() < minLongHistory {
		return []shared.SignalMarker{}
	}

	closes := series.Closes()
	fast := indicator.SMA(closes, trendInvestorFastPeriod)
	slow := indicator.SMA(closes, trendInvestorSlowPeriod)
	spread := indicator.SpreadPercent(fast, slow)
	keltner := indicator.Keltner(series.Highs(), series.Lows(), closes,
		indicator.KeltnerEMAPeriod, indicator.KeltnerATRPeriod, indicator.KeltnerFactor)

	markers := make([]shared.SignalMarker, 0)
	var state TrendInvestorState
	for idx := range series.Bars {
		inputs := TrendInvestorInputs{
			SpreadPercent: spread[idx],
			KeltnerLower:  keltner.Lower[idx],
		}

		var marker *shared.SignalMarker
		state, marker = state.Next(series.Bars[idx], inputs)
		if marker != nil {
			markers = append(markers, *marker)
		}
	}

	return markers
}
