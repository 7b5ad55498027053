package strategy

import (
	"math"

	"github.com/avh/trend/indicator"
	"github.com/avh/trend/shared"
)

// NorthStar parameters.
const (
	northStarFastPeriod = 12
	northStarSlowPeriod = 36
)

// NorthStar marker labels.
const (
	NorthStarEnterLabel = "ENTER"
	NorthStarExitLabel  = "EXIT"
)

// NorthStarState is the carried state of the NorthStar machine.
type NorthStarState struct {
	Position Position
}

// NorthStarInputs are the per-bar indicator inputs of the machine.
type NorthStarInputs struct {
	MA12 float64
	MA36 float64
}

// Next advances the machine by one bar. Entry is suppressed outright while
// close sits below the slow average, independent of position state.
func (s NorthStarState) Next(bar shared.Bar, inputs NorthStarInputs) (NorthStarState, *shared.SignalMarker) {
	if math.IsNaN(inputs.MA12) || math.IsNaN(inputs.MA36) {
		return s, nil
	}

	switch s.Position {
	case Flat:
		if bar.Close < inputs.MA36 {
			// Do not enter below the slow average.
			return s, nil
		}
		if bar.Close > inputs.MA12 && bar.Close > inputs.MA36 {
			s.Position = Long
			marker := shared.NewSignalMarker(bar.Date, bar.Close, shared.Buy, NorthStarEnterLabel)
			return s, &marker
		}
	case Long:
		if bar.Close < inputs.MA12 {
			s.Position = Flat
			marker := shared.NewSignalMarker(bar.Date, bar.Close, shared.Sell, NorthStarExitLabel)
			return s, &marker
		}
	}

	return s, nil
}

// NorthStar evaluates the NorthStar machine over the provided series.
func NorthStar(series *shared.Series) []shared.SignalMarker {
	if series.Len() < minShortHistory {
		return []shared.SignalMarker{}
	}

	closes := series.Closes()
	ma12 := indicator.SMA(closes, northStarFastPeriod)
	ma36 := indicator.SMA(closes, northStarSlowPeriod)

	markers := make([]shared.SignalMarker, 0)
	var state NorthStarState
	for idx := range series.Bars {
		inputs := NorthStarInputs{MA12: ma12[idx], MA36: ma36[idx]}

		var marker *shared.SignalMarker
		state, marker = state.Next(series.Bars[idx], inputs)
		if marker != nil {
			markers = append(markers, *marker)
		}
	}

	return markers
}
