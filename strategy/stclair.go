package strategy

import (
	"math"

	"github.com/avh/trend/indicator"
	"github.com/avh/trend/shared"
)

// StClair parameters.
const (
	stClairSlowPeriod  = 200
	stClairFastPeriod  = 20
	stClairRSIMAPeriod = 14
)

// StClair marker labels.
const (
	StClairEnterLabel = "ENTER"
	StClairExitLabel  = "EXIT"
)

// StClairState is the carried state of the StClair machine.
type StClairState struct {
	Position Position
}

// StClairInputs are the per-bar indicator inputs of the machine. The moving
// averages are always computed on daily bars regardless of the display
// timeframe; the RSI pair follows the display timeframe.
type StClairInputs struct {
	DailySMA200 float64
	DailySMA20  float64
	RSI         float64
	RSIMA       float64
}

// Next advances the machine by one bar.
func (s StClairState) Next(bar shared.Bar, inputs StClairInputs) (StClairState, *shared.SignalMarker) {
	if math.IsNaN(inputs.RSI) || math.IsNaN(inputs.RSIMA) {
		return s, nil
	}

	switch s.Position {
	case Flat:
		if math.IsNaN(inputs.DailySMA200) || math.IsNaN(inputs.DailySMA20) {
			return s, nil
		}
		if bar.Close > inputs.DailySMA200 && bar.Close > inputs.DailySMA20 &&
			inputs.RSI > inputs.RSIMA {
			s.Position = Long
			marker := shared.NewSignalMarker(bar.Date, bar.Close, shared.Buy, StClairEnterLabel)
			return s, &marker
		}
	case Long:
		if inputs.RSI < inputs.RSIMA {
			s.Position = Flat
			marker := shared.NewSignalMarker(bar.Date, bar.Close, shared.Sell, StClairExitLabel)
			return s, &marker
		}
	}

	return s, nil
}

// StClair evaluates the StClair machine over the provided display series,
// anchoring the moving average filters on the provided daily series.
func StClair(daily *shared.Series, display *shared.Series) []shared.SignalMarker {
	if daily.Len() < minLongHistory {
		return []shared.SignalMarker{}
	}

	dailyCloses := daily.Closes()
	sma200 := AlignByDate(dates(display), dates(daily), indicator.SMA(dailyCloses, stClairSlowPeriod))
	sma20 := AlignByDate(dates(display), dates(daily), indicator.SMA(dailyCloses, stClairFastPeriod))

	rsi := indicator.RSI(display.Closes(), indicator.DefaultRSIPeriod)
	rsiMA := indicator.RSIMA(rsi, stClairRSIMAPeriod)

	markers := make([]shared.SignalMarker, 0)
	var state StClairState
	for idx := range display.Bars {
		inputs := StClairInputs{
			DailySMA200: sma200[idx],
			DailySMA20:  sma20[idx],
			RSI:         rsi[idx],
			RSIMA:       rsiMA[idx],
		}

		var marker *shared.SignalMarker
		state, marker = state.Next(display.Bars[idx], inputs)
		if marker != nil {
			markers = append(markers, *marker)
		}
	}

	return markers
}
