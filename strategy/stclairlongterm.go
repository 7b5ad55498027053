package strategy

import (
	"math"

	"github.com/avh/trend/indicator"
	"github.com/avh/trend/shared"
)

const (
	// minVotes is the number of confirming conditions required for a long
	// term transition.
	minVotes = 2

	stClairLongTermRSIMAPeriod = 14
)

// StClairLongTerm marker labels.
const (
	StClairLongTermEnterLabel = "ENTER"
	StClairLongTermExitLabel  = "EXIT"
)

// StClairLongTermState is the carried state of the long term machine.
type StClairLongTermState struct {
	Position Position
}

// StClairLongTermInputs are the per-bar voting inputs of the machine,
// evaluated on weekly bars with the monthly RSI-MA forward-filled onto the
// weekly index.
type StClairLongTermInputs struct {
	Supertrend    indicator.TrendSignal
	CloudPosition indicator.CloudPosition
	WeeklyRSI     float64
	MonthlyRSIMA  float64
}

// Next advances the machine by one bar, entering when at least two bullish
// conditions confirm and exiting when at least two bearish conditions do.
func (s StClairLongTermState) Next(bar shared.Bar, inputs StClairLongTermInputs) (StClairLongTermState, *shared.SignalMarker) {
	rsiDefined := !math.IsNaN(inputs.WeeklyRSI) && !math.IsNaN(inputs.MonthlyRSIMA)

	var bullish, bearish int
	if inputs.Supertrend == indicator.TrendBuy {
		bullish++
	}
	if inputs.Supertrend == indicator.TrendSell {
		bearish++
	}
	if inputs.CloudPosition == indicator.AboveCloud {
		bullish++
	}
	if inputs.CloudPosition == indicator.BelowCloud {
		bearish++
	}
	if rsiDefined && inputs.WeeklyRSI > inputs.MonthlyRSIMA {
		bullish++
	}
	if rsiDefined && inputs.WeeklyRSI < inputs.MonthlyRSIMA {
		bearish++
	}

	switch s.Position {
	case Flat:
		if bullish >= minVotes {
			s.Position = Long
			marker := shared.NewSignalMarker(bar.Date, bar.Close, shared.Buy, StClairLongTermEnterLabel)
			return s, &marker
		}
	case Long:
		if bearish >= minVotes {
			s.Position = Flat
			marker := shared.NewSignalMarker(bar.Date, bar.Close, shared.Sell, StClairLongTermExitLabel)
			return s, &marker
		}
	}

	return s, nil
}

// StClairLongTerm evaluates the weekly long term machine from the provided
// daily series, deriving the weekly and monthly views internally.
func StClairLongTerm(daily *shared.Series) []shared.SignalMarker {
	weekly := daily.Resample(shared.Weekly)
	monthly := daily.Resample(shared.Monthly)
	if weekly.Len() < minShortHistory {
		return []shared.SignalMarker{}
	}

	weeklyCloses := weekly.Closes()
	states := indicator.Supertrend(weekly.Highs(), weekly.Lows(), weeklyCloses,
		indicator.SupertrendATRPeriod, indicator.SupertrendFactor)
	clouds := indicator.Ichimoku(weekly.Highs(), weekly.Lows()).CloudPositions(weeklyCloses)

	weeklyRSI := indicator.RSI(weeklyCloses, indicator.DefaultRSIPeriod)
	monthlyRSI := indicator.RSI(monthly.Closes(), indicator.DefaultRSIPeriod)
	monthlyRSIMA := indicator.RSIMA(monthlyRSI, stClairLongTermRSIMAPeriod)
	alignedRSIMA := AlignByDate(dates(weekly), dates(monthly), monthlyRSIMA)

	markers := make([]shared.SignalMarker, 0)
	var state StClairLongTermState
	for idx := range weekly.Bars {
		inputs := StClairLongTermInputs{
			Supertrend:    states[idx].Signal,
			CloudPosition: clouds[idx],
			WeeklyRSI:     weeklyRSI[idx],
			MonthlyRSIMA:  alignedRSIMA[idx],
		}

		var marker *shared.SignalMarker
		state, marker = state.Next(weekly.Bars[idx], inputs)
		if marker != nil {
			markers = append(markers, *marker)
		}
	}

	return markers
}
