package strategy

import (
	"time"

	"github.com/avh/trend/shared"
	"github.com/google/uuid"
)

// Trade represents a round trip paired from a strategy's marker sequence.
type Trade struct {
	ID            string
	EntryDate     time.Time
	EntryPrice    float64
	ExitDate      time.Time
	ExitPrice     float64
	ReturnPercent float64
	Open          bool
}

// Summary aggregates trade-level outcomes for a strategy run.
type Summary struct {
	Total       int     `json:"total"`
	Wins        int     `json:"wins"`
	WinPercent  float64 `json:"win_percent"`
	Losses      int     `json:"losses"`
	LossPercent float64 `json:"loss_percent"`
}

// PairTrades pairs an alternating marker sequence into single-open-position
// trades: a buy opens a trade, the next sell closes it. A trailing buy is
// reported as an open trade with no exit.
func PairTrades(markers []shared.SignalMarker) []Trade {
	trades := make([]Trade, 0, len(markers)/2+1)

	var open *Trade
	for idx := range markers {
		marker := markers[idx]
		switch marker.Side {
		case shared.Buy:
			if open != nil {
				continue
			}
			open = &Trade{
				ID:         uuid.New().String(),
				EntryDate:  marker.Date,
				EntryPrice: marker.Price,
				Open:       true,
			}
		case shared.Sell:
			if open == nil {
				continue
			}
			open.ExitDate = marker.Date
			open.ExitPrice = marker.Price
			open.Open = false
			if open.EntryPrice != 0 {
				open.ReturnPercent = (open.ExitPrice - open.EntryPrice) / open.EntryPrice * 100
			}
			trades = append(trades, *open)
			open = nil
		}
	}

	if open != nil {
		trades = append(trades, *open)
	}

	return trades
}

// Summarize aggregates the closed trades of the provided set.
func Summarize(trades []Trade) Summary {
	var summary Summary
	for idx := range trades {
		if trades[idx].Open {
			continue
		}

		summary.Total++
		switch {
		case trades[idx].ReturnPercent > 0:
			summary.Wins++
			summary.WinPercent += trades[idx].ReturnPercent
		default:
			summary.Losses++
			summary.LossPercent += trades[idx].ReturnPercent
		}
	}

	return summary
}
