package projection

import (
	"math"

	"github.com/avh/trend/indicator"
	"github.com/avh/trend/pivot"
	"github.com/avh/trend/shared"
)

const (
	// atrBreakoutWindow is the trailing window the current ATR must exceed
	// the mean of for a volatility breakout confirmation.
	atrBreakoutWindow = 20

	rsiMidline = 50
)

// DefaultFibRatios are the standard extension ratios reported.
var DefaultFibRatios = []float64{1.618, 2.618}

// FibTarget is a single fibonacci extension level.
type FibTarget struct {
	Ratio float64 `json:"ratio"`
	Price float64 `json:"price"`
}

// FibProjection holds the confirmed fibonacci-volatility extension targets
// of the current swing.
type FibProjection struct {
	Uptrend      bool        `json:"uptrend"`
	SwingStart   float64     `json:"swing_start"`
	SwingEnd     float64     `json:"swing_end"`
	ATRBreakout  bool        `json:"atr_breakout"`
	RSIConfirmed bool        `json:"rsi_confirmed"`
	Targets      []FibTarget `json:"targets,omitempty"`
	Status       string      `json:"status,omitempty"`
}

// Fibonacci computes extension targets at the provided ratios from the most
// recent pivot-to-pivot swing. Targets are only reported when the current
// 14-bar ATR exceeds its trailing mean and the RSI confirms the swing
// direction; otherwise the projection carries a status string.
func Fibonacci(series *shared.Series, pivots []pivot.Pivot, ratios []float64) (*FibProjection, error) {
	if len(pivots) < 2 {
		return nil, shared.ErrInsufficientHistory
	}
	if len(ratios) == 0 {
		ratios = DefaultFibRatios
	}

	recent := pivot.Recent(pivots, 2)
	start, end := recent[0], recent[1]

	proj := &FibProjection{
		Uptrend:    end.Price > start.Price,
		SwingStart: start.Price,
		SwingEnd:   end.Price,
	}

	closes := series.Closes()
	atr := indicator.ATR(series.Highs(), series.Lows(), closes, indicator.DefaultATRPeriod)
	proj.ATRBreakout = atrBreakout(atr)

	rsi := indicator.RSI(closes, indicator.DefaultRSIPeriod)
	if len(rsi) > 0 {
		current := rsi[len(rsi)-1]
		switch {
		case math.IsNaN(current):
			// leave unconfirmed.
		case proj.Uptrend:
			proj.RSIConfirmed = current > rsiMidline
		default:
			proj.RSIConfirmed = current < rsiMidline
		}
	}

	if !proj.ATRBreakout || !proj.RSIConfirmed {
		proj.Status = "awaiting confirmation"
		return proj, nil
	}

	span := math.Abs(end.Price - start.Price)
	direction := 1.0
	if !proj.Uptrend {
		direction = -1
	}
	for _, ratio := range ratios {
		proj.Targets = append(proj.Targets, FibTarget{
			Ratio: ratio,
			Price: shared.Round2(end.Price + direction*ratio*span),
		})
	}

	return proj, nil
}

// atrBreakout reports whether the latest ATR exceeds the mean of its
// trailing window.
func atrBreakout(atr []float64) bool {
	if len(atr) == 0 {
		return false
	}

	current := atr[len(atr)-1]
	if math.IsNaN(current) {
		return false
	}

	var sum float64
	var count int
	for idx := len(atr) - 1 - atrBreakoutWindow; idx < len(atr)-1; idx++ {
		if idx < 0 || math.IsNaN(atr[idx]) {
			continue
		}
		sum += atr[idx]
		count++
	}
	if count == 0 {
		return false
	}

	return current > sum/float64(count)
}
