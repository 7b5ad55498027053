package projection

import (
	"errors"
	"testing"

	"github.com/avh/trend/pivot"
	"github.com/avh/trend/shared"
	"github.com/peterldowns/testy/assert"
)

func TestFibonacciInsufficientPivots(t *testing.T) {
	closes := uniformRanges(30, 100)
	s := makeSeries(closes, uniformRanges(30, 1))

	proj, err := Fibonacci(s, []pivot.Pivot{{Price: 100}}, nil)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrInsufficientHistory))
	assert.Nil(t, proj)
}

func TestFibonacciAwaitingConfirmation(t *testing.T) {
	// A flat series has no volatility breakout, so no targets are reported.
	closes := uniformRanges(60, 100)
	s := makeSeries(closes, uniformRanges(60, 1))

	proj, err := Fibonacci(s, []pivot.Pivot{{Price: 100}, {Price: 120}}, nil)

	assert.NoError(t, err)
	assert.False(t, proj.ATRBreakout)
	assert.Equal(t, proj.Status, "awaiting confirmation")
	assert.Equal(t, len(proj.Targets), 0)
}

func TestFibonacciConfirmedUptrend(t *testing.T) {
	// Forty calm bars, then a strong wide-range advance: the ATR breaks out
	// above its trailing mean and the RSI confirms the upswing.
	size := 60
	closes := make([]float64, size)
	ranges := make([]float64, size)
	for idx := range closes {
		if idx < 40 {
			closes[idx] = 100
			ranges[idx] = 1
			continue
		}
		closes[idx] = 100 + float64(idx-39)*5
		ranges[idx] = 5
	}
	s := makeSeries(closes, ranges)

	proj, err := Fibonacci(s, []pivot.Pivot{{Price: 100}, {Price: 120}}, nil)

	assert.NoError(t, err)
	assert.True(t, proj.Uptrend)
	assert.True(t, proj.ATRBreakout)
	assert.True(t, proj.RSIConfirmed)
	assert.Equal(t, len(proj.Targets), 2)
	assert.Equal(t, proj.Targets[0].Ratio, 1.618)
	// 120 + 1.618 × 20.
	assert.Equal(t, proj.Targets[0].Price, 152.36)
	assert.Equal(t, proj.Targets[1].Price, 172.36)
	assert.Equal(t, proj.Status, "")
}

func TestFibonacciDowntrendTargets(t *testing.T) {
	// Mirror the confirmed case downward.
	size := 60
	closes := make([]float64, size)
	ranges := make([]float64, size)
	for idx := range closes {
		if idx < 40 {
			closes[idx] = 500
			ranges[idx] = 1
			continue
		}
		closes[idx] = 500 - float64(idx-39)*5
		ranges[idx] = 5
	}
	s := makeSeries(closes, ranges)

	proj, err := Fibonacci(s, []pivot.Pivot{{Price: 500}, {Price: 480}}, []float64{1.618})

	assert.NoError(t, err)
	assert.False(t, proj.Uptrend)
	assert.True(t, proj.RSIConfirmed)
	assert.Equal(t, len(proj.Targets), 1)
	// 480 - 1.618 × 20.
	assert.Equal(t, proj.Targets[0].Price, 447.64)
}
