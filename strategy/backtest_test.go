package strategy

import (
	"testing"
	"time"

	"github.com/avh/trend/shared"
	"github.com/peterldowns/testy/assert"
)

func marker(d int, price float64, side shared.Side) shared.SignalMarker {
	date := time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
	return shared.NewSignalMarker(date, price, side, "")
}

func TestPairTrades(t *testing.T) {
	markers := []shared.SignalMarker{
		marker(1, 100, shared.Buy),
		marker(5, 110, shared.Sell),
		marker(10, 120, shared.Buy),
		marker(15, 90, shared.Sell),
	}

	trades := PairTrades(markers)

	assert.Equal(t, len(trades), 2)
	assert.Equal(t, trades[0].EntryPrice, float64(100))
	assert.Equal(t, trades[0].ExitPrice, float64(110))
	assert.Equal(t, trades[0].ReturnPercent, float64(10))
	assert.False(t, trades[0].Open)
	assert.Equal(t, trades[1].ReturnPercent, float64(-25))
	assert.NotEqual(t, trades[0].ID, trades[1].ID)
}

func TestPairTradesTrailingBuy(t *testing.T) {
	markers := []shared.SignalMarker{
		marker(1, 100, shared.Buy),
		marker(5, 110, shared.Sell),
		marker(10, 120, shared.Buy),
	}

	trades := PairTrades(markers)

	assert.Equal(t, len(trades), 2)
	assert.True(t, trades[1].Open)
	assert.Equal(t, trades[1].EntryPrice, float64(120))
	assert.Equal(t, trades[1].ExitPrice, float64(0))
}

func TestPairTradesLeadingSell(t *testing.T) {
	markers := []shared.SignalMarker{
		marker(1, 100, shared.Sell),
		marker(5, 90, shared.Buy),
		marker(10, 99, shared.Sell),
	}

	trades := PairTrades(markers)

	// The orphan sell is dropped.
	assert.Equal(t, len(trades), 1)
	assert.Equal(t, trades[0].EntryPrice, float64(90))
	assert.Equal(t, trades[0].ExitPrice, float64(99))
}

func TestSummarize(t *testing.T) {
	trades := []Trade{
		{ReturnPercent: 10},
		{ReturnPercent: -4},
		{ReturnPercent: 6},
		{ReturnPercent: 15, Open: true},
	}

	summary := Summarize(trades)

	assert.Equal(t, summary.Total, 3)
	assert.Equal(t, summary.Wins, 2)
	assert.Equal(t, summary.WinPercent, float64(16))
	assert.Equal(t, summary.Losses, 1)
	assert.Equal(t, summary.LossPercent, float64(-4))
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, summary.Total, 0)
	assert.Equal(t, summary.Wins, 0)
	assert.Equal(t, summary.Losses, 0)
}
