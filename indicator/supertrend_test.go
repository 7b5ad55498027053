package indicator

import (
	"math"
	"testing"

	"github.com/peterldowns/testy/assert"
)

// trendBars builds constant-range bars around the provided closes.
func trendBars(closes []float64) ([]float64, []float64) {
	highs := make([]float64, len(closes))
	lows := make([]float64, len(closes))
	for idx := range closes {
		highs[idx] = closes[idx] + 1
		lows[idx] = closes[idx] - 1
	}

	return highs, lows
}

func TestSupertrendWarmup(t *testing.T) {
	closes := []float64{10, 11, 12, 13}
	highs, lows := trendBars(closes)

	states := Supertrend(highs, lows, closes, 3, 3)

	// No band state before the ATR warm-up completes.
	for idx := 0; idx < 2; idx++ {
		assert.True(t, math.IsNaN(states[idx].UpperBand))
		assert.True(t, math.IsNaN(states[idx].LowerBand))
		assert.Equal(t, states[idx].Signal, TrendUndefined)
	}
	assert.NotEqual(t, states[3].Signal, TrendUndefined)
}

func TestSupertrendUptrendBands(t *testing.T) {
	closes := []float64{10, 11, 12, 13, 14, 15, 16, 17}
	highs, lows := trendBars(closes)

	states := Supertrend(highs, lows, closes, 2, 3)

	prev := math.Inf(-1)
	for idx := 2; idx < len(states); idx++ {
		state := states[idx]
		assert.Equal(t, state.Signal, TrendBuy)
		// Only the lower band is active in an uptrend and it never loosens.
		assert.True(t, math.IsNaN(state.UpperBand))
		assert.False(t, math.IsNaN(state.LowerBand))
		assert.True(t, state.LowerBand >= prev)
		prev = state.LowerBand
	}
}

func TestSupertrendFlip(t *testing.T) {
	closes := []float64{10, 11, 12, 13, 14, 15, 2, 1}
	highs, lows := trendBars(closes)

	states := Supertrend(highs, lows, closes, 2, 3)

	// The crash bar closes below the carried lower band and flips the trend.
	last := states[len(states)-1]
	crash := states[6]
	assert.Equal(t, states[5].Signal, TrendBuy)
	assert.Equal(t, crash.Signal, TrendSell)
	assert.True(t, math.IsNaN(crash.LowerBand))
	assert.False(t, math.IsNaN(crash.UpperBand))
	// Once a downtrend persists the upper band only ever tightens downward.
	assert.True(t, last.UpperBand <= crash.UpperBand)
}

func TestSupertrendSignals(t *testing.T) {
	states := []SupertrendState{
		{Signal: TrendUndefined},
		{Signal: TrendBuy},
		{Signal: TrendSell},
	}

	got := SupertrendSignals(states)

	assert.Equal(t, got, []TrendSignal{TrendUndefined, TrendBuy, TrendSell})
}

func TestTrendSignalString(t *testing.T) {
	tests := []struct {
		name   string
		signal TrendSignal
		want   string
	}{
		{
			name:   "buy signal",
			signal: TrendBuy,
			want:   "Buy",
		},
		{
			name:   "sell signal",
			signal: TrendSell,
			want:   "Sell",
		},
		{
			name:   "undefined signal",
			signal: TrendUndefined,
			want:   "Undefined",
		},
	}

	for _, test := range tests {
		got := test.signal.String()
		if got != test.want {
			t.Errorf("%s: expected %s, got %s", test.name, test.want, got)
		}
	}
}
