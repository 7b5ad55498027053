package indicator

import (
	"math"
	"testing"

	"github.com/peterldowns/testy/assert"
)

func TestTrueRange(t *testing.T) {
	highs := []float64{12, 14, 20}
	lows := []float64{10, 11, 18}
	closes := []float64{11, 13, 19}

	got := TrueRange(highs, lows, closes)

	// First slot falls back to the plain high-low range.
	assert.Equal(t, got[0], float64(2))
	// max(14-11, |14-11|, |11-11|).
	assert.Equal(t, got[1], float64(3))
	// The gap up dominates: |20-13|.
	assert.Equal(t, got[2], float64(7))
}

func TestATRWilderSmoothing(t *testing.T) {
	highs := []float64{12, 12, 12, 12, 12}
	lows := []float64{10, 10, 10, 10, 10}
	closes := []float64{11, 11, 11, 11, 11}

	got := ATR(highs, lows, closes, 3)

	assert.True(t, math.IsNaN(got[0]))
	assert.True(t, math.IsNaN(got[1]))
	// A constant true range smooths to itself.
	for idx := 2; idx < len(got); idx++ {
		assert.Equal(t, got[idx], float64(2))
	}
}

func TestATRSimple(t *testing.T) {
	highs := []float64{12, 13, 14}
	lows := []float64{10, 11, 12}
	closes := []float64{11, 12, 13}

	got := ATRSimple(highs, lows, closes, 2)

	assert.True(t, math.IsNaN(got[0]))
	assert.Equal(t, got[1], float64(2))
	assert.Equal(t, got[2], float64(2))
}
