package indicator

import (
	"math"
	"testing"

	"github.com/peterldowns/testy/assert"
)

func TestSMA(t *testing.T) {
	vals := []float64{1, 2, 3, 4, 5}

	got := SMA(vals, 3)

	assert.True(t, math.IsNaN(got[0]))
	assert.True(t, math.IsNaN(got[1]))
	assert.Equal(t, got[2], float64(2))
	assert.Equal(t, got[3], float64(3))
	assert.Equal(t, got[4], float64(4))
}

func TestSMAInsufficientHistory(t *testing.T) {
	got := SMA([]float64{1, 2}, 3)

	assert.Equal(t, len(got), 2)
	for idx := range got {
		assert.True(t, math.IsNaN(got[idx]))
	}
}

func TestEMA(t *testing.T) {
	vals := []float64{1, 2, 3, 4, 5}

	got := EMA(vals, 3)

	assert.True(t, math.IsNaN(got[0]))
	assert.True(t, math.IsNaN(got[1]))
	// Seeded with the simple mean of the first three values.
	assert.Equal(t, got[2], float64(2))
	assert.Equal(t, got[3], float64(3))
	assert.Equal(t, got[4], float64(4))
}

func TestSpreadPercent(t *testing.T) {
	fast := []float64{math.NaN(), 101, 99}
	slow := []float64{100, 100, 100}

	got := SpreadPercent(fast, slow)

	assert.True(t, math.IsNaN(got[0]))
	assert.Equal(t, got[1], float64(1))
	assert.Equal(t, got[2], float64(-1))
}

func TestSlope(t *testing.T) {
	vals := []float64{math.NaN(), 10, 12, 11}

	got := Slope(vals)

	assert.True(t, math.IsNaN(got[0]))
	assert.True(t, math.IsNaN(got[1]))
	assert.Equal(t, got[2], float64(2))
	assert.Equal(t, got[3], float64(-1))
}
