package indicator

import (
	"math"
	"testing"

	"github.com/peterldowns/testy/assert"
)

func TestCMF(t *testing.T) {
	// Every bar closes at its high with unit volume, the multiplier pins at 1.
	highs := []float64{12, 12, 12}
	lows := []float64{10, 10, 10}
	closes := []float64{12, 12, 12}
	volumes := []float64{100, 100, 100}

	got := CMF(highs, lows, closes, volumes, 2)

	assert.True(t, math.IsNaN(got[0]))
	assert.Equal(t, got[1], float64(1))
	assert.Equal(t, got[2], float64(1))
}

func TestCMFDegenerateBar(t *testing.T) {
	// A zero-range bar contributes zero flow instead of dividing by zero.
	highs := []float64{10, 12}
	lows := []float64{10, 10}
	closes := []float64{10, 12}
	volumes := []float64{100, 100}

	got := CMF(highs, lows, closes, volumes, 2)

	assert.Equal(t, got[1], 0.5)
}

func TestCMFZeroVolume(t *testing.T) {
	highs := []float64{12, 12}
	lows := []float64{10, 10}
	closes := []float64{11, 11}
	volumes := []float64{0, 0}

	got := CMF(highs, lows, closes, volumes, 2)

	assert.True(t, math.IsNaN(got[1]))
}
