package indicator

import (
	"math"
	"testing"

	"github.com/peterldowns/testy/assert"
)

func TestADXUptrend(t *testing.T) {
	size := 40
	highs := make([]float64, size)
	lows := make([]float64, size)
	closes := make([]float64, size)
	for idx := range highs {
		base := 100 + float64(idx)*2
		highs[idx] = base + 1
		lows[idx] = base - 1
		closes[idx] = base
	}

	di := ADX(highs, lows, closes, 5)

	last := len(closes) - 1
	assert.False(t, math.IsNaN(di.ADX[last]))
	assert.False(t, math.IsNaN(di.PlusDI[last]))
	assert.False(t, math.IsNaN(di.MinusDI[last]))
	// A one-way climb keeps +DI dominant and the ADX strong.
	assert.GreaterThan(t, di.PlusDI[last], di.MinusDI[last])
	assert.GreaterThan(t, di.ADX[last], float64(25))
	assert.LessThanOrEqual(t, di.ADX[last], float64(100))
}

func TestADXInsufficientHistory(t *testing.T) {
	highs := []float64{12, 13, 14}
	lows := []float64{10, 11, 12}
	closes := []float64{11, 12, 13}

	di := ADX(highs, lows, closes, 14)

	for idx := range closes {
		assert.True(t, math.IsNaN(di.ADX[idx]))
		assert.True(t, math.IsNaN(di.PlusDI[idx]))
		assert.True(t, math.IsNaN(di.MinusDI[idx]))
	}
}
