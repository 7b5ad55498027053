package classify

import (
	"math"
	"testing"

	"github.com/peterldowns/testy/assert"
)

func TestPercentile(t *testing.T) {
	vals := []float64{1, 2, 3, 4, 5}

	assert.Equal(t, Percentile(vals, 0.5), float64(3))
	assert.True(t, math.Abs(Percentile(vals, 0.95)-4.8) < 1e-9)
	assert.Equal(t, Percentile(vals, 0), float64(1))
	assert.Equal(t, Percentile(vals, 1), float64(5))
}

func TestPercentileSkipsNaN(t *testing.T) {
	vals := []float64{math.NaN(), 2, math.NaN(), 4}

	assert.Equal(t, Percentile(vals, 0.5), float64(3))
	assert.True(t, math.IsNaN(Percentile([]float64{math.NaN()}, 0.5)))
}

func TestDeviations(t *testing.T) {
	closes := []float64{100, 100, 110}

	got := Deviations(closes, 2)

	assert.True(t, math.IsNaN(got[0]))
	assert.Equal(t, got[1], float64(0))
	// (110 - 105) / 105 × 100.
	assert.True(t, math.Abs(got[2]-100*5.0/105) < 1e-9)
}

func TestMeanReversion(t *testing.T) {
	base := func(size int) []float64 {
		closes := make([]float64, size)
		for idx := range closes {
			if idx%2 == 0 {
				closes[idx] = 95
			} else {
				closes[idx] = 105
			}
		}
		return closes
	}

	t.Run("overbought spike", func(t *testing.T) {
		closes := base(150)
		closes[149] = 150

		assert.Equal(t, MeanReversion(closes, DefaultMeanRevPeriod), Overbought)
	})

	t.Run("oversold collapse", func(t *testing.T) {
		closes := base(150)
		closes[149] = 60

		assert.Equal(t, MeanReversion(closes, DefaultMeanRevPeriod), Oversold)
	})

	t.Run("average close", func(t *testing.T) {
		closes := base(150)
		closes[149] = 100

		assert.Equal(t, MeanReversion(closes, DefaultMeanRevPeriod), AverageBand)
	})

	t.Run("insufficient observations", func(t *testing.T) {
		assert.Equal(t, MeanReversion(base(80), DefaultMeanRevPeriod), MeanRevUnknown)
	})
}

func TestMeanRevBandString(t *testing.T) {
	assert.Equal(t, Overbought.String(), "Overbought")
	assert.Equal(t, Oversold.String(), "Oversold")
	assert.Equal(t, AverageBand.String(), "Average")
	assert.Equal(t, MeanRevUnknown.String(), "Unknown")
}
