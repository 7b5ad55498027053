package shared

import (
	"math"
	"testing"
	"time"

	"github.com/peterldowns/testy/assert"
)

// day returns a utc date for the provided day offsets.
func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestNewSeriesNormalization(t *testing.T) {
	bars := []Bar{
		{Close: 12, Date: day(2024, time.January, 3)},
		{Close: 10, Date: day(2024, time.January, 2)},
		{Close: math.NaN(), Date: day(2024, time.January, 4)},
		{Close: 11, Date: day(2024, time.January, 2)},
	}

	series := NewSeries("^GSPC", Daily, bars)

	// The NaN close is dropped and the duplicate date resolved keep-last.
	assert.Equal(t, series.Len(), 2)
	assert.Equal(t, series.Bars[0].Close, float64(11))
	assert.Equal(t, series.Bars[1].Close, float64(12))
	assert.True(t, series.Bars[0].Date.Before(series.Bars[1].Date))
}

func TestResampleWeekly(t *testing.T) {
	// Monday through friday of one week, then monday of the next.
	bars := []Bar{
		{Open: 10, High: 12, Low: 9, Close: 11, Volume: 100, Date: day(2024, time.January, 8)},
		{Open: 11, High: 15, Low: 10, Close: 14, Volume: 200, Date: day(2024, time.January, 9)},
		{Open: 14, High: 16, Low: 8, Close: 9, Volume: 100, Date: day(2024, time.January, 12)},
		{Open: 9, High: 10, Low: 7, Close: 8, Volume: 50, Date: day(2024, time.January, 15)},
	}

	weekly := NewSeries("^GSPC", Daily, bars).Resample(Weekly)

	assert.Equal(t, weekly.Len(), 2)
	first := weekly.Bars[0]
	assert.Equal(t, first.Open, float64(10))
	assert.Equal(t, first.High, float64(16))
	assert.Equal(t, first.Low, float64(8))
	assert.Equal(t, first.Close, float64(9))
	assert.Equal(t, first.Volume, float64(400))
	// Weekly bars are friday anchored.
	assert.Equal(t, first.Date, day(2024, time.January, 12))
	assert.Equal(t, weekly.Bars[1].Date, day(2024, time.January, 19))
	assert.Equal(t, weekly.Timeframe, Weekly)
}

func TestResampleMonthly(t *testing.T) {
	bars := []Bar{
		{Open: 10, High: 12, Low: 9, Close: 11, Volume: 100, Date: day(2024, time.January, 5)},
		{Open: 11, High: 20, Low: 10, Close: 18, Volume: 100, Date: day(2024, time.January, 26)},
		{Open: 18, High: 19, Low: 15, Close: 16, Volume: 100, Date: day(2024, time.February, 2)},
	}

	monthly := NewSeries("^GSPC", Daily, bars).Resample(Monthly)

	assert.Equal(t, monthly.Len(), 2)
	assert.Equal(t, monthly.Bars[0].Open, float64(10))
	assert.Equal(t, monthly.Bars[0].Close, float64(18))
	assert.Equal(t, monthly.Bars[0].High, float64(20))
	assert.Equal(t, monthly.Bars[0].Date, day(2024, time.January, 31))
	assert.Equal(t, monthly.Bars[1].Date, day(2024, time.February, 29))
}

func TestResampleDailyIsIdentity(t *testing.T) {
	bars := []Bar{{Close: 10, Date: day(2024, time.January, 2)}}
	series := NewSeries("^GSPC", Daily, bars)

	assert.Equal(t, series.Resample(Daily), series)
}
