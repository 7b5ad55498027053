package shared

import (
	"math"
	"sort"
	"time"
)

// Bar represents a unit OHLCV bar for a market.
type Bar struct {
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
	Date   time.Time
}

// Series represents an ordered, periodicity-tagged bar sequence for a market.
type Series struct {
	Market    string
	Timeframe Timeframe
	Bars      []Bar
}

// NewSeries normalizes the provided bars into a series. Bars with a NaN close
// are dropped, the remainder is sorted ascending by date and duplicate dates
// are resolved keep-last.
func NewSeries(market string, timeframe Timeframe, bars []Bar) *Series {
	valid := make([]Bar, 0, len(bars))
	for idx := range bars {
		if math.IsNaN(bars[idx].Close) {
			continue
		}
		valid = append(valid, bars[idx])
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].Date.Before(valid[j].Date)
	})

	deduped := make([]Bar, 0, len(valid))
	for idx := range valid {
		if len(deduped) > 0 && deduped[len(deduped)-1].Date.Equal(valid[idx].Date) {
			deduped[len(deduped)-1] = valid[idx]
			continue
		}
		deduped = append(deduped, valid[idx])
	}

	return &Series{
		Market:    market,
		Timeframe: timeframe,
		Bars:      deduped,
	}
}

// Len returns the number of bars in the series.
func (s *Series) Len() int {
	return len(s.Bars)
}

// Last returns the most recent bar of the series.
func (s *Series) Last() (Bar, bool) {
	if len(s.Bars) == 0 {
		return Bar{}, false
	}

	return s.Bars[len(s.Bars)-1], true
}

// Closes returns the close values of the series.
func (s *Series) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for idx := range s.Bars {
		closes[idx] = s.Bars[idx].Close
	}

	return closes
}

// Highs returns the high values of the series.
func (s *Series) Highs() []float64 {
	highs := make([]float64, len(s.Bars))
	for idx := range s.Bars {
		highs[idx] = s.Bars[idx].High
	}

	return highs
}

// Lows returns the low values of the series.
func (s *Series) Lows() []float64 {
	lows := make([]float64, len(s.Bars))
	for idx := range s.Bars {
		lows[idx] = s.Bars[idx].Low
	}

	return lows
}

// Volumes returns the volume values of the series.
func (s *Series) Volumes() []float64 {
	volumes := make([]float64, len(s.Bars))
	for idx := range s.Bars {
		volumes[idx] = s.Bars[idx].Volume
	}

	return volumes
}

// weekAnchor returns the friday date anchoring the week of the provided time.
func weekAnchor(t time.Time) time.Time {
	daysUntilFriday := (int(time.Friday) - int(t.Weekday()) + 7) % 7
	anchor := t.AddDate(0, 0, daysUntilFriday)

	return time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, time.UTC)
}

// monthAnchor returns the calendar month end anchoring the month of the
// provided time.
func monthAnchor(t time.Time) time.Time {
	firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1)
}

// Resample derives an immutable weekly or monthly view from a daily series.
// Aggregated bars use open=first, high=max, low=min, close=last and
// volume=sum over the period; periods with no bars produce no row.
func (s *Series) Resample(timeframe Timeframe) *Series {
	if timeframe == Daily || s.Timeframe != Daily {
		return s
	}

	anchor := weekAnchor
	if timeframe == Monthly {
		anchor = monthAnchor
	}

	bars := make([]Bar, 0, len(s.Bars))
	for idx := range s.Bars {
		bar := s.Bars[idx]
		key := anchor(bar.Date)

		if len(bars) == 0 || !bars[len(bars)-1].Date.Equal(key) {
			bars = append(bars, Bar{
				Open:   bar.Open,
				High:   bar.High,
				Low:    bar.Low,
				Close:  bar.Close,
				Volume: bar.Volume,
				Date:   key,
			})
			continue
		}

		agg := &bars[len(bars)-1]
		agg.High = math.Max(agg.High, bar.High)
		agg.Low = math.Min(agg.Low, bar.Low)
		agg.Close = bar.Close
		agg.Volume += bar.Volume
	}

	return &Series{
		Market:    s.Market,
		Timeframe: timeframe,
		Bars:      bars,
	}
}
