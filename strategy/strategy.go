package strategy

import (
	"math"
	"time"

	"github.com/avh/trend/shared"
)

const (
	// minLongHistory is the warm-up history required by the moving-average
	// based strategies.
	minLongHistory = 200
	// minShortHistory is the warm-up history required by the shorter
	// strategies.
	minShortHistory = 40
)

// Position represents the held position of a strategy.
type Position int

const (
	Flat Position = iota
	Long
)

// String stringifies the provided position.
func (p Position) String() string {
	switch p {
	case Flat:
		return "flat"
	case Long:
		return "long"
	default:
		return "unknown"
	}
}

// AlignByDate forward-fills the provided source values onto the target
// dates: each target slot holds the most recent source value dated at or
// before it, NaN when none exists yet.
func AlignByDate(targets []time.Time, sources []time.Time, vals []float64) []float64 {
	out := make([]float64, len(targets))
	srcIdx := -1
	for idx := range targets {
		for srcIdx+1 < len(sources) && !sources[srcIdx+1].After(targets[idx]) {
			srcIdx++
		}
		if srcIdx < 0 {
			out[idx] = math.NaN()
			continue
		}
		out[idx] = vals[srcIdx]
	}

	return out
}

// dates extracts the bar dates of the provided series.
func dates(series *shared.Series) []time.Time {
	out := make([]time.Time, len(series.Bars))
	for idx := range series.Bars {
		out[idx] = series.Bars[idx].Date
	}

	return out
}
