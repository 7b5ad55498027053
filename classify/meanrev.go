package classify

import (
	"math"
	"sort"

	"github.com/avh/trend/indicator"
)

const (
	// DefaultMeanRevPeriod is the moving average period deviations are
	// measured against.
	DefaultMeanRevPeriod = 50
	// MinMeanRevObservations is the minimum number of deviation samples
	// required before percentile bands are meaningful.
	MinMeanRevObservations = 60

	lowPercentile  = 0.05
	highPercentile = 0.95
)

// MeanRevBand represents the mean-reversion bucket of a bar.
type MeanRevBand int

const (
	MeanRevUnknown MeanRevBand = iota
	Overbought
	Oversold
	AverageBand
)

// String stringifies the provided mean-reversion band.
func (b MeanRevBand) String() string {
	switch b {
	case Overbought:
		return "Overbought"
	case Oversold:
		return "Oversold"
	case AverageBand:
		return "Average"
	default:
		return "Unknown"
	}
}

// Deviations computes the percentage deviation of each close from its
// period moving average.
func Deviations(closes []float64, period int) []float64 {
	ma := indicator.SMA(closes, period)
	out := make([]float64, len(closes))
	for idx := range closes {
		out[idx] = math.NaN()
		if math.IsNaN(ma[idx]) || ma[idx] == 0 {
			continue
		}
		out[idx] = (closes[idx] - ma[idx]) / ma[idx] * 100
	}

	return out
}

// Percentile computes the provided percentile of the defined values using
// nearest-rank interpolation.
func Percentile(vals []float64, pct float64) float64 {
	defined := make([]float64, 0, len(vals))
	for idx := range vals {
		if !math.IsNaN(vals[idx]) {
			defined = append(defined, vals[idx])
		}
	}
	if len(defined) == 0 {
		return math.NaN()
	}

	sort.Float64s(defined)
	rank := pct * float64(len(defined)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return defined[lo]
	}

	frac := rank - float64(lo)
	return defined[lo]*(1-frac) + defined[hi]*frac
}

// MeanReversion classifies the current close against the trailing 5th/95th
// percentiles of its own deviation history.
func MeanReversion(closes []float64, period int) MeanRevBand {
	deviations := Deviations(closes, period)

	var observed int
	for idx := range deviations {
		if !math.IsNaN(deviations[idx]) {
			observed++
		}
	}
	if observed < MinMeanRevObservations {
		return MeanRevUnknown
	}

	current := deviations[len(deviations)-1]
	if math.IsNaN(current) {
		return MeanRevUnknown
	}

	lower := Percentile(deviations, lowPercentile)
	upper := Percentile(deviations, highPercentile)
	switch {
	case current >= upper:
		return Overbought
	case current <= lower:
		return Oversold
	default:
		return AverageBand
	}
}
