package indicator

import (
	"math"
)

// Bollinger parameters.
const (
	BollingerLength = 20
	BollingerFactor = 2.0
	// DefaultBBWPWindow is the trailing window the band width percentile
	// ranks against.
	DefaultBBWPWindow = 252
)

// BollingerBands holds the aligned bollinger band lines.
type BollingerBands struct {
	Upper  []float64
	Middle []float64
	Lower  []float64
}

// Bollinger computes length-bar SMA/stdev bollinger bands around the
// provided values.
func Bollinger(vals []float64, length int, factor float64) BollingerBands {
	bands := BollingerBands{
		Upper:  nanSlice(len(vals)),
		Middle: SMA(vals, length),
		Lower:  nanSlice(len(vals)),
	}

	for idx := length - 1; idx < len(vals); idx++ {
		mean := bands.Middle[idx]
		var variance float64
		for j := idx - length + 1; j <= idx; j++ {
			diff := vals[j] - mean
			variance += diff * diff
		}
		stdev := math.Sqrt(variance / float64(length))

		bands.Upper[idx] = mean + factor*stdev
		bands.Lower[idx] = mean - factor*stdev
	}

	return bands
}

// BandWidth computes the normalized band width (upper-lower)/middle.
func (b BollingerBands) BandWidth() []float64 {
	out := nanSlice(len(b.Middle))
	for idx := range b.Middle {
		if math.IsNaN(b.Middle[idx]) || b.Middle[idx] == 0 {
			continue
		}
		out[idx] = (b.Upper[idx] - b.Lower[idx]) / b.Middle[idx]
	}

	return out
}

// BBWP computes the bollinger band width percentile: the percentile rank of
// each band-width value within its trailing window, scaled to [0, 100].
func BBWP(vals []float64, length int, window int) []float64 {
	width := Bollinger(vals, length, BollingerFactor).BandWidth()

	out := nanSlice(len(vals))
	for idx := range width {
		if math.IsNaN(width[idx]) {
			continue
		}

		start := idx - window + 1
		if start < length-1 {
			start = length - 1
		}
		total := idx - start + 1
		if total < 2 {
			continue
		}

		var below int
		for j := start; j <= idx; j++ {
			if width[j] <= width[idx] {
				below++
			}
		}
		out[idx] = 100 * float64(below) / float64(total)
	}

	return out
}
