package classify

import (
	"math"
)

const (
	// blueBandThreshold is the BBWP level from which volatility compression
	// is extreme on the high side.
	blueBandThreshold = 90
	// redBandThreshold is the BBWP level at or below which volatility is
	// extremely compressed.
	redBandThreshold = 10
)

// BBWPBand represents the volatility percentile bucket of a bar.
type BBWPBand int

const (
	BBWPUnknown BBWPBand = iota
	BlueBand
	RedBand
	NormalBand
)

// String stringifies the provided BBWP band.
func (b BBWPBand) String() string {
	switch b {
	case BlueBand:
		return "Blue Band"
	case RedBand:
		return "Red Band"
	case NormalBand:
		return "Normal"
	default:
		return "Unknown"
	}
}

// BBWPBucket classifies a bollinger band width percentile value.
func BBWPBucket(bbwp float64) BBWPBand {
	switch {
	case math.IsNaN(bbwp):
		return BBWPUnknown
	case bbwp >= blueBandThreshold:
		return BlueBand
	case bbwp <= redBandThreshold:
		return RedBand
	default:
		return NormalBand
	}
}

// BBWPSeries classifies the provided BBWP line per bar.
func BBWPSeries(bbwp []float64) []BBWPBand {
	out := make([]BBWPBand, len(bbwp))
	for idx := range bbwp {
		out[idx] = BBWPBucket(bbwp[idx])
	}

	return out
}
