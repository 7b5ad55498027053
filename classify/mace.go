package classify

import (
	"math"
)

// MACELabel represents the moving-average ordering bucket of a bar.
type MACELabel int

const (
	MACEUnclassified MACELabel = iota
	MACEU1
	MACEU2
	MACEU3
	MACED1
	MACED2
	MACED3
)

// String stringifies the provided MACE label.
func (l MACELabel) String() string {
	switch l {
	case MACEU1:
		return "U1"
	case MACEU2:
		return "U2"
	case MACEU3:
		return "U3"
	case MACED1:
		return "D1"
	case MACED2:
		return "D2"
	case MACED3:
		return "D3"
	default:
		return "Unclassified"
	}
}

// MACE classifies the ordering of the short, medium and long moving
// averages into one of the six directional buckets. Ties and NaN inputs are
// unclassified.
func MACE(short float64, medium float64, long float64) MACELabel {
	if math.IsNaN(short) || math.IsNaN(medium) || math.IsNaN(long) {
		return MACEUnclassified
	}

	switch {
	case long > short && short > medium:
		return MACEU1
	case short > long && long > medium:
		return MACEU2
	case short > medium && medium > long:
		return MACEU3
	case medium > short && short > long:
		return MACED1
	case medium > long && long > short:
		return MACED2
	case long > medium && medium > short:
		return MACED3
	default:
		return MACEUnclassified
	}
}

// MACESeries classifies the provided aligned moving average series per bar.
func MACESeries(short []float64, medium []float64, long []float64) []MACELabel {
	out := make([]MACELabel, len(short))
	for idx := range short {
		out[idx] = MACE(short[idx], medium[idx], long[idx])
	}

	return out
}
