package pivot

import (
	"math"
)

// Kind represents the type of a pivot.
type Kind int

const (
	High Kind = iota
	Low
)

// String stringifies the provided pivot kind.
func (k Kind) String() string {
	switch k {
	case High:
		return "high"
	case Low:
		return "low"
	default:
		return "unknown"
	}
}

// Pivot represents a threshold-filtered swing point of a price series.
type Pivot struct {
	Index int
	Price float64
	Kind  Kind
}

// Zigzag extracts the swing pivots of the provided price series. A candidate
// is an interior index whose value is the strict max or min of the closed
// window [i-window, i+window]. The first candidate is always accepted; each
// subsequent candidate must differ from the last accepted pivot's price by
// at least the threshold fraction. Rejected candidates do not reset the last
// accepted pivot reference.
func Zigzag(vals []float64, window int, threshold float64) []Pivot {
	if window <= 0 || len(vals) < 2*window+1 {
		return nil
	}

	pivots := make([]Pivot, 0, len(vals)/5)
	for idx := window; idx < len(vals)-window; idx++ {
		kind, ok := windowExtremum(vals, idx, window)
		if !ok {
			continue
		}

		if len(pivots) > 0 {
			last := pivots[len(pivots)-1]
			if last.Price == 0 {
				continue
			}
			swing := math.Abs(vals[idx]-last.Price) / math.Abs(last.Price)
			if swing < threshold {
				continue
			}
		}

		pivots = append(pivots, Pivot{Index: idx, Price: vals[idx], Kind: kind})
	}

	return pivots
}

// windowExtremum reports whether the provided index is the strict extremum
// of its closed lookaround window.
func windowExtremum(vals []float64, idx int, window int) (Kind, bool) {
	isHigh, isLow := true, true
	for j := idx - window; j <= idx+window; j++ {
		if j == idx {
			continue
		}
		if vals[j] >= vals[idx] {
			isHigh = false
		}
		if vals[j] <= vals[idx] {
			isLow = false
		}
		if !isHigh && !isLow {
			return High, false
		}
	}

	switch {
	case isHigh:
		return High, true
	case isLow:
		return Low, true
	default:
		return High, false
	}
}

// Recent returns the most recent count pivots, oldest first.
func Recent(pivots []Pivot, count int) []Pivot {
	if len(pivots) <= count {
		return pivots
	}

	return pivots[len(pivots)-count:]
}
