package projection

import (
	"fmt"
	"math"

	"github.com/avh/trend/pivot"
)

const (
	// wavePoints is the number of pivots the wave heuristic consumes.
	wavePoints = 5

	waveThreeRatio = 1.618
	waveFiveRatio  = 0.618
)

// WaveProjection holds the heuristic wave count and fibonacci-extension
// targets built from the last five detected pivots. This is a labeled
// heuristic, not a rule-checked Elliott count.
type WaveProjection struct {
	Points      [wavePoints]pivot.Pivot
	Uptrend     bool
	WaveOneSpan float64
	WaveThree   float64 `json:"wave_three_target"`
	WaveFive    float64 `json:"wave_five_target"`
	CurrentWave string  `json:"current_wave"`
}

// Elliott projects wave targets from the most recent five pivots and labels
// the current wave by comparing price against the pivot thresholds.
func Elliott(pivots []pivot.Pivot, currentPrice float64) (*WaveProjection, error) {
	if len(pivots) < wavePoints {
		return nil, fmt.Errorf("not enough pivot points: %d < %d", len(pivots), wavePoints)
	}

	recent := pivot.Recent(pivots, wavePoints)
	proj := &WaveProjection{}
	copy(proj.Points[:], recent)

	p0, p1, p2, p3, p4 := recent[0], recent[1], recent[2], recent[3], recent[4]
	proj.Uptrend = p1.Price > p0.Price
	proj.WaveOneSpan = math.Abs(p1.Price - p0.Price)

	direction := 1.0
	if !proj.Uptrend {
		direction = -1
	}
	proj.WaveThree = p2.Price + direction*waveThreeRatio*proj.WaveOneSpan
	proj.WaveFive = p4.Price + direction*waveFiveRatio*proj.WaveOneSpan

	proj.CurrentWave = classifyWave(proj, p3, p4, currentPrice)

	return proj, nil
}

// classifyWave labels the current wave by threshold comparison against the
// later pivots and the projected wave targets.
func classifyWave(proj *WaveProjection, p3 pivot.Pivot, p4 pivot.Pivot, price float64) string {
	beyond := func(level float64) bool {
		if proj.Uptrend {
			return price > level
		}
		return price < level
	}

	switch {
	case beyond(proj.WaveThree):
		return "Wave 5"
	case beyond(p3.Price):
		if beyond(p4.Price) {
			return "Wave 5"
		}
		return "Wave 4"
	default:
		return "Wave 3"
	}
}
