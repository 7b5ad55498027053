package strategy

import (
	"testing"

	"github.com/avh/trend/shared"
	"github.com/peterldowns/testy/assert"
)

func TestNorthStarEntrySuppressedBelowSlowMA(t *testing.T) {
	var state NorthStarState

	// Price above the fast average but below the slow one stays flat.
	next, marker := state.Next(testBar(50), NorthStarInputs{MA12: 48, MA36: 52})

	assert.Nil(t, marker)
	assert.Equal(t, next.Position, Flat)
}

func TestNorthStarNextEntry(t *testing.T) {
	var state NorthStarState

	next, marker := state.Next(testBar(55), NorthStarInputs{MA12: 48, MA36: 52})

	assert.NotNil(t, marker)
	assert.Equal(t, marker.Side, shared.Buy)
	assert.Equal(t, marker.Label, NorthStarEnterLabel)
	assert.Equal(t, next.Position, Long)
}

func TestNorthStarNextExit(t *testing.T) {
	state := NorthStarState{Position: Long}

	next, marker := state.Next(testBar(45), NorthStarInputs{MA12: 48, MA36: 52})

	assert.NotNil(t, marker)
	assert.Equal(t, marker.Side, shared.Sell)
	assert.Equal(t, marker.Label, NorthStarExitLabel)
	assert.Equal(t, next.Position, Flat)
}

func TestNorthStarLifecycle(t *testing.T) {
	closes := make([]float64, 60)
	for idx := range closes {
		switch {
		case idx < 40:
			closes[idx] = 100
		case idx < 50:
			closes[idx] = 100 + 2*float64(idx-39)
		default:
			closes[idx] = 80
		}
	}

	markers := NorthStar(dailySeries(closes))

	assert.Equal(t, len(markers), 2)
	assert.Equal(t, markers[0].Side, shared.Buy)
	assert.Equal(t, markers[1].Side, shared.Sell)
}

func TestNorthStarShortHistory(t *testing.T) {
	markers := NorthStar(dailySeries(randomWalk(20)))

	assert.Equal(t, len(markers), 0)
}
