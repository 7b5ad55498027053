package shared

import (
	"encoding/json"
	"time"
)

// Side represents the side of a signal marker.
type Side int

const (
	Buy Side = iota
	Sell
)

// String stringifies the provided side.
func (s Side) String() string {
	switch s {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// SignalMarker represents a timestamped strategy state transition. Markers
// for a strategy strictly alternate side.
type SignalMarker struct {
	Date  time.Time
	Price float64
	Side  Side
	Label string
}

// NewSignalMarker initializes a new signal marker.
func NewSignalMarker(date time.Time, price float64, side Side, label string) SignalMarker {
	return SignalMarker{
		Date:  date,
		Price: price,
		Side:  side,
		Label: label,
	}
}

// MarshalJSON encodes the marker with a unix-seconds timestamp.
func (m SignalMarker) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Time  int64   `json:"time"`
		Price float64 `json:"price"`
		Side  string  `json:"side"`
		Label string  `json:"label"`
	}{
		Time:  m.Date.Unix(),
		Price: m.Price,
		Side:  m.Side.String(),
		Label: m.Label,
	})
}
